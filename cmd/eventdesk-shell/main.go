package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventdesk/internal/domain/entity"
	"eventdesk/internal/shell"

	"github.com/alecthomas/kong"
)

type Globals struct {
	Server   string        `help:"Base URL of the eventdesk server" default:"http://localhost:8080" env:"EVENTDESK_SERVER_URL"`
	Timeout  time.Duration `help:"Timeout for each request to the server" default:"10s"`
	LogLevel string        `help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
}

type CLI struct {
	Globals

	Login LoginCmd `cmd:"" default:"1" help:"Open the consent page and wait until the server holds tokens"`
	Watch WatchCmd `cmd:"" help:"Wait until the server holds tokens without opening a browser"`
}

type LoginCmd struct {
	NoBrowser bool          `help:"Print the consent URL instead of opening a browser"`
	Interval  time.Duration `help:"How often to poll the server for tokens" default:"1s"`
}

type WatchCmd struct {
	Interval time.Duration `help:"How often to poll the server for tokens" default:"1s"`
}

func (cmd *LoginCmd) Run(g *Globals, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := []shell.Option{shell.WithPollInterval(cmd.Interval)}
	if cmd.NoBrowser {
		opts = append(opts, shell.WithOpener(func(url string) error {
			fmt.Printf("Open this URL in your browser to sign in:\n\n  %s\n\n", url)

			return nil
		}))
	}
	sh := shell.New(newClient(g, logger), logger, opts...)

	if url, err := sh.RequestLogin(ctx); err != nil {
		if url == "" {
			return err
		}
		logger.Warn("Could not open browser", slog.Any("error", err))
		fmt.Printf("Open this URL in your browser to sign in:\n\n  %s\n\n", url)
	}

	return sh.WatchTokens(ctx, printTokens)
}

func (cmd *WatchCmd) Run(g *Globals, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(newClient(g, logger), logger, shell.WithPollInterval(cmd.Interval))

	return sh.WatchTokens(ctx, printTokens)
}

func newClient(g *Globals, logger *slog.Logger) *shell.Client {
	return shell.NewClient(g.Server, &http.Client{Timeout: g.Timeout}, logger)
}

func printTokens(tokens entity.TokenSet) {
	fmt.Println("Signed in.")
	if !tokens.Expiry.IsZero() {
		fmt.Printf("Access token valid until %s\n", tokens.Expiry.Local().Format(time.RFC1123))
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("eventdesk-shell"),
		kong.Description("Desktop companion for eventdesk: signs the user in and waits for credentials."),
		kong.UsageOnError(),
	)

	logger := newLogger(cli.LogLevel)
	err := ctx.Run(&cli.Globals, logger)
	ctx.FatalIfErrorf(err)
}
