package shell

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"eventdesk/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedServer answers LatestTokens from a fixed script, repeating the last entry.
type scriptedServer struct {
	mu      sync.Mutex
	authURL string
	script  []scriptedPoll
	polls   atomic.Int32
}

type scriptedPoll struct {
	tokens entity.TokenSet
	err    error
}

func (s *scriptedServer) AuthURL(context.Context) (string, error) {
	if s.authURL == "" {
		return "", errors.New("connection refused")
	}

	return s.authURL, nil
}

func (s *scriptedServer) LatestTokens(context.Context) (entity.TokenSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := int(s.polls.Add(1)) - 1
	if n >= len(s.script) {
		n = len(s.script) - 1
	}

	return s.script[n].tokens, s.script[n].err
}

func TestShell_WatchTokens_FiresOnceWhenTokenAppears(t *testing.T) {
	server := &scriptedServer{script: []scriptedPoll{
		{},
		{err: errors.New("connection refused")},
		{},
		{tokens: entity.TokenSet{AccessToken: "a1", RefreshToken: "r1"}},
	}}
	sh := New(server, newDiscardLogger(), WithPollInterval(5*time.Millisecond))

	var calls int
	var got entity.TokenSet
	err := sh.WatchTokens(context.Background(), func(tokens entity.TokenSet) {
		calls++
		got = tokens
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "a1", got.AccessToken)
	assert.Equal(t, int32(4), server.polls.Load())
}

func TestShell_WatchTokens_Cancelled(t *testing.T) {
	server := &scriptedServer{script: []scriptedPoll{{}}}
	sh := New(server, newDiscardLogger(), WithPollInterval(5*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := sh.WatchTokens(ctx, func(entity.TokenSet) {
		t.Fatal("callback must not fire without an access token")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Positive(t, server.polls.Load())
}

func TestShell_RequestLogin(t *testing.T) {
	t.Run("opens consent URL", func(t *testing.T) {
		server := &scriptedServer{authURL: "https://accounts.example.com/consent"}
		var opened string
		sh := New(server, newDiscardLogger(), WithOpener(func(url string) error {
			opened = url

			return nil
		}))

		url, err := sh.RequestLogin(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "https://accounts.example.com/consent", url)
		assert.Equal(t, url, opened)
	})

	t.Run("browser failure still returns URL", func(t *testing.T) {
		server := &scriptedServer{authURL: "https://accounts.example.com/consent"}
		sh := New(server, newDiscardLogger(), WithOpener(func(string) error {
			return errors.New("no display")
		}))

		url, err := sh.RequestLogin(context.Background())
		require.Error(t, err)
		assert.Equal(t, "https://accounts.example.com/consent", url)
	})

	t.Run("server unreachable", func(t *testing.T) {
		sh := New(&scriptedServer{}, newDiscardLogger(), WithOpener(func(string) error {
			t.Fatal("nothing to open")

			return nil
		}))

		_, err := sh.RequestLogin(context.Background())
		assert.Error(t, err)
	})
}
