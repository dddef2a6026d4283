package handler

import (
	"fmt"
	"html"
	"log/slog"
	"net/http"

	"eventdesk/internal/delivery/api/response"
	deliverycontext "eventdesk/internal/delivery/context"
	"eventdesk/internal/domain/entity"
	domainerrors "eventdesk/internal/domain/errors"
	"eventdesk/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	loginSucceededPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Signed in</title></head>
<body>
<h1>Authentication successful!</h1>
<p>You can now close this window and return to the app.</p>
</body>
</html>`

	loginFailedPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Sign-in failed</title></head>
<body>
<h1>Authentication failed</h1>
<p>%s</p>
</body>
</html>`
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler serves the OAuth consent round trip and exposes the held credentials.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// AuthURLResponse carries the consent URL.
type AuthURLResponse struct {
	URL string `json:"url"`
}

// OAuthCallbackRequest is the query the provider redirects back with.
type OAuthCallbackRequest struct {
	Code             string `query:"code"`
	Error            string `query:"error"`
	ErrorDescription string `query:"error_description"`
}

// TokensResponse exposes the held credentials. Absent values are null and instants are
// epoch milliseconds.
type TokensResponse struct {
	RefreshToken *string `json:"refreshToken"`
	AccessToken  *string `json:"accessToken"`
	IDToken      *string `json:"idToken"`
	ExpiryDate   *int64  `json:"expiryDate"`
	CreatedAt    *int64  `json:"createdAt"`
}

// RefreshTokenResponse exposes only the refresh token.
type RefreshTokenResponse struct {
	RefreshToken *string `json:"refreshToken"`
}

// AuthURL returns the provider consent URL.
func (h *AuthHandler) AuthURL(c echo.Context) error {
	return response.Success(c, http.StatusOK, AuthURLResponse{URL: h.authUC.ConsentURL()})
}

// OAuthCallback exchanges the authorization code and answers the browser with a page.
func (h *AuthHandler) OAuthCallback(c echo.Context) error {
	var req OAuthCallbackRequest
	if err := c.Bind(&req); err != nil {
		return callbackPage(c, http.StatusBadRequest, "Invalid callback request.")
	}

	if req.Error != "" {
		detail := req.Error
		if req.ErrorDescription != "" {
			detail += ": " + req.ErrorDescription
		}
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Provider denied authorization", slog.String("error", detail))

		return callbackPage(c, http.StatusInternalServerError, "The provider reported an error: "+detail)
	}

	if req.Code == "" {
		return callbackPage(c, http.StatusBadRequest, "Missing authorization code.")
	}

	if _, err := h.authUC.ExchangeCode(c.Request().Context(), req.Code); err != nil {
		message := "Failed to exchange authorization code."
		if appErr, ok := asAppError(err); ok && appErr.Details() != "" {
			message += " " + appErr.Details()
		}

		return callbackPage(c, http.StatusInternalServerError, message)
	}

	return c.HTML(http.StatusOK, loginSucceededPage)
}

// LatestTokens returns the held token set.
func (h *AuthHandler) LatestTokens(c echo.Context) error {
	return response.Success(c, http.StatusOK, newTokensResponse(h.authUC.CurrentTokens(c.Request().Context())))
}

// RefreshToken returns only the held refresh token.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	tokens := h.authUC.CurrentTokens(c.Request().Context())

	return response.Success(c, http.StatusOK, RefreshTokenResponse{RefreshToken: optionalString(tokens.RefreshToken)})
}

// Session describes the signed-in user from the held ID token.
func (h *AuthHandler) Session(c echo.Context) error {
	user, err := h.authUC.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user)
}

func newTokensResponse(tokens entity.TokenSet) TokensResponse {
	resp := TokensResponse{
		RefreshToken: optionalString(tokens.RefreshToken),
		AccessToken:  optionalString(tokens.AccessToken),
		IDToken:      optionalString(tokens.IDToken),
	}
	if !tokens.Expiry.IsZero() {
		expiry := tokens.Expiry.UnixMilli()
		resp.ExpiryDate = &expiry
	}
	if !tokens.CreatedAt.IsZero() {
		createdAt := tokens.CreatedAt.UnixMilli()
		resp.CreatedAt = &createdAt
	}

	return resp
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func callbackPage(c echo.Context, status int, message string) error {
	return c.HTML(status, fmt.Sprintf(loginFailedPage, html.EscapeString(message)))
}

func asAppError(err error) (domainerrors.AppError, bool) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
