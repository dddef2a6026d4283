// Package entity contains the core business objects of the project.
package entity

import "time"

// TokenSet is the bundle of OAuth credentials held for the current session.
// Empty strings and zero times mean "not obtained yet".
type TokenSet struct {
	AccessToken  string    // Short-lived bearer token used against provider APIs.
	RefreshToken string    // Long-lived token; retained until process restart once obtained.
	IDToken      string    // OIDC ID token describing the signed-in user.
	Expiry       time.Time // Access token expiry; zero means the provider did not say.
	CreatedAt    time.Time // When the last authorization-code exchange completed.
}

// HasAccessToken reports whether an access token is held.
func (t TokenSet) HasAccessToken() bool {
	return t.AccessToken != ""
}

// AccessTokenValid reports whether the access token can be used at now without
// expiring inside the skew window.
func (t TokenSet) AccessTokenValid(now time.Time, skew time.Duration) bool {
	if t.AccessToken == "" {
		return false
	}
	if t.Expiry.IsZero() {
		return true
	}

	return now.Add(skew).Before(t.Expiry)
}

// Merge overlays the non-empty fields of update on t.
func (t TokenSet) Merge(update TokenSet) TokenSet {
	merged := t
	if update.AccessToken != "" {
		merged.AccessToken = update.AccessToken
	}
	if update.RefreshToken != "" {
		merged.RefreshToken = update.RefreshToken
	}
	if update.IDToken != "" {
		merged.IDToken = update.IDToken
	}
	if !update.Expiry.IsZero() {
		merged.Expiry = update.Expiry
	}
	if !update.CreatedAt.IsZero() {
		merged.CreatedAt = update.CreatedAt
	}

	return merged
}
