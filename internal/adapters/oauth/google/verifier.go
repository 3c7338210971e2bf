package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/lunchvote/internal/core/ports"
	"google.golang.org/api/idtoken"
)

var (
	errMissingEmail    = errors.New("email not found in claims")
	errUnverifiedEmail = errors.New("email is not verified")
)

// Verifier checks Google ID tokens posted by the sign-in button.
type Verifier struct {
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewVerifier() *Verifier {
	return &Verifier{validate: idtoken.Validate}
}

var _ ports.TokenVerifier = (*Verifier)(nil)

func (v *Verifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	payload, err := v.validate(ctx, token, clientID)
	if err != nil {
		return nil, fmt.Errorf("validate id token: %w", err)
	}
	return payloadFromClaims(payload.Claims)
}

func payloadFromClaims(claims map[string]any) (*ports.TokenPayload, error) {
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return nil, errMissingEmail
	}
	if verified, ok := claims["email_verified"].(bool); ok && !verified {
		return nil, errUnverifiedEmail
	}
	// Workspace accounts can omit the display name.
	name, _ := claims["name"].(string)
	return &ports.TokenPayload{Email: email, Name: name}, nil
}
