package apiclient

import (
	"context"
	"net/http"

	"closecart/internal/usecase"

	"github.com/pkg/errors"
)

// Validation failures caught on the client before any request is sent.
var (
	ErrCurrentPasswordRequired = errors.New("apiclient: current password is required")
	ErrPasswordTooShort        = errors.New("apiclient: new password must be at least 8 characters")
	ErrPasswordMismatch        = errors.New("apiclient: new password and confirmation do not match")
)

const minPasswordLength = 8

// Register creates an account with its shop and stores the issued access
// token so subsequent calls are authenticated.
func (c *Client) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	var out usecase.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/auth/register", input, &out); err != nil {
		return nil, err
	}
	c.tokens.SetToken(out.AccessToken)

	return &out, nil
}

// Login verifies credentials and stores the issued access token.
func (c *Client) Login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	input := &usecase.LoginInput{Email: email, Password: password}

	var out usecase.AuthOutput
	if err := c.do(ctx, http.MethodPost, "/auth/login", input, &out); err != nil {
		return nil, err
	}
	c.tokens.SetToken(out.AccessToken)

	return &out, nil
}

// Logout drops the stored token. Purely local; the backend keeps no session.
func (c *Client) Logout() {
	c.tokens.Clear()
}

// Me returns the authenticated account and its shop.
func (c *Client) Me(ctx context.Context) (*usecase.MeOutput, error) {
	var out usecase.MeOutput
	if err := c.do(ctx, http.MethodGet, "/me", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ChangePassword validates the form locally first. A missing current
// password, a new password shorter than eight characters, or a mismatched
// confirmation is rejected without sending anything over the network.
func (c *Client) ChangePassword(ctx context.Context, current, newPassword, confirm string) error {
	if current == "" {
		return ErrCurrentPasswordRequired
	}
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	input := &usecase.ChangePasswordInput{
		CurrentPassword: current,
		NewPassword:     newPassword,
		ConfirmPassword: confirm,
	}

	return c.do(ctx, http.MethodPost, "/auth/change-password", input, nil)
}
