package gateway

import (
	"context"
	"fmt"
	"net/url"

	"tripweaver/internal/domain"
)

// Register creates a new user account. The returned string is the backend's
// acknowledgment message.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	payload := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{username, email, password}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/register", payload, &resp); err != nil {
		return "", fmt.Errorf("gateway.Client.Register: %w", err)
	}
	return resp.Message, nil
}

// Login authenticates an existing user. A nil error means the credentials
// were accepted; the email then serves as the identity for save operations.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var resp struct {
		Message string `json:"message"`
	}
	if err := c.postJSON(ctx, "/login", payload, &resp); err != nil {
		return "", fmt.Errorf("gateway.Client.Login: %w", err)
	}
	return resp.Message, nil
}

// UserInfo returns the profile registered under email.
func (c *Client) UserInfo(ctx context.Context, email string) (domain.UserProfile, error) {
	var resp struct {
		User domain.UserProfile `json:"user"`
	}
	q := url.Values{"email": {email}}
	if err := c.getJSON(ctx, "/user-info", q, &resp); err != nil {
		return domain.UserProfile{}, fmt.Errorf("gateway.Client.UserInfo: %w", err)
	}
	return resp.User, nil
}
