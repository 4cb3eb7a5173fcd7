package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/session"
)

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registration struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

// Login exchanges credentials for an identity and a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (session.Identity, string, error) {
	opts, err := RequestOptions(http.MethodPost, "", credentials{Email: email, Password: password})
	if err != nil {
		return session.Identity{}, "", err
	}

	body, err := c.do(ctx, opts, "/user/login")
	if err != nil {
		return session.Identity{}, "", fmt.Errorf("login: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return session.Identity{}, "", fmt.Errorf("login: malformed response: %w", err)
	}
	if resp.Token == "" {
		return session.Identity{}, "", fmt.Errorf("login: response carried no token")
	}
	return resp.User, resp.Token, nil
}

// Register creates a new account. The server assigns the id; the caller
// logs in separately afterwards.
func (c *Client) Register(ctx context.Context, fullName, email, password string) error {
	opts, err := RequestOptions(http.MethodPost, "", registration{FullName: fullName, Email: email, Password: password})
	if err != nil {
		return err
	}
	if _, err := c.do(ctx, opts, "/user/register"); err != nil {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}
