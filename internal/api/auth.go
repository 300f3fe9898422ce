package api

import (
	"context"
	"errors"
	"net/http"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// Login exchanges credentials for a token and the user's identity.
func (c *Client) Login(ctx context.Context, username, password string) (model.AuthResult, error) {
	var res model.AuthResult
	err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/auth/login",
		body:   map[string]string{"username": username, "password": password},
	}, &res)
	if err != nil {
		return model.AuthResult{}, err
	}
	if res.Token == "" || res.Username == "" {
		return model.AuthResult{}, &apperrors.MalformedResponseError{Op: "login", Err: errors.New("missing token or username")}
	}
	return res, nil
}

// Register creates an account. It returns no session material.
func (c *Client) Register(ctx context.Context, reg model.Registration) error {
	return c.do(ctx, request{
		op:     "register",
		method: http.MethodPost,
		path:   "/api/auth/register",
		body:   reg,
	}, nil)
}
