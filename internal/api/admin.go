package api

import (
	"context"
	"fmt"
	"net/http"

	"storefront/internal/model"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]model.AdminUser, error) {
	var users []model.AdminUser
	err := c.do(ctx, request{op: "list users", method: http.MethodGet, path: "/api/admin/users", token: token}, &users)
	return users, err
}

// ToggleUser enables or disables an account and returns the server's message.
func (c *Client) ToggleUser(ctx context.Context, token string, userID int64) (string, error) {
	var res struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, request{
		op:     "toggle user",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/admin/users/%d/toggle", userID),
		token:  token,
	}, &res)
	return res.Message, err
}
