package backend

import (
	"context"
	"net/http"

	"github.com/kdiallo/shop-admin-gateway/internal/catalog"
)

type UsersClient struct{ Client }

func NewUsersClient(baseURL string) *UsersClient {
	return &UsersClient{newClient(baseURL)}
}

// UserPatch is a partial update; only non-nil fields are sent.
type UserPatch struct {
	FirstName *string       `json:"firstName,omitempty"`
	LastName  *string       `json:"lastName,omitempty"`
	Phone     *string       `json:"phone,omitempty"`
	Role      *catalog.Role `json:"role,omitempty"`
}

func (c *UsersClient) List(ctx context.Context) ([]catalog.User, error) {
	var out []catalog.User
	if err := c.doJSON(ctx, http.MethodGet, "/api/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *UsersClient) Update(ctx context.Context, id string, patch UserPatch) error {
	return c.doJSON(ctx, http.MethodPatch, "/api/users/"+id, patch, nil)
}

func (c *UsersClient) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/users/"+id, nil, nil)
}
