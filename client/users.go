package client

import (
	"net/http"
	"strconv"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch carries a partial update. Nil fields are left out of the request
// body entirely, so the service keeps their stored values.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (c *Client) ListUsers() ([]User, error) {
	var users []User
	if err := c.do(http.MethodGet, "/api/users", nil, &users); err != nil {
		return nil, err
	}

	return users, nil
}

func (c *Client) GetUser(id int) (*User, error) {
	u := &User{}
	if err := c.do(http.MethodGet, "/api/users/"+strconv.Itoa(id), nil, u); err != nil {
		return nil, err
	}

	return u, nil
}

// CreateUser submits a new user. The returned record carries the id the
// service assigned, regardless of the one on u.
func (c *Client) CreateUser(u User) (*User, error) {
	created := &User{}
	if err := c.do(http.MethodPost, "/api/users", u, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Client) UpdateUser(id int, u User) (*User, error) {
	updated := &User{}
	if err := c.do(http.MethodPut, "/api/users/"+strconv.Itoa(id), u, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *Client) PatchUser(id int, patch UserPatch) (*User, error) {
	patched := &User{}
	if err := c.do(http.MethodPatch, "/api/users/"+strconv.Itoa(id), patch, patched); err != nil {
		return nil, err
	}

	return patched, nil
}

func (c *Client) DeleteUser(id int) error {
	return c.do(http.MethodDelete, "/api/users/"+strconv.Itoa(id), nil, nil)
}
