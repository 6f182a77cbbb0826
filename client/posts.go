package client

import (
	"net/http"
	"strconv"
)

type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// PostPatch carries a partial update. Nil fields are left out of the request
// body entirely; a pointer to zero really stores the zero.
type PostPatch struct {
	Title  *string `json:"title,omitempty"`
	Body   *string `json:"body,omitempty"`
	UserID *int    `json:"userId,omitempty"`
}

func (c *Client) ListPosts() ([]Post, error) {
	var posts []Post
	if err := c.do(http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

func (c *Client) GetPost(id int) (*Post, error) {
	p := &Post{}
	if err := c.do(http.MethodGet, "/api/posts/"+strconv.Itoa(id), nil, p); err != nil {
		return nil, err
	}

	return p, nil
}

// CreatePost submits a new post. A zero UserID is attributed to the default
// author by the service.
func (c *Client) CreatePost(p Post) (*Post, error) {
	created := &Post{}
	if err := c.do(http.MethodPost, "/api/posts", p, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Client) UpdatePost(id int, p Post) (*Post, error) {
	updated := &Post{}
	if err := c.do(http.MethodPut, "/api/posts/"+strconv.Itoa(id), p, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (c *Client) PatchPost(id int, patch PostPatch) (*Post, error) {
	patched := &Post{}
	if err := c.do(http.MethodPatch, "/api/posts/"+strconv.Itoa(id), patch, patched); err != nil {
		return nil, err
	}

	return patched, nil
}

func (c *Client) DeletePost(id int) error {
	return c.do(http.MethodDelete, "/api/posts/"+strconv.Itoa(id), nil, nil)
}
