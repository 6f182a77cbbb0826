package store

import "github.com/Ethan7628/HTTP-Methods/internal/model"

// User fixture data
// nolint
func SeedUsers() []model.User {
	return []model.User{
		{ID: 1, Name: "John Doe", Email: "john@example.com"},
		{ID: 2, Name: "Jane Smith", Email: "jane@example.com"},
	}
}

// Post fixture data
// nolint
func SeedPosts() []model.Post {
	return []model.Post{
		{ID: 1, Title: "First Post", Body: "This is the first post", UserID: 1},
		{ID: 2, Title: "Second Post", Body: "This is the second post", UserID: 2},
	}
}
