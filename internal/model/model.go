package model

// User data model. Records live in memory only, so there is no persistence
// adapter behind these types.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EntityID returns the record id.
func (u User) EntityID() int { return u.ID }

// WithID returns a copy of the user with the id set.
func (u User) WithID(id int) User {
	u.ID = id
	return u
}

// Post data model.
type Post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"` // the author
}

// EntityID returns the record id.
func (p Post) EntityID() int { return p.ID }

// WithID returns a copy of the post with the id set.
func (p Post) WithID(id int) Post {
	p.ID = id
	return p
}
