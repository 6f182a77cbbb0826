package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Ethan7628/HTTP-Methods/internal/model"
)

// ErrFieldsRequired is returned when a create or replace payload leaves
// name or email empty.
var ErrFieldsRequired = errors.New("Name and email are required")

// UserRequest is the request payload for creating or replacing a User.
type UserRequest struct {
	model.User

	ProtectedID int `json:"id"` // override 'id' json to have more control
}

func (u *UserRequest) Bind(r *http.Request) error {
	if u.Name == "" || u.Email == "" {
		return ErrFieldsRequired
	}

	// just a post-process after a decode..
	u.ProtectedID = 0 // unset the protected ID

	return nil
}

// UserPatch is the request payload for partially updating a User. Fields are
// pointers so that absent keys can be told apart from empty values; absent
// keys leave the stored field untouched.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (u *UserPatch) Bind(r *http.Request) error {
	// Patches carry no required fields, any subset of keys is fine.
	return nil
}

// Apply shallow-merges the patch over the stored user. The id is not part of
// the patch type, so it can never be rewritten here.
func (u *UserPatch) Apply(cur model.User) model.User {
	if u.Name != nil {
		cur.Name = *u.Name
	}

	if u.Email != nil {
		cur.Email = *u.Email
	}

	return cur
}

// UserResponse is the response payload for the User data model.
//
// In the UserResponse object, first a Render() is called on itself,
// then the next field, and so on, all the way down the tree.
// Render is called in top-down order, like a http handler middleware chain.
type UserResponse struct {
	model.User
}

func NewUserResponse(u model.User) *UserResponse {
	return &UserResponse{User: u}
}

func (rd *UserResponse) Render(w http.ResponseWriter, r *http.Request) error {
	// Nothing to compute before the response is marshalled and sent.
	return nil
}

func NewUserListResponse(users []model.User) []render.Renderer {
	list := []render.Renderer{}
	for _, u := range users {
		list = append(list, NewUserResponse(u))
	}

	return list
}
