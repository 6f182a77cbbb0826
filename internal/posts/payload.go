package posts

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Ethan7628/HTTP-Methods/internal/model"
)

// ErrFieldsRequired is returned when a create or replace payload leaves
// title or body empty.
var ErrFieldsRequired = errors.New("Title and body are required")

// PostRequest is the request payload for creating or replacing a Post.
// UserID is optional; the handlers decide what a zero value falls back to,
// since create and replace default it differently.
type PostRequest struct {
	model.Post

	ProtectedID int `json:"id"` // override 'id' json to have more control
}

func (p *PostRequest) Bind(r *http.Request) error {
	if p.Title == "" || p.Body == "" {
		return ErrFieldsRequired
	}

	// just a post-process after a decode..
	p.ProtectedID = 0 // unset the protected ID

	return nil
}

// PostPatch is the request payload for partially updating a Post. Fields are
// pointers so that absent keys can be told apart from zero values; an
// explicit "userId":0 really stores 0, while an absent key changes nothing.
type PostPatch struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	UserID *int    `json:"userId"`
}

func (p *PostPatch) Bind(r *http.Request) error {
	// Patches carry no required fields, any subset of keys is fine.
	return nil
}

// Apply shallow-merges the patch over the stored post. The id is not part of
// the patch type, so it can never be rewritten here.
func (p *PostPatch) Apply(cur model.Post) model.Post {
	if p.Title != nil {
		cur.Title = *p.Title
	}

	if p.Body != nil {
		cur.Body = *p.Body
	}

	if p.UserID != nil {
		cur.UserID = *p.UserID
	}

	return cur
}

// PostResponse is the response payload for the Post data model.
type PostResponse struct {
	model.Post
}

func NewPostResponse(p model.Post) *PostResponse {
	return &PostResponse{Post: p}
}

func (rd *PostResponse) Render(w http.ResponseWriter, r *http.Request) error {
	// Nothing to compute before the response is marshalled and sent.
	return nil
}

func NewPostListResponse(posts []model.Post) []render.Renderer {
	list := []render.Renderer{}
	for _, p := range posts {
		list = append(list, NewPostResponse(p))
	}

	return list
}
