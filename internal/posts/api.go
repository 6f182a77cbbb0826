// Package posts wires the Post collection to its REST surface under
// /api/posts.
package posts

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/Ethan7628/HTTP-Methods/internal/errresponse"
	"github.com/Ethan7628/HTTP-Methods/internal/model"
	"github.com/Ethan7628/HTTP-Methods/internal/store"
)

// DefaultUserID is attributed to new posts that arrive without an author.
const DefaultUserID = 1

// Resource bundles the post collection with its HTTP handlers.
type Resource struct {
	store *store.Collection[model.Post]
	log   *zap.SugaredLogger
}

func NewResource(s *store.Collection[model.Post], log *zap.SugaredLogger) *Resource {
	return &Resource{store: s, log: log}
}

// Routes mounts the post CRUD tree.
func (rs *Resource) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", rs.List)
	r.Post("/", rs.Create)

	r.Route("/{postID}", func(r chi.Router) {
		r.Use(rs.Ctx)
		r.Get("/", rs.Get)
		r.Put("/", rs.Update)
		r.Patch("/", rs.Patch)
		r.Delete("/", rs.Delete)
	})

	return r
}

// List returns every post in insertion order.
func (rs *Resource) List(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, NewPostListResponse(rs.store.List())); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}
}

// Create persists the posted Post and returns it back to the client as an
// acknowledgement. A missing or zero userId falls back to DefaultUserID.
func (rs *Resource) Create(w http.ResponseWriter, r *http.Request) {
	data := &PostRequest{}
	if err := render.Bind(r, data); err != nil {
		// An empty body decodes to nothing at all, which is the same
		// failure as missing fields from the client's point of view.
		if errors.Is(err, io.EOF) || r.ContentLength == 0 {
			err = ErrFieldsRequired
		}

		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	userID := data.UserID
	if userID == 0 {
		userID = DefaultUserID
	}

	p := rs.store.Insert(model.Post{Title: data.Title, Body: data.Body, UserID: userID})

	render.Status(r, http.StatusCreated)

	if err := render.Render(w, r, NewPostResponse(p)); err != nil {
		rs.log.Errorw(err.Error())
	}
}

// Get returns the specific Post. It just fetches the Post right off the
// context, as its understood that if we made it this far, the Post must be
// on the context, loaded there by the Ctx middleware.
func (rs *Resource) Get(w http.ResponseWriter, r *http.Request) {
	p := postFromCtx(r.Context())

	if err := render.Render(w, r, NewPostResponse(p)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}
}

// Update replaces the stored Post wholesale, except that a missing or zero
// userId keeps the author already on record. The 404 for an unknown id is
// rendered by the Ctx middleware before the payload is ever inspected.
func (rs *Resource) Update(w http.ResponseWriter, r *http.Request) {
	p := postFromCtx(r.Context())

	data := &PostRequest{}
	if err := render.Bind(r, data); err != nil {
		if errors.Is(err, io.EOF) || r.ContentLength == 0 {
			err = ErrFieldsRequired
		}

		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	userID := data.UserID
	if userID == 0 {
		userID = p.UserID
	}

	p, ok := rs.store.Replace(p.ID, model.Post{Title: data.Title, Body: data.Body, UserID: userID})
	if !ok {
		if err := render.Render(w, r, errresponse.ErrNotFound("Post")); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	if err := render.Render(w, r, NewPostResponse(p)); err != nil {
		rs.log.Errorw(err.Error())
	}
}

// Patch shallow-merges the posted fields over the stored Post. An explicit
// "userId":0 is stored as 0 here, unlike Update, because the patch payload
// can tell an absent key from a zero one.
func (rs *Resource) Patch(w http.ResponseWriter, r *http.Request) {
	p := postFromCtx(r.Context())

	data := &PostPatch{}

	if r.ContentLength != 0 {
		if err := render.Bind(r, data); err != nil && !errors.Is(err, io.EOF) {
			if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
				rs.log.Errorw(err.Error())
			}

			return
		}
	}

	p, ok := rs.store.Update(p.ID, data.Apply)
	if !ok {
		if err := render.Render(w, r, errresponse.ErrNotFound("Post")); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	if err := render.Render(w, r, NewPostResponse(p)); err != nil {
		rs.log.Errorw(err.Error())
	}
}

// Delete removes the Post from the collection and acknowledges with an
// empty 204.
func (rs *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	p := postFromCtx(r.Context())

	if _, ok := rs.store.Remove(p.ID); !ok {
		if err := render.Render(w, r, errresponse.ErrNotFound("Post")); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	render.NoContent(w, r)
}
