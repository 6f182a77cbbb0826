// Package users wires the User collection to its REST surface under
// /api/users.
package users

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

// Resource bundles the user collection with its HTTP handlers.
type Resource struct {
	store *store.Collection[model.User]
	log   *zap.SugaredLogger
}

func NewResource(s *store.Collection[model.User], log *zap.SugaredLogger) *Resource {
	return &Resource{store: s, log: log}
}

// Routes mounts the user CRUD tree.
func (rs *Resource) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", rs.List)
	r.Post("/", rs.Create)

	r.Route("/{userID}", func(r chi.Router) {
		r.Use(rs.Ctx)
		r.Get("/", rs.Get)
		r.Put("/", rs.Update)
		r.Patch("/", rs.Patch)
		r.Delete("/", rs.Delete)
	})

	return r
}

// List returns every user in insertion order.
func (rs *Resource) List(w http.ResponseWriter, r *http.Request) {
	if err := render.RenderList(w, r, NewUserListResponse(rs.store.List())); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}
}

// Create persists the posted User and returns it back to the client as an
// acknowledgement. The id is always assigned by the store; one sent by the
// client is discarded during Bind.
func (rs *Resource) Create(w http.ResponseWriter, r *http.Request) {
	data := &UserRequest{}
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

	u := rs.store.Insert(model.User{Name: data.Name, Email: data.Email})

	render.Status(r, http.StatusCreated)

	if err := render.Render(w, r, NewUserResponse(u)); err != nil {
		rs.log.Errorw(err.Error())
	}
}

// Get returns the specific User. It just fetches the User right off the
// context, as its understood that if we made it this far, the User must be
// on the context, loaded there by the Ctx middleware.
func (rs *Resource) Get(w http.ResponseWriter, r *http.Request) {
	u := userFromCtx(r.Context())

	if err := render.Render(w, r, NewUserResponse(u)); err != nil {
		if err := render.Render(w, r, errresponse.ErrRender(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}
}

// Update replaces the stored User wholesale. The 404 for an unknown id is
// rendered by the Ctx middleware before the payload is ever inspected, so a
// bad id with a bad body still reports the missing user.
func (rs *Resource) Update(w http.ResponseWriter, r *http.Request) {
	u := userFromCtx(r.Context())

	data := &UserRequest{}
	if err := render.Bind(r, data); err != nil {
		if errors.Is(err, io.EOF) || r.ContentLength == 0 {
			err = ErrFieldsRequired
		}

		if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	u, ok := rs.store.Replace(u.ID, model.User{Name: data.Name, Email: data.Email})
	if !ok {
		if err := render.Render(w, r, errresponse.ErrNotFound("User")); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	if err := render.Render(w, r, NewUserResponse(u)); err != nil {
		rs.log.Errorw(err.Error())
	}
}

// Patch shallow-merges the posted fields over the stored User. Unknown keys
// are dropped by the decoder and an empty body is a no-op patch, so there is
// no validation failure here by construction.
func (rs *Resource) Patch(w http.ResponseWriter, r *http.Request) {
	u := userFromCtx(r.Context())

	data := &UserPatch{}

	if r.ContentLength != 0 {
		if err := render.Bind(r, data); err != nil && !errors.Is(err, io.EOF) {
			if err := render.Render(w, r, errresponse.ErrInvalidRequest(err)); err != nil {
				rs.log.Errorw(err.Error())
			}

			return
		}
	}

	u, ok := rs.store.Update(u.ID, data.Apply)
	if !ok {
		if err := render.Render(w, r, errresponse.ErrNotFound("User")); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	if err := render.Render(w, r, NewUserResponse(u)); err != nil {
		rs.log.Errorw(err.Error())
	}
}

// Delete removes the User from the collection and acknowledges with an
// empty 204.
func (rs *Resource) Delete(w http.ResponseWriter, r *http.Request) {
	u := userFromCtx(r.Context())

	if _, ok := rs.store.Remove(u.ID); !ok {
		if err := render.Render(w, r, errresponse.ErrNotFound("User")); err != nil {
			rs.log.Errorw(err.Error())
		}

		return
	}

	render.NoContent(w, r)
}
