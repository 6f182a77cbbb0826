package users

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/Ethan7628/HTTP-Methods/internal/errresponse"
	"github.com/Ethan7628/HTTP-Methods/internal/model"
)

type ctxKey int8

const userCtxKey ctxKey = iota

// Ctx middleware is used to load a User object from the URL parameter passed
// through as the request. In case the User could not be found, we stop here
// and return a 404. A non-numeric id parses to zero, which matches no user,
// so malformed ids take the same 404 path.
func (rs *Resource) Ctx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "userID"))
		if err != nil {
			id = 0
		}

		u, ok := rs.store.Get(id)
		if !ok {
			if err := render.Render(w, r, errresponse.ErrNotFound("User")); err != nil {
				rs.log.Errorw(err.Error())
			}

			return
		}

		ctx := context.WithValue(r.Context(), userCtxKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userFromCtx(ctx context.Context) model.User {
	// Handlers below Ctx always find the user here. If not, the zero value
	// surfaces as an impossible id 0 record rather than a panic.
	u, _ := ctx.Value(userCtxKey).(model.User)

	return u
}
