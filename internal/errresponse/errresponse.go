// Package errresponse holds the error payloads & renderers shared by the
// API resources.
package errresponse

import (
	"net/http"

	"github.com/go-chi/render"
)

// ErrResponse renderer type for handling all sorts of errors.
//
// The HTTP status code travels out-of-band on the render context; the body
// itself carries a single error message, e.g. {"error":"User not found"}.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	ErrorText string `json:"error"` // user-facing error message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)

	return nil
}

// ErrInvalidRequest maps a request binding or validation error to a 400.
func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      err.Error(),
	}
}

func ErrRender(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		ErrorText:      err.Error(),
	}
}

// ErrNotFound reports that no record of the named resource matches the
// requested id, e.g. ErrNotFound("User") renders {"error":"User not found"}.
func ErrNotFound(resource string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      resource + " not found",
	}
}
