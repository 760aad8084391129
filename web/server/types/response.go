package types

import (
	"net/http"

	"github.com/go-chi/render"
)

// Response is the envelope of all API responses.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
}

// Render implements the render.Renderer interface.
func (r *Response) Render(w http.ResponseWriter, req *http.Request) error {
	render.Status(req, r.StatusCode)
	if r.Status == "" {
		r.Status = http.StatusText(r.StatusCode)
	}
	return nil
}

// ErrBadRequest returns a response renderer for client errors.
func ErrBadRequest(err error) render.Renderer {
	return &Response{
		StatusCode: http.StatusBadRequest,
		Error:      err.Error(),
	}
}

// ErrNotFound returns a response renderer for missing resources.
func ErrNotFound(err error) render.Renderer {
	return &Response{
		StatusCode: http.StatusNotFound,
		Error:      err.Error(),
	}
}

// ErrInternal returns a response renderer for server errors.
func ErrInternal(err error) render.Renderer {
	return &Response{
		StatusCode: http.StatusInternalServerError,
		Error:      err.Error(),
	}
}
