// Package api implements v1 of the preference store HTTP API. It exposes
// the raw store over physical keys, so namespacing and value encoding
// remain client-side concerns and a remote store composes with the kv
// package the same way a local one does.
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	actx "go.hackfix.me/prefs/app/ctx"
)

// Handler is the API endpoint handler.
type Handler struct {
	appCtx *actx.Context
}

// Router returns the API router.
func Router(appCtx *actx.Context) chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))
	// Limit request sizes to 10MB
	r.Use(middleware.RequestSize(10 << 20))

	h := Handler{appCtx}
	r.Get("/store/value/*", h.StoreGet)
	r.Head("/store/value/*", h.StoreContains)
	r.Post("/store/value/*", h.StoreSet)
	r.Delete("/store/value/*", h.StoreRemove)
	r.Get("/store/keys", h.StoreKeys)
	r.Post("/store/clear", h.StoreClear)

	return r
}
