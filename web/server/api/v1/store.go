package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"go.hackfix.me/prefs/web/server/types"
)

// StoreGet returns the value associated with the received key.
func (h *Handler) StoreGet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		_ = render.Render(w, r, types.ErrBadRequest(errors.New("key not provided")))
		return
	}

	value, ok, err := h.appCtx.Store.Get(r.Context(), key)
	if err != nil {
		_ = render.Render(w, r, types.ErrInternal(err))
		return
	}

	// The payload is returned as-is, not wrapped in a JSON envelope.
	w.Header().Del("Content-Type")

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	_, err = io.Copy(w, strings.NewReader(value))
	if err != nil {
		_ = render.Render(w, r, types.ErrInternal(err))
	}
}

// StoreContains reports the existence of the received key via the response
// status, without returning its value.
func (h *Handler) StoreContains(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	ok, err := h.appCtx.Store.ContainsKey(r.Context(), key)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// StoreSet stores the request body as the value of the received key.
func (h *Handler) StoreSet(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		_ = render.Render(w, r, types.ErrBadRequest(errors.New("key not provided")))
		return
	}

	value, err := io.ReadAll(r.Body)
	if err != nil {
		_ = render.Render(w, r, types.ErrBadRequest(err))
		return
	}

	if err := h.appCtx.Store.Set(r.Context(), key, string(value)); err != nil {
		_ = render.Render(w, r, types.ErrInternal(err))
		return
	}

	_ = render.Render(w, r, &types.StoreSetResponse{
		Response: &types.Response{StatusCode: http.StatusOK},
	})
}

// StoreRemove deletes the received key.
func (h *Handler) StoreRemove(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "*")
	if key == "" {
		_ = render.Render(w, r, types.ErrBadRequest(errors.New("key not provided")))
		return
	}

	if err := h.appCtx.Store.Remove(r.Context(), key); err != nil {
		_ = render.Render(w, r, types.ErrInternal(err))
		return
	}

	_ = render.Render(w, r, &types.StoreRemoveResponse{
		Response: &types.Response{StatusCode: http.StatusOK},
	})
}

// StoreKeys returns the keys in the store, optionally limited to a prefix.
func (h *Handler) StoreKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.appCtx.Store.Keys(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		_ = render.Render(w, r, types.ErrInternal(err))
		return
	}

	_ = render.Render(w, r, &types.StoreKeysResponse{
		Response: &types.Response{StatusCode: http.StatusOK},
		Keys:     keys,
	})
}

// StoreClear deletes all keys in the store, across all namespaces.
func (h *Handler) StoreClear(w http.ResponseWriter, r *http.Request) {
	if err := h.appCtx.Store.Clear(r.Context()); err != nil {
		_ = render.Render(w, r, types.ErrInternal(err))
		return
	}

	_ = render.Render(w, r, &types.StoreClearResponse{
		Response: &types.Response{StatusCode: http.StatusOK},
	})
}
