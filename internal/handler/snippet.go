// Package handler maps HTTP requests onto the snippet service and serves the
// bundled single-page UI. Handlers are stateless; every request is a fresh
// sequence of service calls.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cashmeredev/berrysnip/internal/apperror"
	"github.com/cashmeredev/berrysnip/internal/service"
)

type SnippetHandler struct {
	svc    *service.SnippetService
	logger *slog.Logger
}

func NewSnippetHandler(svc *service.SnippetService, logger *slog.Logger) *SnippetHandler {
	return &SnippetHandler{svc: svc, logger: logger}
}

// snippetRequest is the POST body for create and update. Pointer fields
// distinguish an absent key from a present-but-empty value: an absent title
// defaults to "Untitled", an explicitly empty one stays empty.
type snippetRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Language *string `json:"language"`
	Tags     *string `json:"tags"`
}

func (r snippetRequest) fields() (title, content, language, tags string) {
	title = "Untitled"
	if r.Title != nil {
		title = *r.Title
	}
	if r.Content != nil {
		content = *r.Content
	}
	if r.Language != nil {
		language = *r.Language
	}
	if r.Tags != nil {
		tags = *r.Tags
	}
	return title, content, language, tags
}

// decodeBody parses a POST body. An empty body is treated as an empty object,
// matching the original server; malformed JSON gets the contract's 400 body.
func (h *SnippetHandler) decodeBody(w http.ResponseWriter, r *http.Request) (snippetRequest, bool) {
	var req snippetRequest

	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("failed to read request body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON"})
		return req, false
	}
	if len(body) == 0 {
		return req, true
	}
	if err := json.Unmarshal(body, &req); err != nil {
		h.logger.Warn("invalid JSON body", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "Invalid JSON"})
		return req, false
	}
	return req, true
}

// HandleList serves GET /api/snippets?search=&tag=.
func (h *SnippetHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	tag := r.URL.Query().Get("tag")

	snippets, err := h.svc.List(r.Context(), search, tag)
	if err != nil {
		writeStorageError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"snippets": snippets})
}

// HandleGet serves GET /api/snippet/{id}.
func (h *SnippetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		// A non-numeric id can't name a record: same not-found answer.
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Snippet not found"})
		return
	}

	snippet, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody{Error: "Snippet not found"})
			return
		}
		writeStorageError(w)
		return
	}

	writeJSON(w, http.StatusOK, snippet)
}

// HandleTags serves GET /api/tags.
func (h *SnippetHandler) HandleTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.svc.DistinctTags(r.Context())
	if err != nil {
		writeStorageError(w)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tags": tags})
}

// HandleCreate serves POST /api/snippets.
func (h *SnippetHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	title, content, language, tags := req.fields()
	snippet, err := h.svc.Create(r.Context(), title, content, language, tags)
	if err != nil {
		writeStorageError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"id": snippet.ID, "success": true})
}

// HandleUpdate serves POST /api/snippet/{id}/update.
//
// The response is {"success":true} even when the id does not exist: the store
// reports not-found but this route has always answered success, and clients
// of the original API depend on that shape.
func (h *SnippetHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}

	id, parseErr := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if parseErr == nil {
		title, content, language, tags := req.fields()
		if err := h.svc.Update(r.Context(), id, title, content, language, tags); err != nil &&
			!errors.Is(err, apperror.ErrNotFound) {
			writeStorageError(w)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleDelete serves POST /api/snippet/{id}/delete. Same success-regardless
// contract as update.
func (h *SnippetHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, parseErr := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if parseErr == nil {
		if err := h.svc.Delete(r.Context(), id); err != nil &&
			!errors.Is(err, apperror.ErrNotFound) {
			writeStorageError(w)
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// HandleNotFoundGET answers unknown GET paths: bare 404, no body.
func (h *SnippetHandler) HandleNotFoundGET(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}

// HandleNotFoundPOST answers unknown POST paths with the JSON contract body.
func (h *SnippetHandler) HandleNotFoundPOST(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "Not found"})
}
