package handler

import (
	_ "embed"
	"net/http"
)

// The UI is one self-contained page compiled into the binary. Its script is
// deliberately ES5-only: the target runtime is the constrained browser of an
// embedded device, which predates arrow functions, let/const, and template
// literals.
//
//go:embed index.html
var indexHTML []byte

// HandleIndex serves GET / and GET /index.html.
func (h *SnippetHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(indexHTML); err != nil {
		h.logger.Error("failed to write UI page", "error", err.Error())
	}
}
