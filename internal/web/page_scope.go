package web

import (
	"bytes"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/toastkit/handler"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

const (
	maxPageIDLength   = 64
	maxSignalsPeekLen = 64 << 10
)

type pageSignals struct {
	PageID string `json:"pageId"`
}

// scopeToPage routes toasts raised while serving a datastar request to the
// page that sent it. The page id travels as the pageId signal. The request
// body is left intact for the handler's own binders.
func scopeToPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !handler.IsDataStar(r) {
			next.ServeHTTP(w, r)
			return
		}

		var sig pageSignals
		if r.Method == http.MethodGet {
			_ = datastar.ReadSignals(r, &sig)
		} else if r.Body != nil {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxSignalsPeekLen+1))
			if err == nil && len(body) <= maxSignalsPeekLen {
				peek := r.WithContext(r.Context())
				peek.Body = io.NopCloser(bytes.NewReader(body))
				_ = datastar.ReadSignals(peek, &sig)
			}
			r.Body = struct {
				io.Reader
				io.Closer
			}{io.MultiReader(bytes.NewReader(body), r.Body), r.Body}
		}

		if sig.PageID != "" && len(sig.PageID) <= maxPageIDLength {
			r = r.WithContext(toast.WithPage(r.Context(), sig.PageID))
		}
		next.ServeHTTP(w, r)
	})
}
