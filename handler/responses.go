package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Empty responds 204 No Content. Datastar treats it as "nothing to patch".
func Empty() Response {
	return EmptyWithStatus(http.StatusNoContent)
}

// EmptyWithStatus responds with status and no body.
func EmptyWithStatus(status int) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(status)
		return nil
	})
}

// Error returns a Response that fails with err, handing it to the error handler.
func Error(err error) Response {
	return ResponseFunc(func(http.ResponseWriter, *http.Request) error {
		return err
	})
}

// Redirect sends the client to url. Datastar requests are redirected through
// SSE; others get a regular redirect with code.
func Redirect(url string, code int) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).Redirect(url)
		}
		http.Redirect(w, r, url, code)
		return nil
	})
}

// Templ renders component. Datastar requests receive it as an element patch
// shaped by opts; others receive plain HTML.
func Templ(component templ.Component, opts ...datastar.PatchElementOption) Response {
	return ResponseFunc(func(w http.ResponseWriter, r *http.Request) error {
		if IsDataStar(r) {
			return datastar.NewSSE(w, r).PatchElementTempl(component, opts...)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(r.Context(), w)
	})
}
