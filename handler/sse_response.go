package handler

import (
	"net/http"
)

// SSEHandler runs for the lifetime of a Server-Sent Events connection. The
// connection closes when it returns or the client disconnects.
type SSEHandler func(stream StreamContext) error

type sseResponse struct {
	handler SSEHandler
}

// Render rejects non-datastar requests and runs the handler with a StreamContext.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	base := NewContext(w, r)
	sse := base.SSE()
	if sse == nil {
		return ErrSSENotInitialized
	}

	return s.handler(&streamContext{Context: base, sse: sse})
}

// SSE creates a streaming Response.
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		return toast.Relay(stream, hub.Subscribe(stream, toast.PageFrom(stream)), stream, notifier.Style())
//	})
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
