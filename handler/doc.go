// Package handler adapts typed request handlers to net/http for pages driven
// by datastar.
//
// A HandlerFunc receives a Context and a bound request value and returns a
// Response. Wrap turns it into an http.HandlerFunc, running binders,
// decorators and the error handler:
//
//	type showRequest struct {
//		Message  string `json:"message"`
//		Category string `json:"category"`
//	}
//
//	show := func(ctx handler.Context, req showRequest) handler.Response {
//		if err := notifier.Show(ctx, req.Message, req.Category); err != nil {
//			return handler.Error(err)
//		}
//		return handler.Empty()
//	}
//
//	r.Post("/toasts", handler.Wrap(show,
//		handler.WithBinders[showRequest](handler.Signals()),
//		handler.WithErrorHandler[showRequest](handler.NewErrorHandler(log, notifier)),
//	))
//
// # Streaming
//
// SSE returns a Response that keeps the connection open and hands the handler
// a StreamContext for pushing templ components as datastar element patches.
// The toast relay uses it to deliver attach, fade and detach patches.
//
// # Errors
//
// NewErrorHandler logs every failure and, for datastar requests, reports it to
// the user as an error toast. Other requests get a plain HTTP error.
package handler
