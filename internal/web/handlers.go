package web

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/handler"
	"github.com/dmitrymomot/toastkit/pkg/flash"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/ratelimiter"
	"github.com/dmitrymomot/toastkit/pkg/toast"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

const (
	maxMessageRunes  = 500
	maxCategoryRunes = 32
)

// showRequest is shared by the datastar endpoint and the form fallback.
// Message is a pointer so that an omitted message can be told apart from an
// empty one, which is a valid toast.
type showRequest struct {
	Message  *string `json:"message"`
	Category string  `json:"category"`
}

func (req showRequest) validate() error {
	var message string
	if req.Message != nil {
		message = *req.Message
	}
	return validator.Apply(
		validator.Present("message", req.Message),
		validator.MaxRunes("message", message, maxMessageRunes),
		validator.ValidUTF8("message", message),
		validator.MaxRunes("category", req.Category, maxCategoryRunes),
	)
}

// bindForm reads the form fallback. Datastar requests are left to Signals.
func bindForm(r *http.Request, v any) error {
	req, ok := v.(*showRequest)
	if !ok || handler.IsDataStar(r) {
		return handler.ErrBinderNotApplicable
	}
	if err := r.ParseForm(); err != nil {
		return handler.BadRequest("invalid form")
	}
	if values, ok := r.PostForm["message"]; ok && len(values) > 0 {
		req.Message = &values[0]
	}
	req.Category = r.PostForm.Get("category")
	return nil
}

type handlers struct {
	deps Deps
	errs handler.ErrorHandler
}

// index renders the page under a fresh page id. Messages flashed before a
// redirect are rendered inline; the page's stream carries their fade and
// removal when it connects in time.
func (h *handlers) index(ctx handler.Context, _ struct{}) handler.Response {
	pageID := h.deps.NewPageID()
	pageCtx := toast.WithPage(ctx, pageID)

	var toasts []templ.Component
	for _, m := range h.deps.Flash.Pop(ctx.ResponseWriter(), ctx.Request()) {
		toasts = append(toasts, h.deps.Notifier.Inline(pageCtx, m.Message, m.Category))
	}
	return handler.Templ(page(pageData{Title: h.deps.AppName, PageID: pageID, Toasts: toasts}))
}

// stream relays toast patches to one page until it disconnects.
func (h *handlers) stream(ctx handler.Context, _ struct{}) handler.Response {
	pageID := toast.PageFrom(ctx)
	if pageID == "" {
		return handler.Error(handler.BadRequest("missing page id"))
	}

	return handler.SSE(func(stream handler.StreamContext) error {
		h.deps.Log.DebugContext(stream, "toast stream opened",
			logger.Component("web"),
			logger.PageID(pageID),
			slog.Int("streams", h.deps.Hub.Len()+1),
		)
		h.deps.Metrics.StreamOpened()
		defer h.deps.Metrics.StreamClosed()

		err := toast.Relay(stream, h.deps.Hub.Subscribe(stream, pageID), stream, h.deps.Notifier.Style(),
			toast.OnSent(func(p toast.Patch) { h.deps.Metrics.PatchSent(p.Op) }),
		)
		h.deps.Log.DebugContext(stream, "toast stream closed", logger.Component("web"), logger.Error(err))
		return err
	})
}

func (h *handlers) show(ctx handler.Context, req showRequest) handler.Response {
	if err := req.validate(); err != nil {
		return handler.Error(err)
	}
	if err := h.deps.Notifier.Show(ctx, *req.Message, req.Category); err != nil {
		return handler.Error(err)
	}
	return handler.Empty()
}

func (h *handlers) flash(ctx handler.Context, req showRequest) handler.Response {
	if err := req.validate(); err != nil {
		return handler.Error(err)
	}
	m := flash.Message{Message: *req.Message, Category: req.Category}
	if err := h.deps.Flash.Add(ctx.ResponseWriter(), ctx.Request(), m); err != nil {
		return handler.Error(err)
	}
	return handler.Redirect("/", http.StatusSeeOther)
}

// tooManyRequests reports a throttled request through the same error path
// as handler failures, so datastar pages see an error toast.
func (h *handlers) tooManyRequests(w http.ResponseWriter, r *http.Request, _ *ratelimiter.Result) {
	h.deps.Metrics.Throttled()
	h.errs(handler.NewContext(w, r),
		handler.NewHTTPError(http.StatusTooManyRequests, "Too many notifications, slow down"))
}
