package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/toastkit/pkg/environment"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/validator"
)

// ErrorNotifier shows an error message to the user. *toast.Notifier satisfies it.
type ErrorNotifier interface {
	Error(ctx context.Context, message string) error
}

// ErrorInfo is the classification of a handler error.
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// classifyError maps err to a status code, a user-facing message and a log level.
// Details of unexpected errors are kept out of the message.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Message:    "An error occurred processing your request",
		LogLevel:   slog.LevelError,
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	} else if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		info.StatusCode = http.StatusBadRequest
		info.Message = verrs.First()
	}

	if info.StatusCode >= http.StatusBadRequest && info.StatusCode < http.StatusInternalServerError {
		info.LogLevel = slog.LevelWarn
	}
	return info
}

// NewErrorHandler returns an ErrorHandler that logs err and reports it to the
// user. Datastar requests get an error toast and a 204, so the page stays
// as it is; other requests get a plain HTTP error.
func NewErrorHandler(log *slog.Logger, notifier ErrorNotifier) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		info := classifyError(err)
		if info.StatusCode >= http.StatusInternalServerError && environment.FromContext(ctx).IsDevelopment() {
			info.Message = err.Error()
		}

		log.LogAttrs(r.Context(), info.LogLevel, "request error",
			logger.RequestID(middleware.GetReqID(r.Context())),
			logger.Error(err),
			slog.Int("status_code", info.StatusCode),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if !IsDataStar(r) || notifier == nil {
			http.Error(ctx.ResponseWriter(), info.Message, info.StatusCode)
			return
		}

		if toastErr := notifier.Error(ctx, info.Message); toastErr != nil {
			log.WarnContext(r.Context(), "failed to show error toast",
				logger.Error(toastErr),
				logger.Component("error_handler"),
			)
		}
		ctx.ResponseWriter().WriteHeader(http.StatusNoContent)
	}
}
