package toast

import "context"

type pageKey struct{}

// WithPage scopes toasts shown with the returned context to the page with id.
func WithPage(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, pageKey{}, id)
}

// PageFrom returns the page id set by WithPage, or "".
func PageFrom(ctx context.Context) string {
	id, _ := ctx.Value(pageKey{}).(string)
	return id
}
