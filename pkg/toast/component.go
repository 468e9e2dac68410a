package toast

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// dismissKeyframes hides an element that carries the dismiss animation.
const dismissKeyframes = `<style>@keyframes toast-out{to{opacity:0;visibility:hidden}}</style>`

// Component renders n as a single <div>. The message is HTML-escaped, so
// markup in it shows up as literal text.
func Component(n Notification, style Style) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeElement(&b, n, style.CSS(n))
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// InlineComponent renders n for a full page load. The element fades itself
// out after visibleFor with a CSS animation, so it disappears on pages that
// never open an event stream.
func InlineComponent(n Notification, style Style, visibleFor time.Duration) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(dismissKeyframes)
		css := style.CSS(n) + "animation:toast-out " + seconds(n.Fade) + " " + seconds(visibleFor) + " forwards;"
		writeElement(&b, n, css)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeElement(b *strings.Builder, n Notification, css string) {
	b.WriteString(`<div id="`)
	b.WriteString(templ.EscapeString(n.ID))
	b.WriteString(`" data-category="`)
	b.WriteString(templ.EscapeString(n.Category))
	b.WriteString(`" data-state="`)
	b.WriteString(string(n.State))
	b.WriteString(`" style="`)
	b.WriteString(templ.EscapeString(css))
	b.WriteString(`">`)
	b.WriteString(templ.EscapeString(n.Message))
	b.WriteString(`</div>`)
}
