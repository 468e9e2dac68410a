package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.5/bundles/datastar.js"

type pageData struct {
	Title  string
	PageID string
	Toasts []templ.Component
}

var demoCategories = []string{"success", "error", "info", "warning"}

// page renders the demo document. Toast elements are appended to body, both
// the inline ones rendered here and the ones that arrive over the stream.
func page(data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := templ.EscapeString(data.Title)
		signals := templ.EscapeString(`{pageId: ` + strconv.Quote(data.PageID) + `, message: 'Saved successfully', category: 'info'}`)

		if _, err := io.WriteString(w, `<!doctype html><html lang="en"><head><meta charset="utf-8">`+
			`<meta name="viewport" content="width=device-width, initial-scale=1">`+
			`<title>`+title+`</title>`+
			`<script type="module" src="`+datastarScript+`"></script>`+
			`<style>body{font-family:system-ui,sans-serif;margin:40px}button{margin-right:8px}</style>`+
			`</head>`+
			`<body data-signals="`+signals+`" data-on-load="@get('/toasts/stream')">`+
			`<main><h1>`+title+`</h1>`+
			`<p><input data-bind-message placeholder="Message" size="40"></p><p>`); err != nil {
			return err
		}

		for _, c := range demoCategories {
			if _, err := io.WriteString(w, `<button data-on-click="$category = '`+c+`'; @post('/toasts')">`+c+`</button>`); err != nil {
				return err
			}
		}

		if _, err := io.WriteString(w, `</p>`+
			`<noscript><form method="post" action="/toasts/flash">`+
			`<input name="message" placeholder="Message"> `+
			`<select name="category"><option>success</option><option>error</option><option>info</option></select> `+
			`<button type="submit">Show</button></form></noscript>`+
			`</main>`); err != nil {
			return err
		}

		for _, t := range data.Toasts {
			if err := t.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}
