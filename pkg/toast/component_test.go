package toast_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestColorFor(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"success":  "#198754",
		"error":    "#dc3545",
		"info":     "#0d6efd",
		"warning":  "#6c757d",
		"danger":   "#6c757d",
		"Success":  "#6c757d",
		"":         "#6c757d",
		" success": "#6c757d",
	}
	for category, want := range tests {
		assert.Equal(t, want, toast.ColorFor(category), "category %q", category)
	}
}

func render(t *testing.T, n toast.Notification) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, toast.Component(n, toast.DefaultStyle()).Render(context.Background(), &buf))
	return buf.String()
}

func TestComponent(t *testing.T) {
	t.Parallel()

	n := toast.Notification{
		ID:       "toast-1",
		Message:  `Fish & "chips" <script>alert(1)</script>`,
		Category: "error",
		Color:    toast.ColorError,
		State:    toast.StateVisible,
		Fade:     400 * time.Millisecond,
	}

	t.Run("visible", func(t *testing.T) {
		t.Parallel()
		html := render(t, n)

		assert.Equal(t,
			`<div id="toast-1" data-category="error" data-state="visible" style="`+
				`position:fixed;right:20px;bottom:20px;background:#dc3545;color:white;`+
				`padding:12px 18px;border-radius:8px;box-shadow:0 6px 18px rgba(0,0,0,0.12);`+
				`z-index:9999;opacity:1;">`+
				`Fish &amp; &#34;chips&#34; &lt;script&gt;alert(1)&lt;/script&gt;</div>`,
			html)
	})

	t.Run("fading out", func(t *testing.T) {
		t.Parallel()
		fading := n
		fading.State = toast.StateFadingOut

		html := render(t, fading)
		assert.Contains(t, html, `data-state="fading_out"`)
		assert.Contains(t, html, "opacity:0;transition:opacity 0.4s;")
	})

	t.Run("attribute values are escaped", func(t *testing.T) {
		t.Parallel()
		odd := n
		odd.Category = `"><img src=x>`

		html := render(t, odd)
		assert.NotContains(t, html, "<img")
	})
}

func TestInlineComponent(t *testing.T) {
	t.Parallel()

	n := toast.Notification{
		ID:      "toast-1",
		Message: "Logged out",
		Color:   toast.ColorInfo,
		State:   toast.StateVisible,
		Fade:    400 * time.Millisecond,
	}

	tests := []struct {
		name       string
		visibleFor time.Duration
		fade       time.Duration
		want       string
	}{
		{"defaults", 3 * time.Second, 400 * time.Millisecond, "animation:toast-out 0.4s 3s forwards;"},
		{"custom", 1500 * time.Millisecond, 250 * time.Millisecond, "animation:toast-out 0.25s 1.5s forwards;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inline := n
			inline.Fade = tt.fade

			var buf bytes.Buffer
			require.NoError(t, toast.InlineComponent(inline, toast.DefaultStyle(), tt.visibleFor).Render(context.Background(), &buf))
			html := buf.String()

			assert.True(t, strings.HasPrefix(html, "<style>@keyframes toast-out{to{opacity:0;visibility:hidden}}</style>"))
			assert.Contains(t, html, `id="toast-1"`)
			assert.Contains(t, html, "opacity:1;"+tt.want)
		})
	}
}

func TestStyle_CSS_Custom(t *testing.T) {
	t.Parallel()

	s := toast.DefaultStyle()
	s.Right, s.Bottom, s.ZIndex = 8, 16, 10

	css := s.CSS(toast.Notification{Color: toast.ColorInfo, State: toast.StateRemoved, Fade: 1500 * time.Millisecond})
	assert.Contains(t, css, "right:8px;bottom:16px;")
	assert.Contains(t, css, "z-index:10;")
	assert.Contains(t, css, "opacity:0;transition:opacity 1.5s;")
}
