package toast

import (
	"strconv"
	"strings"
	"time"
)

// Style describes the presentation shared by every toast. Lengths are in
// CSS pixels.
type Style struct {
	Right        int
	Bottom       int
	PaddingY     int
	PaddingX     int
	BorderRadius int
	ZIndex       int
	TextColor    string
	Shadow       string
}

// DefaultStyle is a white-on-color card 20px from the bottom-right corner,
// above all other content.
func DefaultStyle() Style {
	return Style{
		Right:        20,
		Bottom:       20,
		PaddingY:     12,
		PaddingX:     18,
		BorderRadius: 8,
		ZIndex:       9999,
		TextColor:    "white",
		Shadow:       "0 6px 18px rgba(0,0,0,0.12)",
	}
}

// CSS renders the inline style attribute for n.
func (s Style) CSS(n Notification) string {
	var b strings.Builder
	decl := func(prop, value string) {
		b.WriteString(prop)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteByte(';')
	}

	decl("position", "fixed")
	decl("right", px(s.Right))
	decl("bottom", px(s.Bottom))
	decl("background", n.Color)
	decl("color", s.TextColor)
	decl("padding", px(s.PaddingY)+" "+px(s.PaddingX))
	decl("border-radius", px(s.BorderRadius))
	decl("box-shadow", s.Shadow)
	decl("z-index", strconv.Itoa(s.ZIndex))
	decl("opacity", strconv.Itoa(n.Opacity()))
	if n.State != StateVisible {
		decl("transition", "opacity "+seconds(n.Fade))
	}

	return b.String()
}

func px(v int) string {
	return strconv.Itoa(v) + "px"
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
