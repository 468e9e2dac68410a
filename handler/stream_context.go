package handler

import (
	"encoding/json"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with methods that push updates over an
// established SSE connection. It satisfies toast.Sender.
type StreamContext interface {
	Context

	// SendComponent patches component into the page.
	//
	//	err := stream.SendComponent(view,
	//		datastar.WithSelector("body"),
	//		datastar.WithMode(datastar.ElementPatchModeAppend),
	//	)
	SendComponent(component templ.Component, opts ...datastar.PatchElementOption) error

	// SendSignals updates frontend signals.
	SendSignals(signals map[string]any) error
}

type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

func (c *streamContext) SendComponent(component templ.Component, opts ...datastar.PatchElementOption) error {
	return c.sse.PatchElementTempl(component, opts...)
}

func (c *streamContext) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
