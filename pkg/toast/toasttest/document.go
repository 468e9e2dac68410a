package toasttest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// ErrUnknownElement is returned by Fade and Detach for elements that are not attached.
var ErrUnknownElement = errors.New("toasttest: element not attached")

// Element is an attached toast as the document currently shows it.
type Element struct {
	Notification toast.Notification
	HTML         string
}

// Document is an in-memory toast.Display. It renders each element with
// toast.Component so tests can inspect the exact markup a page would receive.
type Document struct {
	mu       sync.Mutex
	style    toast.Style
	order    []string
	elements map[string]Element
	failWith error
	detached []string
}

// NewDocument returns an empty document using toast.DefaultStyle.
func NewDocument() *Document {
	return &Document{
		style:    toast.DefaultStyle(),
		elements: make(map[string]Element),
	}
}

// FailAttach makes subsequent Attach calls return err. Nil restores normal behavior.
func (d *Document) FailAttach(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failWith = err
}

func (d *Document) Attach(ctx context.Context, n toast.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failWith != nil {
		return d.failWith
	}
	if _, ok := d.elements[n.ID]; ok {
		return fmt.Errorf("toasttest: element %s already attached", n.ID)
	}

	el, err := d.render(ctx, n)
	if err != nil {
		return err
	}
	d.elements[n.ID] = el
	d.order = append(d.order, n.ID)
	return nil
}

func (d *Document) Fade(ctx context.Context, n toast.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.elements[n.ID]; !ok {
		return ErrUnknownElement
	}
	el, err := d.render(ctx, n)
	if err != nil {
		return err
	}
	d.elements[n.ID] = el
	return nil
}

func (d *Document) Detach(_ context.Context, n toast.Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.elements[n.ID]; !ok {
		return ErrUnknownElement
	}
	delete(d.elements, n.ID)
	d.order = slices.DeleteFunc(d.order, func(id string) bool { return id == n.ID })
	d.detached = append(d.detached, n.ID)
	return nil
}

// Elements returns the attached elements in attach order.
func (d *Document) Elements() []Element {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.elements[id])
	}
	return out
}

// Element returns the attached element with id.
func (d *Document) Element(id string) (Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	el, ok := d.elements[id]
	return el, ok
}

// Len reports the number of attached elements.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.order)
}

// Detached returns the ids of removed elements in removal order.
func (d *Document) Detached() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.detached)
}

func (d *Document) render(ctx context.Context, n toast.Notification) (Element, error) {
	var buf bytes.Buffer
	if err := toast.Component(n, d.style).Render(ctx, &buf); err != nil {
		return Element{}, err
	}
	return Element{Notification: n, HTML: buf.String()}, nil
}
