package flash

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/toastkit/pkg/cookie"
)

// Message is a single flashed notification.
type Message struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// Store keeps flashed messages in a signed cookie.
type Store struct {
	cookies *cookie.Manager
	name    string
}

// New creates a Store writing through cookies.
func New(cookies *cookie.Manager, opts ...Option) *Store {
	s := &Store{cookies: cookies, name: DefaultCookieName}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add appends m to the messages already flashed on r. It fails with
// cookie.ErrTooLarge once the messages no longer fit in a cookie.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, m Message) error {
	messages, _ := s.read(r)
	messages = append(messages, m)

	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}
	if err := s.cookies.SetSigned(w, s.name, string(data)); err != nil {
		return fmt.Errorf("store flash: %w", err)
	}
	return nil
}

// Pop returns the flashed messages and clears the cookie. A missing or
// tampered cookie yields no messages.
func (s *Store) Pop(w http.ResponseWriter, r *http.Request) []Message {
	messages, err := s.read(r)
	if errors.Is(err, cookie.ErrCookieNotFound) {
		return nil
	}
	s.cookies.Delete(w, s.name)
	if err != nil {
		return nil
	}
	return messages
}

func (s *Store) read(r *http.Request) ([]Message, error) {
	data, err := s.cookies.GetSigned(r, s.name)
	if err != nil {
		return nil, err
	}

	var messages []Message
	if err := json.Unmarshal([]byte(data), &messages); err != nil {
		return nil, cookie.ErrInvalidFormat
	}
	return messages, nil
}
