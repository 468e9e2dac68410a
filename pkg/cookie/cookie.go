package cookie

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
)

const minSecretLength = 32

// MaxValueSize bounds an encoded cookie value, leaving room for the name
// and attributes within the 4KB browser limit.
const MaxValueSize = 3800

// Manager writes cookies with shared defaults and signs them on request.
type Manager struct {
	secrets  [][]byte
	defaults Options
}

// New creates a Manager. Empty secrets are ignored; the rest must be at
// least 32 bytes long.
func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([][]byte, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d bytes, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		keys = append(keys, []byte(s))
	}

	return &Manager{secrets: keys, defaults: defaultOptions().with(opts)}, nil
}

// Set writes a plain cookie. Values over MaxValueSize are rejected.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	if len(value) > MaxValueSize {
		return fmt.Errorf("%w: %d bytes", ErrTooLarge, len(value))
	}

	http.SetCookie(w, m.defaults.with(opts).cookie(name, value))
	return nil
}

// Get returns the raw value of the named cookie.
func (m *Manager) Get(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrCookieNotFound
		}
		return "", err
	}
	return c.Value, nil
}

// Delete expires the named cookie.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	http.SetCookie(w, m.defaults.expired(name))
}

// SetSigned writes value with an HMAC signature from the newest secret.
func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.Set(w, name, m.sign([]byte(value)), opts...)
}

// GetSigned returns the value of a cookie written by SetSigned. Any secret
// the Manager holds may have signed it.
func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	signed, err := m.Get(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(signed)
}

func mac(secret, data []byte) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write(data)
	return h.Sum(nil)
}

func (m *Manager) sign(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data) + "." +
		base64.RawURLEncoding.EncodeToString(mac(m.secrets[0], data))
}

func (m *Manager) verify(signed string) (string, error) {
	encoded, signature, ok := strings.Cut(signed, ".")
	if !ok {
		return "", ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return "", ErrInvalidFormat
	}
	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, secret := range m.secrets {
		if hmac.Equal(sig, mac(secret, data)) {
			return string(data), nil
		}
	}
	return "", ErrInvalidSignature
}
