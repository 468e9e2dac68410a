package flash

// DefaultCookieName is the cookie used when WithCookieName is not given.
const DefaultCookieName = "__flash"

type Option func(*Store)

func WithCookieName(name string) Option {
	return func(s *Store) {
		if name != "" {
			s.name = name
		}
	}
}
