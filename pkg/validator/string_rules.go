package validator

import (
	"fmt"
	"unicode/utf8"
)

// Present requires the value to be set. An empty string counts as set;
// use it for fields where "" is meaningful but omission is not.
func Present[T any](field string, value *T) Rule {
	return Rule{
		Check: func() bool { return value != nil },
		Error: ValidationError{Field: field, Message: "field is required"},
	}
}

// MaxRunes caps the length of value in characters.
func MaxRunes(field, value string, limit int) Rule {
	return Rule{
		Check: func() bool { return utf8.RuneCountInString(value) <= limit },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be at most %d characters long", limit),
		},
	}
}

// ValidUTF8 rejects byte sequences that are not valid UTF-8.
func ValidUTF8(field, value string) Rule {
	return Rule{
		Check: func() bool { return utf8.ValidString(value) },
		Error: ValidationError{Field: field, Message: "must be valid UTF-8 text"},
	}
}
