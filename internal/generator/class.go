package generator

import (
	"errors"
	"strings"
)

var ErrUnknownClass = errors.New("unknown character class")

// Class identifies one of the four fixed alphabets.
type Class int

const (
	Lowercase Class = iota
	Uppercase
	Digits
	Symbols
)

// Classes returns every class in pool order.
func Classes() []Class {
	return []Class{Lowercase, Uppercase, Digits, Symbols}
}

// Charset returns the characters belonging to c.
func (c Class) Charset() string {
	switch c {
	case Lowercase:
		return lowercaseChars
	case Uppercase:
		return uppercaseChars
	case Digits:
		return digitChars
	case Symbols:
		return symbolChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	case Digits:
		return "digits"
	case Symbols:
		return "symbols"
	}
	return "unknown"
}

// ParseClass accepts a class name or one of its short aliases.
func ParseClass(name string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "lowercase", "lower", "l":
		return Lowercase, nil
	case "uppercase", "upper", "u":
		return Uppercase, nil
	case "digits", "digit", "numbers", "number", "d", "n":
		return Digits, nil
	case "symbols", "symbol", "s":
		return Symbols, nil
	}
	return 0, ErrUnknownClass
}
