// Package generator builds random passwords from a set of enabled character classes.
package generator

import (
	"strings"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_+="

	MinLength     = 5
	MaxLength     = 32
	DefaultLength = 16
)

// Config selects the password length and which character classes feed the pool.
type Config struct {
	Length    int
	Lowercase bool
	Uppercase bool
	Digits    bool
	Symbols   bool
}

// DefaultConfig returns the initial form state: 16 characters, lowercase and digits.
func DefaultConfig() Config {
	return Config{
		Length:    DefaultLength,
		Lowercase: true,
		Digits:    true,
	}
}

// Enabled reports whether class c is switched on in cfg.
func (cfg Config) Enabled(c Class) bool {
	switch c {
	case Lowercase:
		return cfg.Lowercase
	case Uppercase:
		return cfg.Uppercase
	case Digits:
		return cfg.Digits
	case Symbols:
		return cfg.Symbols
	}
	return false
}

// With returns a copy of cfg with class c set to on.
func (cfg Config) With(c Class, on bool) Config {
	switch c {
	case Lowercase:
		cfg.Lowercase = on
	case Uppercase:
		cfg.Uppercase = on
	case Digits:
		cfg.Digits = on
	case Symbols:
		cfg.Symbols = on
	}
	return cfg
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	if n < MinLength {
		return MinLength
	}
	if n > MaxLength {
		return MaxLength
	}
	return n
}

// Pool concatenates the character sets of the enabled classes in the fixed order
// lowercase, uppercase, digits, symbols.
func Pool(cfg Config) string {
	var sb strings.Builder
	for _, c := range Classes() {
		if cfg.Enabled(c) {
			sb.WriteString(c.Charset())
		}
	}
	return sb.String()
}

// Generate draws cfg.Length characters independently and uniformly from the pool.
// An empty pool or a non-positive length yields an empty string. A nil src falls
// back to DefaultSource.
func Generate(cfg Config, src Source) string {
	pool := Pool(cfg)
	if pool == "" || cfg.Length <= 0 {
		return ""
	}
	if src == nil {
		src = DefaultSource
	}

	result := make([]byte, cfg.Length)
	for i := range result {
		result[i] = pool[src.IntN(len(pool))]
	}
	return string(result)
}
