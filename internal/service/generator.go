package service

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

var ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", generator.MinLength, generator.MaxLength)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	src           generator.Source
	defaultLength int
	hash          func(string) (string, error)
}

// NewGeneratorService creates a new GeneratorService. A nil src uses the
// package default source, which is safe for concurrent use; a *rand.Rand is not.
// defaultLength is clamped to the allowed bounds.
func NewGeneratorService(src generator.Source, defaultLength int) *GeneratorService {
	return &GeneratorService{
		src:           src,
		defaultLength: generator.ClampLength(defaultLength),
		hash:          crypto.HashPassword,
	}
}

// Generate produces a password based on the given request. Disabling every
// class is not an error: the response carries an empty password.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	defaults := generator.DefaultConfig()
	cfg := generator.Config{
		Length:    req.Length,
		Lowercase: boolOrDefault(req.Lowercase, defaults.Lowercase),
		Uppercase: boolOrDefault(req.Uppercase, defaults.Uppercase),
		Digits:    boolOrDefault(req.Digits, defaults.Digits),
		Symbols:   boolOrDefault(req.Symbols, defaults.Symbols),
	}

	if cfg.Length == 0 {
		cfg.Length = s.defaultLength
	}
	if cfg.Length < generator.MinLength || cfg.Length > generator.MaxLength {
		return model.GenerateResponse{}, ErrLengthOutOfRange
	}

	password := generator.Generate(cfg, s.src)
	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}

	if req.Hash && password != "" {
		hash, err := s.hash(password)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
		resp.Hash = hash
	}

	return resp, nil
}

// IsValidationError reports whether err was caused by bad input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrLengthOutOfRange)
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
