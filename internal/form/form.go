// Package form holds the state behind a password generator form: the current
// configuration and the password derived from it.
//
// A Form is driven by discrete input events from a single goroutine and is not
// safe for concurrent use.
package form

import (
	"errors"
	"fmt"

	"github.com/vaultpass/passgen-go/internal/generator"
)

var ErrNoClipboard = errors.New("no clipboard configured")

// Clipboard receives the password on copy.
type Clipboard interface {
	WriteAll(text string) error
}

// ClipboardFunc adapts a function to the Clipboard interface.
type ClipboardFunc func(text string) error

func (f ClipboardFunc) WriteAll(text string) error { return f(text) }

// Notifier is called once after a successful copy.
type Notifier func(password string)

// Option configures a Form at construction.
type Option func(*Form)

// WithDefaultLength sets the initial length, clamped to the allowed bounds.
func WithDefaultLength(n int) Option {
	return func(f *Form) { f.cfg.Length = generator.ClampLength(n) }
}

// WithSource replaces the random source used for every recomputation.
func WithSource(src generator.Source) Option {
	return func(f *Form) { f.src = src }
}

// WithClipboard sets the copy target.
func WithClipboard(cb Clipboard) Option {
	return func(f *Form) { f.clipboard = cb }
}

// WithNotifier sets the copy acknowledgment callback.
func WithNotifier(fn Notifier) Option {
	return func(f *Form) { f.notify = fn }
}

type subscriber struct {
	id int
	fn func(string)
}

// Form owns one configuration and the password derived from it.
type Form struct {
	cfg      generator.Config
	password string
	src      generator.Source

	clipboard Clipboard
	notify    Notifier

	subs   []subscriber
	nextID int
}

// New creates a Form with the default configuration and computes its initial password.
func New(opts ...Option) *Form {
	f := &Form{cfg: generator.DefaultConfig()}
	for _, opt := range opts {
		opt(f)
	}
	f.password = generator.Generate(f.cfg, f.src)
	return f
}

// Config returns the current configuration.
func (f *Form) Config() generator.Config { return f.cfg }

// Password returns the current password. It is empty when no class is enabled.
func (f *Form) Password() string { return f.password }

// SetLength clamps n and recomputes the password with the classes enabled now.
func (f *Form) SetLength(n int) string {
	f.cfg.Length = generator.ClampLength(n)
	return f.recompute()
}

// SetClass switches class c on or off and recomputes the password.
func (f *Form) SetClass(c generator.Class, on bool) string {
	f.cfg = f.cfg.With(c, on)
	return f.recompute()
}

// Toggle flips class c and recomputes the password.
func (f *Form) Toggle(c generator.Class) string {
	return f.SetClass(c, !f.cfg.Enabled(c))
}

// OnChange registers fn to run after every recomputation. The returned function
// removes the registration.
func (f *Form) OnChange(fn func(password string)) (cancel func()) {
	id := f.nextID
	f.nextID++
	f.subs = append(f.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range f.subs {
			if s.id == id {
				f.subs = append(f.subs[:i], f.subs[i+1:]...)
				return
			}
		}
	}
}

// Copy writes the current password to the clipboard and acknowledges it through
// the notifier. An empty password is skipped and reports false.
func (f *Form) Copy() (bool, error) {
	if f.password == "" {
		return false, nil
	}
	if f.clipboard == nil {
		return false, ErrNoClipboard
	}
	if err := f.clipboard.WriteAll(f.password); err != nil {
		return false, fmt.Errorf("writing clipboard: %w", err)
	}
	if f.notify != nil {
		f.notify(f.password)
	}
	return true, nil
}

func (f *Form) recompute() string {
	f.password = generator.Generate(f.cfg, f.src)
	for _, s := range append([]subscriber(nil), f.subs...) {
		s.fn(f.password)
	}
	return f.password
}
