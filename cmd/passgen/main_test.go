package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/vaultpass/passgen-go/internal/generator"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    generator.Config
		wantErr bool
	}{
		{
			name: "defaults",
			args: nil,
			want: generator.Config{Length: 16, Lowercase: true, Digits: true},
		},
		{
			name: "all classes",
			args: []string{"-length", "24", "-upper", "-symbols"},
			want: generator.Config{Length: 24, Lowercase: true, Uppercase: true, Digits: true, Symbols: true},
		},
		{
			name: "digits only",
			args: []string{"-lower=false", "-length=10"},
			want: generator.Config{Length: 10, Digits: true},
		},
		{
			name: "length clamped",
			args: []string{"-length", "100"},
			want: generator.Config{Length: 32, Lowercase: true, Digits: true},
		},
		{
			name:    "bad count",
			args:    []string{"-count", "0"},
			wantErr: true,
		},
		{
			name:    "unknown flag",
			args:    []string{"-colour"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseFlags(newFlagSet(), tt.args, 16)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.cfg != tt.want {
				t.Errorf("cfg = %+v, want %+v", opts.cfg, tt.want)
			}
		})
	}
}

func TestParseFlagsDefaultLength(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), nil, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.cfg.Length != 20 {
		t.Errorf("length = %d, want 20", opts.cfg.Length)
	}
}

func TestRunOnce(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-count", "3", "-lower=false", "-length", "10"}, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	last, err := runOnce(opts, &out, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	pattern := regexp.MustCompile(`^[0-9]{10}$`)
	for _, l := range lines {
		if !pattern.MatchString(l) {
			t.Errorf("line %q does not match %s", l, pattern)
		}
	}
	if last != lines[2] {
		t.Errorf("last = %q, want %q", last, lines[2])
	}
}

func TestRunOnceHash(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-hash", "-secure"}, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var hashed []string
	hash := func(pw string) (string, error) {
		hashed = append(hashed, pw)
		return "hash:" + pw, nil
	}

	var out bytes.Buffer
	last, err := runOnce(opts, &out, hash)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := out.String(), last+"\nhash:"+last+"\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if len(hashed) != 1 {
		t.Errorf("hash called %d times, want 1", len(hashed))
	}

	boom := errors.New("boom")
	if _, err := runOnce(opts, io.Discard, func(string) (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Errorf("expected wrapped hash error, got %v", err)
	}
}

func TestRunOnceNoClasses(t *testing.T) {
	opts, err := parseFlags(newFlagSet(), []string{"-lower=false", "-digits=false", "-hash"}, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out bytes.Buffer
	last, err := runOnce(opts, &out, func(string) (string, error) {
		t.Fatal("hash should not be called for an empty password")
		return "", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != "" || out.String() != "\n" {
		t.Errorf("expected a single empty line, got last=%q out=%q", last, out.String())
	}
}
