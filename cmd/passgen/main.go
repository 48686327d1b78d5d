package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/console"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/generator"
)

const tokenTTL = 30 * 24 * time.Hour

// options holds the parsed command-line flags.
type options struct {
	cfg         generator.Config
	count       int
	copy        bool
	secure      bool
	hash        bool
	interactive bool
	mintToken   string
}

func parseFlags(fs *flag.FlagSet, args []string, defaultLength int) (options, error) {
	opts := options{cfg: generator.DefaultConfig()}
	opts.cfg.Length = defaultLength

	fs.IntVar(&opts.cfg.Length, "length", defaultLength, fmt.Sprintf("password length (%d-%d)", generator.MinLength, generator.MaxLength))
	fs.BoolVar(&opts.cfg.Lowercase, "lower", true, "include lowercase letters")
	fs.BoolVar(&opts.cfg.Uppercase, "upper", false, "include uppercase letters")
	fs.BoolVar(&opts.cfg.Digits, "digits", true, "include digits")
	fs.BoolVar(&opts.cfg.Symbols, "symbols", false, "include symbols !@#$%^&*()_+=")
	fs.IntVar(&opts.count, "count", 1, "number of passwords to print")
	fs.BoolVar(&opts.copy, "copy", false, "copy the last password to the clipboard")
	fs.BoolVar(&opts.secure, "secure", false, "draw from crypto/rand instead of math/rand")
	fs.BoolVar(&opts.hash, "hash", false, "print an argon2id hash after each password")
	fs.BoolVar(&opts.interactive, "i", false, "interactive mode")
	fs.StringVar(&opts.mintToken, "mint-token", "", "print an API token for `subject` signed with AUTH_SECRET and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.count < 1 {
		return options{}, errors.New("count must be at least 1")
	}
	opts.cfg.Length = generator.ClampLength(opts.cfg.Length)
	return opts, nil
}

func (o options) source() generator.Source {
	if o.secure {
		return generator.CryptoSource{}
	}
	return nil
}

// runOnce prints opts.count passwords and returns the last one. With every
// class disabled it prints empty lines.
func runOnce(opts options, w io.Writer, hash func(string) (string, error)) (string, error) {
	if generator.Pool(opts.cfg) == "" {
		slog.Warn("no character class enabled, passwords will be empty")
	}

	var last string
	for i := 0; i < opts.count; i++ {
		last = generator.Generate(opts.cfg, opts.source())
		fmt.Fprintln(w, last)

		if opts.hash && last != "" {
			h, err := hash(last)
			if err != nil {
				return "", fmt.Errorf("hashing password: %w", err)
			}
			fmt.Fprintln(w, h)
		}
	}
	return last, nil
}

func systemClipboard() form.Clipboard {
	if clipboard.Unsupported {
		return nil
	}
	return form.ClipboardFunc(clipboard.WriteAll)
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := config.Load()
	slog.SetDefault(cfg.NewLogger())

	opts, err := parseFlags(flag.CommandLine, os.Args[1:], cfg.DefaultLength)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}

	if opts.mintToken != "" {
		token, err := crypto.IssueToken(opts.mintToken, cfg.AuthSecret, tokenTTL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	if opts.interactive {
		f := form.New(
			form.WithDefaultLength(opts.cfg.Length),
			form.WithSource(opts.source()),
			form.WithClipboard(systemClipboard()),
			form.WithNotifier(func(string) { fmt.Println("Password copied to clipboard") }),
		)
		if err := console.Run(f, os.Stdin, os.Stdout); err != nil {
			slog.Error("reading input", "error", err)
			os.Exit(1)
		}
		return
	}

	last, err := runOnce(opts, os.Stdout, crypto.HashPassword)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if opts.copy && last != "" {
		cb := systemClipboard()
		if cb == nil {
			slog.Warn("clipboard is not supported on this system")
			return
		}
		if err := cb.WriteAll(last); err != nil {
			slog.Warn("copy to clipboard failed", "error", err)
			return
		}
		fmt.Fprintln(os.Stderr, "Password copied to clipboard")
	}
}
