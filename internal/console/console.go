// Package console drives a form.Form from line-oriented terminal input.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/form"
	"github.com/vaultpass/passgen-go/internal/generator"
)

const prompt = "passgen> "

// Run reads commands from r until EOF or quit, writing output to w. Every
// recomputed password is printed as it changes.
func Run(f *form.Form, r io.Reader, w io.Writer) error {
	cancel := f.OnChange(func(password string) {
		printPassword(w, password)
	})
	defer cancel()

	fmt.Fprintln(w, "Password generator (type 'help' for commands, 'quit' to exit)")
	printState(w, f)

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if done := handle(f, w, line); done {
			return nil
		}
	}
}

// handle dispatches one command line. It returns true when the user quits.
func handle(f *form.Form, w io.Writer, line string) bool {
	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true

	case "help", "h", "?":
		printHelp(w)

	case "show", "ls":
		printState(w, f)

	case "length", "len":
		if len(args) != 1 {
			fmt.Fprintf(w, "usage: length N (%d-%d)\n", generator.MinLength, generator.MaxLength)
			return false
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(w, "invalid length %q\n", args[0])
			return false
		}
		f.SetLength(n)

	case "copy", "c":
		copied, err := f.Copy()
		switch {
		case errors.Is(err, form.ErrNoClipboard):
			fmt.Fprintln(w, "clipboard is not available")
		case err != nil:
			slog.Warn("copy to clipboard failed", "error", err)
			fmt.Fprintln(w, "copy failed")
		case !copied:
			fmt.Fprintln(w, "nothing to copy")
		}

	default:
		class, err := generator.ParseClass(cmd)
		if err != nil {
			fmt.Fprintf(w, "unknown command %q (type 'help')\n", cmd)
			return false
		}
		if len(args) == 0 {
			f.Toggle(class)
			return false
		}
		on, ok := parseSwitch(args[0])
		if !ok {
			fmt.Fprintf(w, "usage: %s [on|off]\n", class)
			return false
		}
		f.SetClass(class, on)
	}

	return false
}

func parseSwitch(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "on", "yes", "y", "true", "1":
		return true, true
	case "off", "no", "n", "false", "0":
		return false, true
	}
	return false, false
}

func printPassword(w io.Writer, password string) {
	if password == "" {
		fmt.Fprintln(w, "password: (empty, enable at least one character class)")
		return
	}
	fmt.Fprintf(w, "password: %s\n", password)
}

func printState(w io.Writer, f *form.Form) {
	cfg := f.Config()
	fmt.Fprintf(w, "length: %d\n", cfg.Length)
	for _, c := range generator.Classes() {
		mark := " "
		if cfg.Enabled(c) {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, c)
	}
	printPassword(w, f.Password())
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, `Commands:
  length N                  set the length (%d-%d, clamped)
  lower|upper|digits|symbols [on|off]
                            switch a character class (no argument toggles)
  show                      print the current settings and password
  copy                      copy the password to the clipboard
  quit                      exit
`, generator.MinLength, generator.MaxLength)
}
