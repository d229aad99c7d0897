package loginform

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
)

// ErrIncompleteForm is returned by ReadConsoleForm when input ends before
// both fields were read.
var ErrIncompleteForm = errors.New("username and password are required")

// ConsoleForm holds field values entered on a terminal.
type ConsoleForm struct {
	username string
	password string
}

// ReadConsoleForm prompts on out and reads one line per field from in.
// Trailing line endings are stripped; other whitespace is kept as typed.
func ReadConsoleForm(in io.Reader, out io.Writer) (*ConsoleForm, error) {
	sc := bufio.NewScanner(in)

	read := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", ErrIncompleteForm
		}
		return strings.TrimRight(sc.Text(), "\r"), nil
	}

	username, err := read("Username: ")
	if err != nil {
		return nil, err
	}
	password, err := read("Password: ")
	if err != nil {
		return nil, err
	}

	return &ConsoleForm{username: username, password: password}, nil
}

func (f *ConsoleForm) Username() string { return f.username }
func (f *ConsoleForm) Password() string { return f.password }

// ConsoleView prints status messages and resolves navigation targets
// against a base URL.
type ConsoleView struct {
	mu      sync.Mutex
	out     io.Writer
	base    *url.URL
	message string
	target  string
}

// NewConsoleView creates a view writing to out. Navigation paths are
// resolved against base.
func NewConsoleView(out io.Writer, base *url.URL) *ConsoleView {
	return &ConsoleView{out: out, base: base}
}

func (v *ConsoleView) SetMessage(msg string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.message = msg
	fmt.Fprintln(v.out, msg)
}

func (v *ConsoleView) Navigate(path string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.target = v.base.ResolveReference(&url.URL{Path: path}).String()
	fmt.Fprintf(v.out, "Redirecting to %s\n", v.target)
}

// Message is the last message shown.
func (v *ConsoleView) Message() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.message
}

// Target is the URL of the last navigation, empty if none happened.
func (v *ConsoleView) Target() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.target
}

// Submit is a SubmitEvent for input that has no default action.
type Submit struct {
	prevented bool
}

func (s *Submit) PreventDefault() { s.prevented = true }

// Prevented reports whether PreventDefault was called.
func (s *Submit) Prevented() bool { return s.prevented }
