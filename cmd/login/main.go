package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/sbilibin2017/gw-admin-status/internal/config"
	"github.com/sbilibin2017/gw-admin-status/internal/facades"
	"github.com/sbilibin2017/gw-admin-status/internal/logger"
	"github.com/sbilibin2017/gw-admin-status/internal/loginform"
)

var errNotLoggedIn = errors.New("login was not accepted")

func main() {
	configPath, baseURL := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	if baseURL != "" {
		cfg.LoginBaseURL = baseURL
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, errNotLoggedIn) {
			os.Exit(1)
		}
		log.Fatalf("login: %v", err)
	}
}

// usage describes the command. The password is read as a plain line and is
// echoed by the terminal.
func usage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, "Usage: %s [flags]\n\n", fs.Name())
	fmt.Fprintln(w, "Reads a username and a password from stdin, one per line, and submits them")
	fmt.Fprintln(w, "to the login endpoint. The password is NOT hidden: the terminal echoes it")
	fmt.Fprintln(w, "as typed. Pipe it in from a file or another command to keep it off screen.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}

// parseFlags returns the config file path and an optional base URL override.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	u := flag.String("url", "", "Base URL of the server, overrides LOGIN_BASE_URL")
	flag.Usage = func() { usage(flag.CommandLine.Output(), flag.CommandLine) }
	flag.Parse()
	return *c, *u
}

// run reads the form from in, submits it once and reports on out.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	if err := logger.InitializeConsole(cfg.LogLevel); err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer logger.Log.Sync()

	base, err := url.Parse(cfg.LoginBaseURL)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}

	auth, err := facades.NewAuthHTTPFacade(cfg.LoginBaseURL, cfg.LoginTimeout)
	if err != nil {
		return err
	}

	form, err := loginform.ReadConsoleForm(in, out)
	if err != nil {
		return err
	}

	view := loginform.NewConsoleView(out, base)
	loginform.NewController(form, view, auth).HandleSubmit(ctx, &loginform.Submit{})

	if view.Target() == "" {
		return errNotLoggedIn
	}
	return nil
}
