// Package cli provides the gfetch command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// Version information, set by build flags in release builds.
var (
	Version   = "dev"
	GitCommit = "none"
)

const (
	ExitOK           = 0
	ExitError        = 1
	ExitUnsuccessful = 2
)

var (
	ErrUnsuccessful   = errors.New("the server reported an unsuccessful response")
	ErrUnknownProfile = errors.New("unknown profile")
	ErrInvalidHeader  = errors.New("invalid header, expected 'Key: Value'")
	ErrInvalidBody    = errors.New("request body is not valid JSON")
)

type rootOptions struct {
	profile    string
	configFile string
	baseURL    string
	token      string
	redirect   string
	logLevel   string
	headers    []string
	requestID  bool
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{} //nolint:exhaustruct

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "gfetch",
		Short: "Send JSON requests and print the response envelope",
		Long: `gfetch sends a request to a configured JSON API and prints the
{success, status, statusText, data} envelope.

The default profile is built from GFETCH_BASE_URL and GFETCH_TOKEN. More
profiles can be declared in a YAML file passed with --config or GFETCH_CONFIG_FILE.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.profile, "profile", "p", "default", "profile to send the request with")
	flags.StringVarP(&opts.configFile, "config", "c", "", "YAML profile file (overrides GFETCH_CONFIG_FILE)")
	flags.StringVar(&opts.baseURL, "base-url", "", "base URL of the default profile (overrides GFETCH_BASE_URL)")
	flags.StringVar(&opts.token, "token", "", "bearer token of the default profile (overrides GFETCH_TOKEN)")
	flags.StringVar(&opts.redirect, "redirect", "", "redirect policy of the default profile: follow, error or manual")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (overrides GFETCH_LOG_LEVEL)")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "extra request header as 'Key: Value', repeatable")
	flags.BoolVar(&opts.requestID, "request-id", false, "send a fresh X-Request-ID with the request")

	cmd.AddCommand(
		newRequestCommand(opts, http.MethodGet),
		newRequestCommand(opts, http.MethodPost),
		newRequestCommand(opts, http.MethodPut),
		newRequestCommand(opts, http.MethodPatch),
		newRequestCommand(opts, http.MethodDelete),
		newVersionCommand(),
	)

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("gfetch version %s\n", Version)
			cmd.Printf("  commit: %s\n", GitCommit)
		},
	}
}

// ExitCode maps the result of a command run to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUnsuccessful):
		return ExitUnsuccessful
	default:
		return ExitError
	}
}

// Execute runs the root command until it completes or the process is interrupted.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrUnsuccessful) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	return ExitCode(err)
}
