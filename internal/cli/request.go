package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andyle182810/gfetch/httpclient"
	"github.com/andyle182810/gfetch/internal/config"
	"github.com/andyle182810/gfetch/logutil"
	"github.com/spf13/cobra"
)

func newRequestCommand(opts *rootOptions, method string) *cobra.Command {
	use := strings.ToLower(method) + " PATH"
	args := cobra.ExactArgs(1)

	if acceptsBody(method) {
		use += " [BODY|-]"
		args = cobra.RangeArgs(1, 2) //nolint:mnd
	}

	return &cobra.Command{ //nolint:exhaustruct
		Use:   use,
		Short: fmt.Sprintf("Send a %s request", method),
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			var body any

			if len(args) > 1 {
				raw, err := readBody(args[1], cmd.InOrStdin())
				if err != nil {
					return err
				}

				body = raw
			}

			return runRequest(cmd, opts, method, args[0], body)
		},
	}
}

func acceptsBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// readBody takes the body literally, or from in when arg is "-".
func readBody(arg string, in io.Reader) (json.RawMessage, error) {
	raw := []byte(arg)

	if arg == "-" {
		var err error

		raw, err = io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body: %w", err)
		}
	}

	if !json.Valid(raw) {
		return nil, ErrInvalidBody
	}

	return json.RawMessage(raw), nil
}

func parseHeaders(values []string) (map[string]string, error) {
	headers := make(map[string]string, len(values))

	for _, value := range values {
		key, val, ok := strings.Cut(value, ":")

		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHeader, value)
		}

		headers[key] = strings.TrimSpace(val)
	}

	return headers, nil
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	if o.configFile != "" {
		cfg.ConfigFile = o.configFile
	}

	if o.baseURL != "" {
		cfg.BaseURL = o.baseURL
	}

	if o.token != "" {
		cfg.Token = o.token
	}

	if o.redirect != "" {
		cfg.Redirect = o.redirect
	}

	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	return cfg, nil
}

func runRequest(cmd *cobra.Command, opts *rootOptions, method, path string, body any) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	headers, err := parseHeaders(opts.headers)
	if err != nil {
		return err
	}

	logger := logutil.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)

	clientOpts := []httpclient.Option{httpclient.WithLogger(logger)}
	if opts.requestID {
		clientOpts = append(clientOpts, httpclient.WithRequestIDHeader())
	}

	registry, err := cfg.Registry(clientOpts...)
	if err != nil {
		return err
	}

	client, ok := registry.Client(opts.profile)
	if !ok {
		return fmt.Errorf("%w %q, known profiles: [%s]",
			ErrUnknownProfile, opts.profile, strings.Join(registry.Names(), ", "))
	}

	resp, err := client.Do(cmd.Context(), method, path, body, httpclient.WithRequestHeaders(headers))
	if err != nil {
		return err
	}

	if err := writeEnvelope(cmd.OutOrStdout(), resp); err != nil {
		return err
	}

	if !resp.Success {
		return ErrUnsuccessful
	}

	return nil
}

func writeEnvelope(w io.Writer, resp *httpclient.Response[json.RawMessage]) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(resp); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	return nil
}
