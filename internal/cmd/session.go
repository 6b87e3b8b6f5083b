package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/doctor-call/cli/internal/api"
	"github.com/gravitrone/doctor-call/cli/internal/config"
	"github.com/gravitrone/doctor-call/cli/internal/logging"
)

const (
	flagBackendURL = "backend-url"
	flagVerbose    = "verbose"
)

var (
	errBackendUnreachable = errors.New("backend not reachable")
	errCallFailed         = errors.New("failed to trigger call")
)

// BindGlobalFlags registers the persistent flags every subcommand reads.
func BindGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().String(flagBackendURL, "", "backend base URL (overrides config and $"+config.EnvBackendURL+")")
	root.PersistentFlags().BoolP(flagVerbose, "v", false, "log backend requests to stderr")
}

// session bundles what a command needs to talk to the backend.
type session struct {
	cfg    *config.Config
	client *api.Client
	log    *zap.Logger
}

func newSession(c *cobra.Command) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if f := c.Flag(flagBackendURL); f != nil && f.Value.String() != "" {
		cfg.BackendURL = f.Value.String()
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	verbose := false
	if f := c.Flag(flagVerbose); f != nil {
		verbose, _ = strconv.ParseBool(f.Value.String())
	}
	log := logging.New(verbose)

	client := api.NewClient(cfg.BackendURL,
		api.WithLogger(log),
		api.WithTimeouts(cfg.HealthTimeout, cfg.CallTimeout),
	)
	log.Debug("session ready", zap.String("backend_url", client.BaseURL()))
	return &session{cfg: cfg, client: client, log: log}, nil
}

func isInteractiveTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok || file == nil {
		return false
	}
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func prompt(r *bufio.Reader, out io.Writer, label, fallback string) string {
	fmt.Fprint(out, label)
	line, _ := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}
