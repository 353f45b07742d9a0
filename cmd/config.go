package cmd

import (
	"bufio"
	"fmt"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"

	"github.com/inovacc/fuelr/internal/fuel"
	"github.com/inovacc/fuelr/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage stored configuration",
	Long: `Manage the configuration persisted in the state store.

Available Commands:
  show       Show the stored configuration
  set        Set a configuration key
  unset      Clear a configuration key
  reset      Reset the configuration to defaults
  set-token  Set the private token without echoing it

Keys:
  url        Fuel server base URL
  token      Private token sent with every request
  cache      Path of the model cache file
  threshold  Cache age after which a refresh is due (e.g. 24h)
  output     Default output format: table, json or csv`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration key",
	Long: `Set a configuration key in the state store.

Examples:
  fuelr config set url https://fuel.gazebosim.org/1.0/
  fuelr config set threshold 24h
  fuelr config set output json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Clear a configuration key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the configuration to defaults",
	RunE:  runConfigReset,
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-token",
	Short: "Set the private token without echoing it",
	Long: `Prompt for the private token with echo disabled and store it.

The token is sent as the Private-token header on every catalog request.

Examples:
  fuelr config set-token`,
	RunE: runConfigSetToken,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configSetTokenCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := st.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s (default)", fuel.DefaultBaseURL)
	}

	cachePath := cfg.CachePath
	if cachePath == "" {
		cachePath = "(default)"
	}

	threshold := cfg.RefreshThreshold
	if threshold == "" {
		threshold = "(none, cache never goes stale)"
	}

	output := cfg.Output
	if output == "" {
		output = model.OutputTable
	}

	_, _ = fmt.Fprintf(os.Stdout, "url:       %s\n", baseURL)
	_, _ = fmt.Fprintf(os.Stdout, "token:     %s\n", maskToken(cfg.Token))
	_, _ = fmt.Fprintf(os.Stdout, "cache:     %s\n", cachePath)
	_, _ = fmt.Fprintf(os.Stdout, "threshold: %s\n", threshold)
	_, _ = fmt.Fprintf(os.Stdout, "output:    %s\n", output)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := st.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "url":
		u, err := url.Parse(value)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid URL %q", value)
		}

		// Page URLs are built by appending to the base, so it must end
		// with a slash
		if !strings.HasSuffix(value, "/") {
			value += "/"
		}

		cfg.BaseURL = value
	case "token":
		cfg.Token = value
	case "cache":
		path, err := expandPath(value)
		if err != nil {
			return err
		}

		cfg.CachePath = path
	case "threshold":
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid threshold %q: %w", value, err)
		}

		cfg.RefreshThreshold = value
	case "output":
		switch value {
		case model.OutputTable, model.OutputJSON, model.OutputCSV:
		default:
			return fmt.Errorf("unknown output format %q (want table, json or csv)", value)
		}

		cfg.Output = value
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := st.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Set %s.\n", key)

	return nil
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := args[0]

	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := st.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch key {
	case "url":
		cfg.BaseURL = ""
	case "token":
		cfg.Token = ""
	case "cache":
		cfg.CachePath = ""
	case "threshold":
		cfg.RefreshThreshold = ""
	case "output":
		cfg.Output = model.OutputTable
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := st.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Cleared %s.\n", key)

	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	if !promptConfirm("Reset configuration to defaults? [y/N]: ") {
		_, _ = fmt.Fprintln(os.Stdout, "Cancelled.")
		return nil
	}

	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg := model.DefaultConfig()

	if err := st.SaveConfig(&cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, "Configuration reset.")

	return nil
}

func runConfigSetToken(cmd *cobra.Command, args []string) error {
	token, err := readToken("Enter private token: ")
	if err != nil {
		return fmt.Errorf("failed to read token: %w", err)
	}

	if token == "" {
		return fmt.Errorf("token is empty")
	}

	st, err := getStore()
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = st.Close() }()

	cfg, err := st.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Token = token

	if err := st.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Token stored (%s).\n", maskToken(token))

	return nil
}

// readToken reads a secret from stdin without echoing it when stdin is a
// terminal.
func readToken(prompt string) (string, error) {
	_, _ = fmt.Fprint(os.Stderr, prompt)

	// Check if stdin is a terminal
	fd := int(syscall.Stdin)
	if term.IsTerminal(fd) {
		token, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(os.Stderr) // New line after hidden input

		if err != nil {
			return "", err
		}

		return string(token), nil
	}

	// Fallback for non-terminal (piped input)
	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}

	return "", fmt.Errorf("failed to read token")
}
