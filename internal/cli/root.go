// Package cli wires the cfurl command tree.
package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"miguel.build/cfurl/internal/config"
	"miguel.build/cfurl/internal/errors"
	"miguel.build/cfurl/internal/launcher"
	"miguel.build/cfurl/internal/logging"
)

var (
	cfgFile   string
	debugMode bool
	printOnly bool
	quiet     bool

	// cfg is the loaded configuration, set once in Execute before any
	// command runs
	cfg = config.DefaultConfig()

	// launch opens resolved URLs; swapped for a fake in tests
	launch launcher.Launcher = launcher.New("")
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cfurl",
	Short: "Quick access to Cloudflare dashboard pages",
	Long: `cfurl maps short commands to Cloudflare dashboard URLs and opens
your default browser at the right page.

Zone-scoped commands take a zone name, account-scoped commands take an
optional resource name, and the rest take no arguments at all.`,

	Example: `  cfurl dns miguel.build          # DNS settings for a zone
  cfurl security miguel.build -s waf
  cfurl workers my-worker         # a specific worker
  cfurl r2 "my bucket"            # resource names are percent-encoded
  cfurl dash --print              # print the URL, skip the browser`,

	// Unknown first arguments land here instead of cobra's default
	// unknown-command error so they map to a typed failure.
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cfurl/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&printOnly, "print", "p", false, "print the resolved URL without opening a browser")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress the confirmation line")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		initLogging()
	}
}

// Execute loads configuration, builds the dashboard command tree, and
// runs the CLI. The returned error carries a type that maps to the
// process exit code.
func Execute() error {
	cfg = loadConfig()

	registerDashboardCommands()

	launch = launcher.New(cfg.Browser)

	return rootCmd.Execute()
}

// loadConfig reads the config file before cobra parses flags, since the
// generated command tree depends on configured aliases. The --config
// value is pre-scanned from os.Args for the same reason.
func loadConfig() *config.Config {
	path := configPathFromArgs(os.Args[1:])

	loaded, err := config.LoadWithPath(path)
	if err != nil {
		logging.Errorf("ignoring configuration: %v", err)
		return config.DefaultConfig()
	}
	return loaded
}

// configPathFromArgs extracts the --config value from raw arguments.
func configPathFromArgs(args []string) string {
	for i, arg := range args {
		switch {
		case arg == "--config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return ""
}

func initLogging() {
	logCfg := &logging.Config{
		Level:      cfg.Logging.Level,
		File:       cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
	}
	if debugMode {
		logCfg.Level = "debug"
	}
	logging.Init(logCfg)
}

// runRoot prints help for a bare invocation and rejects anything that
// did not match a registered command.
func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.UnknownCommand(args[0])
	}
	return cmd.Help()
}
