package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"miguel.build/cfurl/internal/dashboard"
	"miguel.build/cfurl/internal/errors"
	"miguel.build/cfurl/internal/logging"
)

// registerDashboardCommands generates one cobra command per entry in
// the dashboard table and attaches user-configured aliases. Dispatch is
// driven entirely by the table; adding a dashboard page never touches
// this file.
func registerDashboardCommands() {
	resolver := dashboard.NewResolver(cfg.BaseURL)

	byName := make(map[string]*cobra.Command)
	for _, c := range resolver.Commands() {
		cc := newDashboardCommand(resolver, c)
		byName[c.Name] = cc
		rootCmd.AddCommand(cc)
	}

	for alias, target := range cfg.Aliases {
		spec, ok := resolver.Lookup(target)
		if !ok {
			logging.Warnf("alias %q points at unknown command %q", alias, target)
			continue
		}
		cc := byName[spec.Name]
		cc.Aliases = append(cc.Aliases, alias)
	}
}

func newDashboardCommand(resolver *dashboard.Resolver, c *dashboard.Command) *cobra.Command {
	cc := &cobra.Command{
		Use:     useLine(c),
		Aliases: c.Aliases,
		Short:   c.Summary,
		Args:    dashboardArgs(c),
		RunE:    runDashboard(resolver, c),
	}

	if len(c.Sections) > 0 {
		cc.Flags().StringP("section", "s", "",
			fmt.Sprintf("section to open (%s)", strings.Join(c.SectionValues(), ", ")))
	}

	return cc
}

// useLine renders the usage string from the command's argument policy.
func useLine(c *dashboard.Command) string {
	switch {
	case c.Zone == dashboard.ZoneRequired:
		return c.Name + " <zone>"
	case c.Zone == dashboard.ZoneOptional:
		return c.Name + " [zone]"
	case c.Resource != "":
		return fmt.Sprintf("%s [%s]", c.Name, c.Resource)
	default:
		return c.Name
	}
}

// dashboardArgs rejects extra positional arguments with a typed error.
// Missing required arguments are left to the resolver so all argument
// validation reports through one code path.
func dashboardArgs(c *dashboard.Command) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		maxArgs := 0
		if c.AcceptsArgument() {
			maxArgs = 1
		}
		if len(args) > maxArgs {
			return errors.UnexpectedArgument(c.Name, args[maxArgs])
		}
		return nil
	}
}

func runDashboard(resolver *dashboard.Resolver, c *dashboard.Command) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		req := dashboard.Request{}

		if len(args) == 1 {
			if c.Zone != dashboard.ZoneNone {
				req.Zone = args[0]
			} else {
				req.Resource = args[0]
			}
		}

		if len(c.Sections) > 0 {
			section, err := cmd.Flags().GetString("section")
			if err != nil {
				return err
			}
			if section == "" {
				section = cfg.DefaultSection
			}
			req.Section = section
		}

		rawURL, err := resolver.Resolve(c.Name, req)
		if err != nil {
			return err
		}

		// Always print the URL for scripting, even when opening a browser.
		fmt.Fprintln(cmd.OutOrStdout(), rawURL)

		if printOnly || cfg.PrintOnly {
			return nil
		}

		if err := launch.Open(rawURL); err != nil {
			return err
		}

		if !quiet && !cfg.Quiet && term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Opened in your browser")
		}

		return nil
	}
}
