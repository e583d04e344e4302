// Package dashboard maps cfurl commands to Cloudflare dashboard URLs.
package dashboard

import "sort"

// ZonePolicy describes whether a command takes a zone argument.
type ZonePolicy int

const (
	// ZoneNone means the command never takes a zone
	ZoneNone ZonePolicy = iota

	// ZoneOptional means the command resolves with or without a zone
	ZoneOptional

	// ZoneRequired means the command cannot resolve without a zone
	ZoneRequired
)

// Command describes a single dashboard destination: its name, the
// arguments it accepts, and the URL template variants it resolves to.
// Templates are paths relative to the dashboard base URL and may
// contain the placeholders {zone} and {resource}; substituted values
// are percent-encoded during resolution.
type Command struct {
	// Name is the unique command name on the CLI
	Name string

	// Aliases are alternative names for the command
	Aliases []string

	// Summary is the one-line help text
	Summary string

	// Zone states whether a zone argument is required, optional, or not accepted
	Zone ZonePolicy

	// Resource names the optional secondary resource ("worker", "bucket", ...).
	// Empty means the command does not accept a resource argument.
	Resource string

	// Template is the variant used when no optional zone or resource is given.
	// For zone-required commands it contains the {zone} placeholder.
	Template string

	// ZoneTemplate is the variant used by zone-optional commands when a zone
	// is given; it contains the {zone} placeholder.
	ZoneTemplate string

	// ResourceTemplate is the variant used when a resource is given; it
	// contains the {resource} placeholder.
	ResourceTemplate string

	// Sections maps legal --section values to their template variants.
	// Nil means the command does not accept a section flag.
	Sections map[string]string
}

// AcceptsArgument reports whether the command takes a positional
// argument (a zone or a resource name).
func (c *Command) AcceptsArgument() bool {
	return c.Zone != ZoneNone || c.Resource != ""
}

// SectionValues returns the legal --section values in sorted order,
// or nil when the command has no section flag.
func (c *Command) SectionValues() []string {
	if len(c.Sections) == 0 {
		return nil
	}
	values := make([]string, 0, len(c.Sections))
	for v := range c.Sections {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
