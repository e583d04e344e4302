package dashboard

import (
	"net/url"
	"strings"

	"miguel.build/cfurl/internal/errors"
)

// Request is a single parsed invocation: the optional arguments a
// command was given. It lives only for the duration of one resolution.
type Request struct {
	// Zone is the zone/domain name, e.g. "miguel.build"
	Zone string

	// Resource is the secondary resource name, e.g. a worker or bucket
	Resource string

	// Section is the --section flag value
	Section string
}

// Resolver turns a command name plus a Request into a fully substituted
// dashboard URL. The command table is immutable after construction, so
// a Resolver is safe for concurrent use.
type Resolver struct {
	base  string
	index map[string]*Command
}

// NewResolver builds a resolver over the static command table. An empty
// baseURL selects DefaultBaseURL. A trailing slash on the base is
// stripped so templates always join cleanly.
func NewResolver(baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	index := make(map[string]*Command, len(commands)*2)
	for _, c := range commands {
		index[c.Name] = c
		for _, alias := range c.Aliases {
			index[alias] = c
		}
	}

	return &Resolver{
		base:  strings.TrimSuffix(baseURL, "/"),
		index: index,
	}
}

// Lookup returns the command registered under name or one of its aliases.
func (r *Resolver) Lookup(name string) (*Command, bool) {
	c, ok := r.index[name]
	return c, ok
}

// Commands returns the command table in declaration order.
func (r *Resolver) Commands() []*Command {
	return commands
}

// Resolve maps a command name and its arguments to a dashboard URL.
// It is a pure function: identical inputs always produce identical
// URLs, and no partially substituted template ever escapes.
func (r *Resolver) Resolve(name string, req Request) (string, error) {
	c, ok := r.index[name]
	if !ok {
		return "", errors.UnknownCommand(name)
	}

	if err := validateRequest(c, req); err != nil {
		return "", err
	}

	tmpl := selectTemplate(c, req)

	resolved := expand(tmpl, req)
	if strings.ContainsAny(resolved, "{}") {
		return "", errors.Internalf("unresolved placeholder in template for %q", c.Name)
	}

	return r.base + resolved, nil
}

// validateRequest enforces the command's argument policy before any
// substitution happens. Missing required inputs and unsupported inputs
// both fail here; resolution never guesses.
func validateRequest(c *Command, req Request) error {
	if req.Zone != "" && req.Resource != "" {
		// No command in the table accepts both. Fail closed rather
		// than pick one.
		return errors.AmbiguousArguments(c.Name, "both a zone and a resource name were given")
	}

	switch c.Zone {
	case ZoneRequired:
		if req.Zone == "" {
			return errors.MissingArgument(c.Name, "zone")
		}
	case ZoneNone:
		if req.Zone != "" {
			return errors.UnexpectedArgument(c.Name, req.Zone)
		}
	case ZoneOptional:
		// nothing to check
	}

	if req.Resource != "" && c.Resource == "" {
		return errors.UnexpectedArgument(c.Name, req.Resource)
	}

	if req.Section != "" {
		if len(c.Sections) == 0 {
			return errors.InvalidFlagValue(c.Name, "section", req.Section, nil)
		}
		if _, ok := c.Sections[req.Section]; !ok {
			return errors.InvalidFlagValue(c.Name, "section", req.Section, c.SectionValues())
		}
	}

	return nil
}

// selectTemplate picks the variant matching the arguments present.
// validateRequest has already run, so every branch here is legal.
func selectTemplate(c *Command, req Request) string {
	switch {
	case req.Section != "":
		return c.Sections[req.Section]
	case req.Resource != "":
		return c.ResourceTemplate
	case req.Zone != "" && c.Zone == ZoneOptional:
		return c.ZoneTemplate
	default:
		return c.Template
	}
}

// expand substitutes the request values into the template. Each value
// is percent-encoded so reserved URL characters in zone or resource
// names cannot corrupt the result.
func expand(tmpl string, req Request) string {
	out := tmpl
	if req.Zone != "" {
		out = strings.ReplaceAll(out, "{zone}", url.PathEscape(req.Zone))
	}
	if req.Resource != "" {
		out = strings.ReplaceAll(out, "{resource}", url.PathEscape(req.Resource))
	}
	return out
}
