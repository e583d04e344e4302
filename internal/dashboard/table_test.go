package dashboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The table is static data, so its invariants are enforced by test
// rather than at runtime.

func TestTableNamesAndAliasesAreUnique(t *testing.T) {
	seen := make(map[string]string)

	for _, c := range commands {
		require.NotEmpty(t, c.Name)

		if prev, ok := seen[c.Name]; ok {
			t.Fatalf("name %q used by both %q and %q", c.Name, prev, c.Name)
		}
		seen[c.Name] = c.Name

		for _, alias := range c.Aliases {
			if prev, ok := seen[alias]; ok {
				t.Fatalf("alias %q of %q collides with %q", alias, c.Name, prev)
			}
			seen[alias] = c.Name
		}
	}
}

func TestTableTemplatesDeclareOnlyAcceptedPlaceholders(t *testing.T) {
	for _, c := range commands {
		t.Run(c.Name, func(t *testing.T) {
			switch c.Zone {
			case ZoneRequired:
				assert.Contains(t, c.Template, "{zone}")
				assert.Empty(t, c.ZoneTemplate, "zone-required commands have no separate zone variant")
			case ZoneOptional:
				assert.NotContains(t, c.Template, "{zone}", "the no-zone variant must resolve without input")
				assert.Contains(t, c.ZoneTemplate, "{zone}")
			case ZoneNone:
				assert.NotContains(t, c.Template, "{zone}")
				assert.Empty(t, c.ZoneTemplate)
			}

			if c.Resource != "" {
				assert.Contains(t, c.ResourceTemplate, "{resource}")
				assert.NotContains(t, c.ResourceTemplate, "{zone}")
			} else {
				assert.Empty(t, c.ResourceTemplate)
			}

			assert.NotContains(t, c.Template, "{resource}")

			for section, tmpl := range c.Sections {
				assert.NotEmpty(t, section)
				assert.NotContains(t, tmpl, "{resource}")
				if c.Zone == ZoneRequired {
					assert.Contains(t, tmpl, "{zone}")
				}
			}

			assert.NotEmpty(t, c.Summary)
		})
	}
}

func TestTableTemplatesUseNoStrayBraces(t *testing.T) {
	known := []string{"{zone}", "{resource}"}

	check := func(tmpl string) {
		stripped := tmpl
		for _, p := range known {
			stripped = strings.ReplaceAll(stripped, p, "")
		}
		assert.NotContains(t, stripped, "{", "unknown placeholder in %q", tmpl)
		assert.NotContains(t, stripped, "}", "unknown placeholder in %q", tmpl)
	}

	for _, c := range commands {
		check(c.Template)
		check(c.ZoneTemplate)
		check(c.ResourceTemplate)
		for _, tmpl := range c.Sections {
			check(tmpl)
		}
	}
}

func TestSectionValuesSortedAndComplete(t *testing.T) {
	r := NewResolver("")

	security, ok := r.Lookup("security")
	require.True(t, ok)
	assert.Equal(t, []string{"bots", "ddos", "events", "waf"}, security.SectionValues())

	dns, ok := r.Lookup("dns")
	require.True(t, ok)
	assert.Nil(t, dns.SectionValues())
}

func TestAcceptsArgument(t *testing.T) {
	r := NewResolver("")

	dns, _ := r.Lookup("dns")
	assert.True(t, dns.AcceptsArgument())

	kv, _ := r.Lookup("kv")
	assert.True(t, kv.AcceptsArgument())

	dash, _ := r.Lookup("dash")
	assert.False(t, dash.AcceptsArgument())
}
