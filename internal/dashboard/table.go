package dashboard

// DefaultBaseURL is the Cloudflare dashboard origin. The dashboard path
// structure is an external contract; changing it is a pure table edit.
const DefaultBaseURL = "https://dash.cloudflare.com"

// commands is the static command table, built once and never mutated.
// Adding a dashboard destination means adding an entry here.
var commands = []*Command{
	// Zone-scoped pages
	{
		Name:     "dns",
		Summary:  "Open DNS settings for a zone",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/dns",
	},
	{
		Name:     "security",
		Summary:  "Open security settings (WAF, etc.)",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/security",
		Sections: map[string]string{
			"waf":    "/?to=/:account/{zone}/security/waf",
			"events": "/?to=/:account/{zone}/security/events",
			"ddos":   "/?to=/:account/{zone}/security/ddos",
			"bots":   "/?to=/:account/{zone}/security/bots",
		},
	},
	{
		Name:     "ssl",
		Summary:  "Open SSL/TLS settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/ssl-tls",
	},
	{
		Name:     "caching",
		Summary:  "Open caching settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/caching",
	},
	{
		Name:     "rules",
		Summary:  "Open rules settings (redirects, transforms, etc.)",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/rules",
	},
	{
		Name:     "speed",
		Summary:  "Open speed/optimization settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/speed",
	},
	{
		Name:     "email",
		Summary:  "Open email routing settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/email",
	},
	{
		Name:     "spectrum",
		Summary:  "Open Spectrum settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/spectrum",
	},
	{
		Name:     "network",
		Summary:  "Open network settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/network",
	},
	{
		Name:     "traffic",
		Summary:  "Open traffic settings (load balancing, health checks)",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/traffic",
	},
	{
		Name:     "scrape",
		Summary:  "Open scrape shield settings",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/content-protection",
	},
	{
		Name:     "zaraz",
		Summary:  "Open Zaraz",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}/zaraz",
	},
	{
		Name:     "zone",
		Summary:  "Open zone overview",
		Zone:     ZoneRequired,
		Template: "/?to=/:account/{zone}",
	},
	{
		Name:         "analytics",
		Summary:      "Open analytics (zone analytics with a zone)",
		Zone:         ZoneOptional,
		Template:     "/?to=/:account/analytics",
		ZoneTemplate: "/?to=/:account/{zone}/analytics",
	},
	{
		Name:         "logs",
		Summary:      "Open logs (zone Logpush with a zone)",
		Zone:         ZoneOptional,
		Template:     "/?to=/:account/logs",
		ZoneTemplate: "/?to=/:account/{zone}/analytics/logs",
	},

	// Account-scoped pages with an optional resource
	{
		Name:             "workers",
		Summary:          "Open Workers & Pages dashboard",
		Resource:         "worker",
		Template:         "/?to=/:account/workers-and-pages",
		ResourceTemplate: "/?to=/:account/workers/services/view/{resource}",
	},
	{
		Name:             "pages",
		Summary:          "Open Pages dashboard",
		Resource:         "project",
		Template:         "/?to=/:account/workers-and-pages",
		ResourceTemplate: "/?to=/:account/pages/view/{resource}",
	},
	{
		Name:             "r2",
		Summary:          "Open R2 object storage",
		Resource:         "bucket",
		Template:         "/?to=/:account/r2",
		ResourceTemplate: "/?to=/:account/r2/default/buckets/{resource}",
	},
	{
		Name:             "d1",
		Summary:          "Open D1 databases",
		Resource:         "database",
		Template:         "/?to=/:account/workers/d1",
		ResourceTemplate: "/?to=/:account/workers/d1/databases/{resource}",
	},
	{
		Name:             "kv",
		Summary:          "Open KV namespaces",
		Resource:         "namespace",
		Template:         "/?to=/:account/workers/kv",
		ResourceTemplate: "/?to=/:account/workers/kv/namespaces/{resource}",
	},

	// Account-scoped pages without arguments
	{
		Name:     "zero-trust",
		Aliases:  []string{"zt"},
		Summary:  "Open Zero Trust dashboard",
		Template: "/?to=/:account/access",
	},
	{
		Name:     "access",
		Summary:  "Open Access settings",
		Template: "/?to=/:account/access",
	},
	{
		Name:     "tunnels",
		Summary:  "Open Cloudflare Tunnels",
		Template: "/?to=/:account/access/tunnels",
	},
	{
		Name:     "stream",
		Summary:  "Open Cloudflare Stream",
		Template: "/?to=/:account/stream",
	},
	{
		Name:     "images",
		Summary:  "Open Cloudflare Images",
		Template: "/?to=/:account/images",
	},
	{
		Name:     "queues",
		Summary:  "Open Queues",
		Template: "/?to=/:account/queues",
	},
	{
		Name:     "ai",
		Summary:  "Open Workers AI",
		Template: "/?to=/:account/ai",
	},
	{
		Name:     "vectorize",
		Summary:  "Open Vectorize",
		Template: "/?to=/:account/vectorize",
	},
	{
		Name:     "hyperdrive",
		Summary:  "Open Hyperdrive",
		Template: "/?to=/:account/hyperdrive",
	},
	{
		Name:     "durable-objects",
		Aliases:  []string{"do"},
		Summary:  "Open Durable Objects",
		Template: "/?to=/:account/workers/durable-objects",
	},
	{
		Name:     "account",
		Summary:  "Open account settings",
		Template: "/?to=/:account",
	},
	{
		Name:     "billing",
		Summary:  "Open billing page",
		Template: "/?to=/:account/billing",
	},
	{
		Name:     "audit-log",
		Aliases:  []string{"audit"},
		Summary:  "Open audit log",
		Template: "/?to=/:account/audit-log",
	},
	{
		Name:     "registrar",
		Aliases:  []string{"domains"},
		Summary:  "Open domain registrar",
		Template: "/?to=/:account/domains",
	},
	{
		Name:     "turnstile",
		Summary:  "Open Turnstile (CAPTCHA)",
		Template: "/?to=/:account/turnstile",
	},
	{
		Name:     "web-analytics",
		Aliases:  []string{"wa"},
		Summary:  "Open Web Analytics",
		Template: "/?to=/:account/web-analytics",
	},

	// Profile and root pages
	{
		Name:     "api-tokens",
		Aliases:  []string{"tokens"},
		Summary:  "Open API tokens page",
		Template: "/profile/api-tokens",
	},
	{
		Name:     "dash",
		Aliases:  []string{"home"},
		Summary:  "Open the main dashboard",
		Template: "",
	},
}
