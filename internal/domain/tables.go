package domain

import "regexp"

// Process-wide immutable lookup tables. Initialized once, never mutated.

// GenericCompanyNames are placeholder values the company extractor emits when
// it could not identify a real company.
var GenericCompanyNames = []string{
	"company", "organization", "tech", "unknown", "tbd", "n/a", "none",
}

// KnownCompanies is the allow-list of well-known technology and consumer
// companies scanned for wrong-company attribution.
var KnownCompanies = []string{
	"Spotify", "Netflix", "Uber", "Airbnb", "Adobe", "Apple", "Google",
	"Microsoft", "Amazon", "Facebook", "Meta", "Twitter", "LinkedIn",
	"Slack", "Dropbox", "GitHub", "GitLab", "Atlassian", "Salesforce",
	"Oracle", "IBM", "Red Hat", "Intel", "Nvidia", "Tesla", "Intuit",
	"PayPal", "eBay", "Etsy", "Lyft", "DoorDash", "Stripe", "Square",
	"Shopify",
}

// GenericPresenterNames are placeholder values rejected as presenter names.
var GenericPresenterNames = []string{
	"presenter", "speaker", "user", "person", "name", "unknown", "tbd",
}

// CNCFProjects lists the project names recognized by the case study quality
// scorer.
var CNCFProjects = []string{
	"Kubernetes", "Prometheus", "Envoy", "CoreDNS", "containerd", "Fluentd",
	"Jaeger", "Vitess", "TUF", "Notary", "Helm", "Argo", "Cilium", "Flux",
	"Linkerd", "etcd", "CRI-O", "Harbor", "Falco", "Dragonfly", "Rook",
	"TiKV", "gRPC", "CNI", "Istio", "Knative", "OpenTelemetry",
}

// MetricPatterns extract quantitative claims from generated text:
// percentages, multipliers, counted units, durations, and currency amounts.
var MetricPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+%`),
	regexp.MustCompile(`(?i)\d+x`),
	regexp.MustCompile(`(?i)\d+[,\d]*\s+(?:pods?|services?|nodes?|clusters?|users?|requests?|microservices?)`),
	regexp.MustCompile(`(?i)\d+\s+(?:hours?|minutes?|seconds?|days?|weeks?|months?)`),
	regexp.MustCompile(`\$\d+[,\d]*`),
}

// PlaceholderNamePatterns match stub values left in the full_name field by
// upstream generation.
var PlaceholderNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:first|full|last)\s*name$`),
	regexp.MustCompile(`(?i)^name\s*here$`),
	regexp.MustCompile(`(?i)^(?:presenter|speaker|user|person|name)$`),
	regexp.MustCompile(`(?i)lorem\s+ipsum`),
	regexp.MustCompile(`(?i)^(?:todo|tbd|n/a)$`),
}

// PlaceholderTextPatterns match stub prose in biographies and profile
// sections.
var PlaceholderTextPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)lorem\s+ipsum`),
	regexp.MustCompile(`(?i)\bplaceholder\b`),
	regexp.MustCompile(`(?i)\btodo\b`),
	regexp.MustCompile(`(?i)\btbd\b`),
	regexp.MustCompile(`(?i)fill\s+in`),
	regexp.MustCompile(`(?i)(?:will|to)\s+be\s+(?:added|replaced|filled)`),
	regexp.MustCompile(`(?i)add(?:ed)?\s+later`),
}

// SpeakerAttributionPatterns extract presenter names from talk titles,
// descriptions, and transcript openings. Each pattern captures a two-word
// capitalized name.
var SpeakerAttributionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:I'm|I am)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`(?:This is|this is)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`(?:Presented by|presented by)\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`(?i)speaker:\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
	regexp.MustCompile(`\bby\s+([A-Z][a-z]+\s+[A-Z][a-z]+)`),
}
