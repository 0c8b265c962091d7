package models

// Group is a mirror URL together with the suites it serves
type Group struct {
	URL    string
	Suites []string
}

// Plan is everything a renderer needs to emit a sources list
type Plan struct {
	Groups      []Group
	Components  []string
	BaseURL     string
	SecurityURL string
	// Region is the region token to echo in the footer; empty when unused.
	Region  string
	Current bool
}
