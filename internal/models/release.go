package models

// ReleaseRecord is one entry of a family's historical release table
type ReleaseRecord struct {
	Version     string `yaml:"version"`
	Codename    string `yaml:"codename"`
	Current     bool   `yaml:"current"`
	Unsupported bool   `yaml:"unsupported"`
	// Rolling releases (e.g. Debian sid) have no maintenance suites.
	Rolling bool `yaml:"rolling"`
}

// Supported reports whether the release may be used for generation
func (r ReleaseRecord) Supported() bool {
	return !r.Unsupported
}

// ResolvedDistro is the outcome of resolving user input against a release table
type ResolvedDistro struct {
	Name string
	// Version is empty for unrecognized names that are assumed current.
	Version string
	Current bool
	Rolling bool
}
