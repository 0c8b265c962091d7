package models

// OptionDefault is a known option key together with its default value.
// The order of a []OptionDefault is the canonical key order.
type OptionDefault struct {
	Key   string
	Value bool
}

// Override is a single user request to set an option
type Override struct {
	Key   string
	Value bool
}

// Options maps option keys to their effective yes/no value
type Options map[string]bool

// Enabled reports whether key is set; absent keys are disabled
func (o Options) Enabled(key string) bool {
	return o[key]
}
