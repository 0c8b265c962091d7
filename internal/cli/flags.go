package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/options"
)

// toggle records a --name or --no-name flag in the order it was given.
type toggle struct {
	key    string
	value  bool
	tokens *[]string
}

func (t *toggle) String() string {
	return "false"
}

func (t *toggle) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*t.tokens = append(*t.tokens, options.FlagName(t.key, v == t.value))
	return nil
}

func (t *toggle) Type() string {
	return "bool"
}

// registerOptionFlags adds a --key / --no-key pair for every option of f.
// Version specific keys are registered too and rejected after resolution.
func registerOptionFlags(flags *pflag.FlagSet, f *family.Family, tokens *[]string) {
	addToggle(flags, family.KeyAll, true, tokens, "Enable every component")

	for _, d := range options.Defaults(f) {
		what := describe(f, d.Key)
		addToggle(flags, d.Key, true, tokens, fmt.Sprintf("Enable %s%s", what, defaultNote(d.Value, true)))
		addToggle(flags, d.Key, false, tokens, fmt.Sprintf("Disable %s%s", what, defaultNote(d.Value, false)))
	}
}

func addToggle(flags *pflag.FlagSet, key string, value bool, tokens *[]string, usage string) {
	name := strings.TrimPrefix(options.FlagName(key, value), "--")
	fl := flags.VarPF(&toggle{key: key, value: value, tokens: tokens}, name, "", usage)
	fl.NoOptDefVal = "true"
}

func describe(f *family.Family, key string) string {
	name := strings.ReplaceAll(key, "_", "-")
	switch {
	case f.IsComponent(key):
		return fmt.Sprintf("the %s component", name)
	case key == family.KeyDirectSecurity:
		return "fetching security updates from the security host"
	case key == family.KeySource:
		return "source package entries"
	case key == family.KeyDeb822:
		return "the deb822 format"
	default:
		return fmt.Sprintf("the %s suite", name)
	}
}

func defaultNote(defaultValue, value bool) string {
	if defaultValue == value {
		return " (default)"
	}
	return ""
}
