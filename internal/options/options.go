// Package options derives per-family option defaults and merges user
// overrides into the effective configuration.
package options

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/models"
)

// enabledSuites is how many leading suites of a family are on by default.
const enabledSuites = 2

// Defaults returns the canonical default options of f
func Defaults(f *family.Family) []models.OptionDefault {
	defaults := make([]models.OptionDefault, 0, len(f.Keys()))

	for _, c := range f.Components {
		defaults = append(defaults, models.OptionDefault{Key: c, Value: false})
	}
	for i, s := range f.Suites {
		defaults = append(defaults, models.OptionDefault{Key: s, Value: i < enabledSuites})
	}

	return append(defaults,
		models.OptionDefault{Key: family.KeyDirectSecurity, Value: true},
		models.OptionDefault{Key: family.KeySource, Value: false},
		models.OptionDefault{Key: family.KeyDeb822, Value: true},
	)
}

// ApplyVersionRule removes the keys f does not offer for the given release
func ApplyVersionRule(f *family.Family, version string, defaults []models.OptionDefault) []models.OptionDefault {
	removed := f.Removed(version)
	if len(removed) == 0 {
		return defaults
	}

	kept := make([]models.OptionDefault, 0, len(defaults))
	for _, d := range defaults {
		if contains(removed, d.Key) {
			logrus.Debugf("Option %s is not available for %s %s", d.Key, f.Title, version)
			continue
		}
		kept = append(kept, d)
	}
	return kept
}

// ParseOverrides validates flag tokens of the form --name / --no-name
// against the known keys in defaults. A --all token expands to every known
// component and is applied before all other tokens, so a later
// --no-<component> still wins.
func ParseOverrides(args []string, defaults []models.OptionDefault, components []string) ([]models.Override, error) {
	var all bool
	var overrides []models.Override

	for _, arg := range args {
		key, value, err := parseFlag(arg)
		if err != nil {
			return nil, err
		}

		if key == family.KeyAll && value {
			all = true
			continue
		}
		if !Known(defaults, key) {
			return nil, unknownOption(arg)
		}
		overrides = append(overrides, models.Override{Key: key, Value: value})
	}

	if !all {
		return overrides, nil
	}

	var expanded []models.Override
	for _, c := range components {
		if Known(defaults, c) {
			expanded = append(expanded, models.Override{Key: c, Value: true})
		}
	}
	return append(expanded, overrides...), nil
}

// Merge applies overrides, in order, on top of defaults
func Merge(defaults []models.OptionDefault, overrides []models.Override) models.Options {
	effective := make(models.Options, len(defaults))
	for _, d := range defaults {
		effective[d.Key] = d.Value
	}
	for _, o := range overrides {
		if _, ok := effective[o.Key]; ok {
			effective[o.Key] = o.Value
		}
	}
	return effective
}

// Known reports whether key is one of defaults
func Known(defaults []models.OptionDefault, key string) bool {
	for _, d := range defaults {
		if d.Key == key {
			return true
		}
	}
	return false
}

// FlagName renders key as a command-line flag name
func FlagName(key string, value bool) string {
	name := strings.ReplaceAll(key, "_", "-")
	if !value {
		name = "no-" + name
	}
	return "--" + name
}

func parseFlag(arg string) (string, bool, error) {
	name, ok := strings.CutPrefix(arg, "--")
	if !ok || name == "" {
		return "", false, unknownOption(arg)
	}

	value := true
	if rest, negated := strings.CutPrefix(name, "no-"); negated {
		name = rest
		value = false
	}

	return strings.ReplaceAll(name, "-", "_"), value, nil
}

func unknownOption(arg string) error {
	return models.NewError(models.ErrUnknownOption, "unknown option %s", arg)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
