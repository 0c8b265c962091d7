package generator

import (
	"strings"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/models"
	"github.com/ralt/aptsources/internal/options"
)

// Flags lists, in canonical order, the flags needed to turn defaults into
// effective. When every component is switched on, the component flags
// collapse into --all.
func Flags(f *family.Family, defaults []models.OptionDefault, effective models.Options) []string {
	var flags []string
	known, enabled := 0, 0

	for _, d := range defaults {
		isComponent := f.IsComponent(d.Key)
		if isComponent {
			known++
		}

		value, ok := effective[d.Key]
		if !ok || value == d.Value {
			continue
		}
		if isComponent && value {
			enabled++
		}
		flags = append(flags, options.FlagName(d.Key, value))
	}

	if known == 0 || enabled != known {
		return flags
	}

	collapsed := []string{options.FlagName(family.KeyAll, true)}
	return append(collapsed, flags[known:]...)
}

// Footer rebuilds the command line reproducing this configuration
func Footer(f *family.Family, defaults []models.OptionDefault, effective models.Options, distro, region string) string {
	args := []string{f.Binary()}
	args = append(args, Flags(f, defaults, effective)...)
	args = append(args, distro)
	if region != "" {
		args = append(args, region)
	}
	return strings.Join(args, " ")
}
