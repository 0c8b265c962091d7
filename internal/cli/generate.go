package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/generator"
	"github.com/ralt/aptsources/internal/generator/deb822"
	"github.com/ralt/aptsources/internal/generator/oneline"
	"github.com/ralt/aptsources/internal/options"
	"github.com/ralt/aptsources/internal/plan"
	"github.com/ralt/aptsources/internal/resolver"
	"github.com/ralt/aptsources/internal/script"
)

// Quiet level at which banner and footer comments are dropped.
const quietComments = 2

func runGeneration(w io.Writer, config *runConfig, args []string) error {
	f := config.Family

	distroArg := args[0]
	region := ""
	if len(args) > 1 {
		region = args[1]
	}

	// Step 1: Resolve the release
	distro, err := resolver.Resolve(distroArg, f)
	if err != nil {
		return err
	}

	// Step 2: Settle the options for this release
	defaults := options.ApplyVersionRule(f, distro.Version, options.Defaults(f))
	overrides, err := options.ParseOverrides(config.Tokens, defaults, f.Components)
	if err != nil {
		return err
	}
	effective := options.Merge(defaults, overrides)
	logrus.Debugf("Effective options: %v", effective)

	// Step 3: Decide which mirrors serve which suites
	p, err := plan.Build(f, distro, region, effective)
	if err != nil {
		return err
	}

	// Step 4: Render
	gen := newGenerator(f, effective.Enabled(family.KeyDeb822), effective.Enabled(family.KeySource))
	logrus.Debugf("Rendering %s format", gen.GetFormat())

	var buf bytes.Buffer
	if config.Quiet < quietComments {
		fmt.Fprintf(&buf, "# Generated by %s %s\n\n", f.Binary(), config.BuildVersion)
	}
	if err := gen.Generate(&buf, p); err != nil {
		return fmt.Errorf("failed to render sources: %w", err)
	}
	if config.Quiet < quietComments {
		fmt.Fprintf(&buf, "# %s\n", generator.Footer(f, defaults, effective, distro.Name, p.Region))
	}

	out := buf.Bytes()
	if config.Script {
		target := f.SourcesList
		if gen.GetFormat() == generator.FormatDeb822 {
			target = f.SourcesFile
		}
		out, err = script.Wrap(out, target)
		if err != nil {
			return fmt.Errorf("failed to build script: %w", err)
		}
	}

	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newGenerator(f *family.Family, structured, includeSource bool) generator.Generator {
	if structured {
		return deb822.NewGenerator(includeSource, f.Keyring)
	}
	return oneline.NewGenerator(includeSource)
}
