package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/models"
)

// runConfig holds everything collected from the command line
type runConfig struct {
	Family       *family.Family
	BuildVersion string

	// Tokens are the option flags in command-line order, normalized to --name / --no-name.
	Tokens []string

	Script      bool
	Quiet       int
	Debug       bool
	ShowVersion bool
}

// NewRootCmd creates the root command for a family
func NewRootCmd(f *family.Family, buildVersion string) *cobra.Command {
	config := &runConfig{Family: f, BuildVersion: buildVersion}

	rootCmd := &cobra.Command{
		Use:   f.Binary() + " [options] <distro> [region]",
		Short: fmt.Sprintf("Generate APT sources lists for %s releases", f.Title),
		Long: fmt.Sprintf(`%s prints an APT sources list for a %s release.

<distro> is a release name or number. [region] is one of:
  (empty)  the default mirror
  cdn      the CDN / mirror list
  old      the archive of releases no longer mirrored
  <cc>     a two-letter country code selecting a regional mirror`, f.Binary(), f.Title),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			switch {
			case config.Debug:
				logrus.SetLevel(logrus.DebugLevel)
			case config.Quiet > 0:
				logrus.SetLevel(logrus.ErrorLevel)
			default:
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.ShowVersion {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", f.Binary(), buildVersion)
				return nil
			}

			if len(args) < 1 || len(args) > 2 {
				return models.NewError(models.ErrUsage,
					"usage: %s [options] <distro> [region]", f.Binary())
			}

			logrus.Debugf("Arguments: %v, options: %v", args, config.Tokens)
			return runGeneration(cmd.OutOrStdout(), config, args)
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &models.SourcesError{Type: models.ErrUnknownOption, Err: err}
	})

	flags := rootCmd.Flags()
	flags.SortFlags = false

	// Option flags
	registerOptionFlags(flags, f, &config.Tokens)

	// Output flags
	flags.BoolVar(&config.Script, "script", false, "Wrap the output in a script installing it at the default path")
	flags.CountVarP(&config.Quiet, "quiet", "q", "Hide warnings; repeat to also drop comments")
	flags.BoolVar(&config.Debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&config.ShowVersion, "version", "V", false, "Print version and exit")

	return rootCmd
}
