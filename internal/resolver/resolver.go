// Package resolver turns a user supplied release name or number into a
// ResolvedDistro using a family's release table.
package resolver

import (
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/models"
)

// Release names shorter than this are never assumed to be real releases.
const minAssumedNameLength = 4

var alphaPattern = regexp.MustCompile(`^[a-z]+$`)

// Resolve maps raw to a release of f
func Resolve(raw string, f *family.Family) (models.ResolvedDistro, error) {
	input := strings.ToLower(strings.TrimSpace(raw))

	if f.IsRejected(input) {
		return models.ResolvedDistro{}, unsupported(f, input)
	}

	input = f.TrimPointRelease(input)

	if record, ok := f.Lookup(input); ok {
		if !record.Supported() {
			return models.ResolvedDistro{}, unsupported(f, input)
		}
		logrus.Debugf("Resolved %q to %s %s", raw, record.Codename, record.Version)
		return models.ResolvedDistro{
			Name:    record.Codename,
			Version: record.Version,
			Current: record.Current,
			Rolling: record.Rolling,
		}, nil
	}

	if alphaPattern.MatchString(input) && len(input) >= minAssumedNameLength {
		logrus.Warnf("Unknown %s release %q, assuming it is current", f.Title, input)
		return models.ResolvedDistro{Name: input, Current: true}, nil
	}

	if f.IsFuture(input) {
		return models.ResolvedDistro{}, models.NewError(models.ErrUnknownRelease,
			"%s %s is not known yet, use its name instead", f.Title, input)
	}

	return models.ResolvedDistro{}, models.NewError(models.ErrInvalidRelease,
		"%q is not a valid %s release", raw, f.Title)
}

func unsupported(f *family.Family, input string) error {
	return models.NewError(models.ErrUnsupportedRelease,
		"%s %s is not supported", f.Title, cases.Title(language.Und).String(input))
}
