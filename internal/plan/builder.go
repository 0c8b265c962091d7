// Package plan decides which mirrors serve which suites of a release.
package plan

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/models"
)

// Region tokens with a special meaning
const (
	RegionCDN = "cdn"
	RegionOld = "old"
)

// ComponentMain is always enabled and always listed first.
const ComponentMain = "main"

var countryPattern = regexp.MustCompile(`^[a-z]{2}$`)

// Build computes the base and security URLs for distro and groups the
// enabled suites under the URL serving them.
func Build(f *family.Family, distro models.ResolvedDistro, region string, opts models.Options) (*models.Plan, error) {
	region = strings.ToLower(strings.TrimSpace(region))

	p := &models.Plan{Current: distro.Current}
	regional := false

	if distro.Current {
		switch {
		case region == "":
			p.BaseURL = f.DefaultURL
		case region == RegionCDN:
			p.BaseURL = f.CDNURL
		case region == RegionOld:
			p.Current = false
			p.BaseURL = f.ArchiveURL
		case countryPattern.MatchString(region):
			p.BaseURL = fmt.Sprintf(f.RegionURL, region)
			regional = true
		default:
			return nil, models.NewError(models.ErrInvalidRegion, "%q is not a valid region", region)
		}
		p.Region = region
	} else {
		if region != "" {
			logrus.Warnf("Region %q ignored, %s %s is only available from the archive", region, f.Title, distro.Name)
		}
		p.BaseURL = f.ArchiveURL
	}

	p.SecurityURL = f.DeriveSecurityURL(p.BaseURL)
	if opts.Enabled(family.KeyDirectSecurity) && p.Current {
		p.SecurityURL = f.SecurityURL
	} else if regional && opts.Enabled(family.SuiteSecurity) {
		logrus.Warnf("Mirror %s may not carry the %s security suite", p.SecurityURL, distro.Name)
	}

	p.Groups = groups(f, distro, p, opts)
	p.Components = Components(f, opts)

	logrus.Debugf("Base URL %s, security URL %s", p.BaseURL, p.SecurityURL)
	return p, nil
}

func groups(f *family.Family, distro models.ResolvedDistro, p *models.Plan, opts models.Options) []models.Group {
	base := models.Group{URL: p.BaseURL, Suites: []string{distro.Name}}

	// Rolling releases have no maintenance suites.
	if distro.Rolling {
		return []models.Group{base}
	}

	for _, suite := range f.Suites {
		if suite == family.SuiteSecurity || !opts.Enabled(suite) {
			continue
		}
		base.Suites = append(base.Suites, distro.Name+"-"+strings.ReplaceAll(suite, "_", "-"))
	}

	if !opts.Enabled(family.SuiteSecurity) {
		return []models.Group{base}
	}

	security := f.SecuritySuiteName(distro.Name, distro.Version)
	if p.SecurityURL == p.BaseURL {
		base.Suites = append(base.Suites, security)
		return []models.Group{base}
	}

	return []models.Group{base, {URL: p.SecurityURL, Suites: []string{security}}}
}

// Components lists the enabled components, main first, in declaration order
func Components(f *family.Family, opts models.Options) []string {
	components := []string{ComponentMain}
	for _, c := range f.Components {
		if opts.Enabled(c) {
			components = append(components, strings.ReplaceAll(c, "_", "-"))
		}
	}
	return components
}
