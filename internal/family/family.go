package family

import (
	"embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/ralt/aptsources/internal/models"
)

// Option keys shared by every family
const (
	KeyAll            = "all"
	KeyDirectSecurity = "direct_security"
	KeySource         = "src"
	KeyDeb822         = "deb822"

	SuiteSecurity = "security"
)

//go:embed releases/*.yaml
var tables embed.FS

var numericPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)*$`)

// Family holds the data and rules that distinguish one distribution from
// its siblings. Families are immutable once the package is initialized.
type Family struct {
	Name  string
	Title string

	// Components and Suites are option keys in declaration order.
	Components []string
	Suites     []string

	DefaultURL string
	CDNURL     string
	// RegionURL is a format string taking a two-letter country code.
	RegionURL   string
	ArchiveURL  string
	SecurityURL string

	// SecurityPath replaces the archive path of URLs matching ArchiveRoot.
	SecurityPath string
	ArchiveRoot  *regexp.Regexp

	Keyring     string
	SourcesList string
	SourcesFile string

	// VersionSegments is how many dot-separated segments name a release;
	// anything past them is a point release.
	VersionSegments int
	Reject          *semver.Constraints
	Future          *regexp.Regexp
	// Introduced maps option keys to the first release carrying them.
	Introduced map[string]string

	// SecuritySuite overrides the security suite name; nil means "<codename>-security".
	SecuritySuite func(codename, version string) string

	Releases []models.ReleaseRecord
}

// Binary is the command name the family is invoked as
func (f *Family) Binary() string {
	return f.Name + "-sources"
}

// Keys returns every option key of the family in canonical order
func (f *Family) Keys() []string {
	keys := make([]string, 0, len(f.Components)+len(f.Suites)+3)
	keys = append(keys, f.Components...)
	keys = append(keys, f.Suites...)
	return append(keys, KeyDirectSecurity, KeySource, KeyDeb822)
}

// IsComponent reports whether key names a structural component
func (f *Family) IsComponent(key string) bool {
	for _, c := range f.Components {
		if c == key {
			return true
		}
	}
	return false
}

// Lookup finds a release by version or codename
func (f *Family) Lookup(token string) (models.ReleaseRecord, bool) {
	for _, r := range f.Releases {
		if token == r.Codename || (r.Version != "" && token == r.Version) {
			return r, true
		}
	}
	return models.ReleaseRecord{}, false
}

// TrimPointRelease drops point-release segments from a numeric version,
// e.g. "12.04.5" becomes "12.04" for Ubuntu and "12.5" becomes "12" for Debian.
func (f *Family) TrimPointRelease(token string) string {
	if !numericPattern.MatchString(token) {
		return token
	}
	parts := strings.Split(token, ".")
	if len(parts) <= f.VersionSegments {
		return token
	}
	return strings.Join(parts[:f.VersionSegments], ".")
}

// IsRejected reports whether token is a version older than anything supported
func (f *Family) IsRejected(token string) bool {
	v, err := ParseVersion(f.TrimPointRelease(token))
	if err != nil {
		return false
	}
	return f.Reject.Check(v)
}

// IsFuture reports whether token looks like a release number newer than the table
func (f *Family) IsFuture(token string) bool {
	if !f.Future.MatchString(token) {
		return false
	}
	v, err := ParseVersion(token)
	if err != nil {
		return false
	}
	newest := f.Newest()
	return newest == nil || v.GreaterThan(newest)
}

// Newest returns the highest numbered release in the table
func (f *Family) Newest() *semver.Version {
	var newest *semver.Version
	for _, r := range f.Releases {
		if r.Version == "" {
			continue
		}
		v, err := ParseVersion(r.Version)
		if err != nil {
			continue
		}
		if newest == nil || v.GreaterThan(newest) {
			newest = v
		}
	}
	return newest
}

// Removed lists the option keys unavailable in the given release, in
// canonical order. Releases without a number are assumed to have everything.
func (f *Family) Removed(version string) []string {
	if version == "" {
		return nil
	}
	v, err := ParseVersion(version)
	if err != nil {
		return nil
	}

	var removed []string
	for _, key := range f.Keys() {
		intro, ok := f.Introduced[key]
		if !ok {
			continue
		}
		if v.LessThan(semver.MustParse(normalize(intro))) {
			removed = append(removed, key)
		}
	}
	return removed
}

// SecuritySuiteName returns the suite carrying security updates for a release
func (f *Family) SecuritySuiteName(codename, version string) string {
	if f.SecuritySuite != nil {
		return f.SecuritySuite(codename, version)
	}
	return codename + "-" + SuiteSecurity
}

// DeriveSecurityURL maps a mirror URL onto the tree holding security
// updates. URLs outside the family's archive layout are returned unchanged.
func (f *Family) DeriveSecurityURL(base string) string {
	m := f.ArchiveRoot.FindStringSubmatch(base)
	if m == nil {
		return base
	}
	return m[1] + f.SecurityPath
}

// ParseVersion parses a dotted release number such as "24.04" or "12"
func ParseVersion(raw string) (*semver.Version, error) {
	if !numericPattern.MatchString(raw) {
		return nil, fmt.Errorf("invalid release number %q", raw)
	}
	return semver.NewVersion(normalize(raw))
}

// normalize strips leading zeros so "24.04" compares as 24.4.
func normalize(raw string) string {
	parts := strings.Split(raw, ".")
	for i, p := range parts {
		p = strings.TrimLeft(p, "0")
		if p == "" {
			p = "0"
		}
		parts[i] = p
	}
	return strings.Join(parts, ".")
}

type releaseTable struct {
	Releases []models.ReleaseRecord `yaml:"releases"`
}

// loadReleases decodes an embedded release table
func loadReleases(name string) ([]models.ReleaseRecord, error) {
	data, err := tables.ReadFile("releases/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read release table %s: %w", name, err)
	}

	var table releaseTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse release table %s: %w", name, err)
	}
	if len(table.Releases) == 0 {
		return nil, fmt.Errorf("release table %s is empty", name)
	}

	return table.Releases, nil
}

func mustLoadReleases(name string) []models.ReleaseRecord {
	releases, err := loadReleases(name)
	if err != nil {
		panic(err)
	}
	return releases
}

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// ByName returns the family called name
func ByName(name string) (*Family, bool) {
	for _, f := range All() {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// All returns every supported family
func All() []*Family {
	return []*Family{Debian, Ubuntu}
}
