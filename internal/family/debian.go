package family

import "regexp"

// Debian is the Debian family definition
var Debian = &Family{
	Name:  "debian",
	Title: "Debian",

	Components: []string{"contrib", "non_free", "non_free_firmware"},
	Suites:     []string{SuiteSecurity, "updates", "backports", "proposed_updates"},

	DefaultURL:  "http://deb.debian.org/debian",
	CDNURL:      "http://cdn-fastly.deb.debian.org/debian",
	RegionURL:   "http://ftp.%s.debian.org/debian",
	ArchiveURL:  "http://archive.debian.org/debian",
	SecurityURL: "http://security.debian.org/debian-security",

	SecurityPath: "debian-security",
	ArchiveRoot:  regexp.MustCompile(`^(https?://(?:deb|ftp\.[a-z]{2}|archive)\.debian\.org/)debian$`),

	Keyring:     "/usr/share/keyrings/debian-archive-keyring.gpg",
	SourcesList: "/etc/apt/sources.list",
	SourcesFile: "/etc/apt/sources.list.d/debian.sources",

	VersionSegments: 1,
	Reject:          mustConstraint("< 7"),
	Future:          regexp.MustCompile(`^[1-9][0-9]?$`),
	Introduced: map[string]string{
		"non_free_firmware": "12",
		KeyDeb822:           "9",
	},
	SecuritySuite: debianSecuritySuite,

	Releases: mustLoadReleases("debian"),
}

// Releases before bullseye publish security updates as "<codename>/updates".
func debianSecuritySuite(codename, version string) string {
	if version != "" {
		if v, err := ParseVersion(version); err == nil && v.Major() < 11 {
			return codename + "/updates"
		}
	}
	return codename + "-" + SuiteSecurity
}
