package family

import "regexp"

// Ubuntu is the Ubuntu family definition
var Ubuntu = &Family{
	Name:  "ubuntu",
	Title: "Ubuntu",

	Components: []string{"restricted", "universe", "multiverse"},
	Suites:     []string{SuiteSecurity, "updates", "backports", "proposed"},

	DefaultURL:  "http://archive.ubuntu.com/ubuntu",
	CDNURL:      "mirror://mirrors.ubuntu.com/mirrors.txt",
	RegionURL:   "http://%s.archive.ubuntu.com/ubuntu",
	ArchiveURL:  "http://old-releases.ubuntu.com/ubuntu",
	SecurityURL: "http://security.ubuntu.com/ubuntu",

	SecurityPath: "ubuntu",
	ArchiveRoot:  regexp.MustCompile(`^(https?://(?:[a-z]{2}\.)?archive\.ubuntu\.com/|https?://old-releases\.ubuntu\.com/)ubuntu$`),

	Keyring:     "/usr/share/keyrings/ubuntu-archive-keyring.gpg",
	SourcesList: "/etc/apt/sources.list",
	SourcesFile: "/etc/apt/sources.list.d/ubuntu.sources",

	VersionSegments: 2,
	Reject:          mustConstraint("< 4.10"),
	Future:          regexp.MustCompile(`^[0-9]{2}\.(04|10)$`),
	Introduced: map[string]string{
		KeyDeb822: "16.04",
	},

	Releases: mustLoadReleases("ubuntu"),
}
