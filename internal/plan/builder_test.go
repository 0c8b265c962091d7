package plan

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralt/aptsources/internal/family"
	"github.com/ralt/aptsources/internal/models"
	"github.com/ralt/aptsources/internal/options"
)

func defaultOptions(f *family.Family) models.Options {
	return options.Merge(options.Defaults(f), nil)
}

func TestNobleDefaults(t *testing.T) {
	noble := models.ResolvedDistro{Name: "noble", Version: "24.04", Current: true}

	p, err := Build(family.Ubuntu, noble, "", defaultOptions(family.Ubuntu))
	require.NoError(t, err)

	assert.Equal(t, "http://archive.ubuntu.com/ubuntu", p.BaseURL)
	assert.Equal(t, "http://security.ubuntu.com/ubuntu", p.SecurityURL)
	assert.Equal(t, []models.Group{
		{URL: "http://archive.ubuntu.com/ubuntu", Suites: []string{"noble", "noble-updates"}},
		{URL: "http://security.ubuntu.com/ubuntu", Suites: []string{"noble-security"}},
	}, p.Groups)
	assert.Equal(t, []string{"main"}, p.Components)
	assert.Empty(t, p.Region)
}

func TestSecurityInBaseGroupWithoutDirectSecurity(t *testing.T) {
	noble := models.ResolvedDistro{Name: "noble", Version: "24.04", Current: true}
	opts := defaultOptions(family.Ubuntu)
	opts[family.KeyDirectSecurity] = false
	opts["backports"] = true

	p, err := Build(family.Ubuntu, noble, "", opts)
	require.NoError(t, err)

	assert.Equal(t, []models.Group{
		{URL: "http://archive.ubuntu.com/ubuntu", Suites: []string{"noble", "noble-updates", "noble-backports", "noble-security"}},
	}, p.Groups)
}

func TestRegions(t *testing.T) {
	bookworm := models.ResolvedDistro{Name: "bookworm", Version: "12", Current: true}
	opts := defaultOptions(family.Debian)

	p, err := Build(family.Debian, bookworm, "cdn", opts)
	require.NoError(t, err)
	assert.Equal(t, family.Debian.CDNURL, p.BaseURL)
	assert.Equal(t, "cdn", p.Region)

	p, err = Build(family.Debian, bookworm, "DE", opts)
	require.NoError(t, err)
	assert.Equal(t, "http://ftp.de.debian.org/debian", p.BaseURL)
	assert.Equal(t, "de", p.Region)
	assert.Equal(t, family.Debian.SecurityURL, p.SecurityURL)

	p, err = Build(family.Debian, bookworm, "old", opts)
	require.NoError(t, err)
	assert.False(t, p.Current)
	assert.Equal(t, family.Debian.ArchiveURL, p.BaseURL)
	assert.Equal(t, "http://archive.debian.org/debian-security", p.SecurityURL)
	assert.Equal(t, "old", p.Region)
}

func TestInvalidRegion(t *testing.T) {
	noble := models.ResolvedDistro{Name: "noble", Version: "24.04", Current: true}

	_, err := Build(family.Ubuntu, noble, "xx1", defaultOptions(family.Ubuntu))
	assert.True(t, models.IsErrorType(err, models.ErrInvalidRegion))
}

func TestRegionIgnoredForOldRelease(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	buster := models.ResolvedDistro{Name: "buster", Version: "10"}
	for _, region := range []string{"old", "de", "xx1"} {
		hook.Reset()
		p, err := Build(family.Debian, buster, region, defaultOptions(family.Debian))
		require.NoError(t, err)

		assert.Empty(t, p.Region)
		assert.Equal(t, family.Debian.ArchiveURL, p.BaseURL)
		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	}
}

func TestOldDebianSecuritySuite(t *testing.T) {
	buster := models.ResolvedDistro{Name: "buster", Version: "10"}

	p, err := Build(family.Debian, buster, "", defaultOptions(family.Debian))
	require.NoError(t, err)

	assert.Equal(t, []models.Group{
		{URL: "http://archive.debian.org/debian", Suites: []string{"buster", "buster-updates"}},
		{URL: "http://archive.debian.org/debian-security", Suites: []string{"buster/updates"}},
	}, p.Groups)
}

func TestRegionalMirrorWarnsAboutSecurity(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	jammy := models.ResolvedDistro{Name: "jammy", Version: "22.04", Current: true}
	opts := defaultOptions(family.Ubuntu)
	opts[family.KeyDirectSecurity] = false

	p, err := Build(family.Ubuntu, jammy, "fr", opts)
	require.NoError(t, err)

	assert.Equal(t, "http://fr.archive.ubuntu.com/ubuntu", p.SecurityURL)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRollingRelease(t *testing.T) {
	sid := models.ResolvedDistro{Name: "sid", Current: true, Rolling: true}
	opts := defaultOptions(family.Debian)
	opts["backports"] = true

	p, err := Build(family.Debian, sid, "", opts)
	require.NoError(t, err)
	assert.Equal(t, []models.Group{{URL: family.Debian.DefaultURL, Suites: []string{"sid"}}}, p.Groups)
}

func TestComponents(t *testing.T) {
	opts := defaultOptions(family.Debian)
	opts["non_free_firmware"] = true
	opts["contrib"] = true

	assert.Equal(t, []string{"main", "contrib", "non-free-firmware"}, Components(family.Debian, opts))
}
