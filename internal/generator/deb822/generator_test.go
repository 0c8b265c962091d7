package deb822

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ralt/aptsources/internal/generator"
	"github.com/ralt/aptsources/internal/models"
)

func TestGenerateStanzas(t *testing.T) {
	p := &models.Plan{
		Groups: []models.Group{
			{URL: "http://archive.ubuntu.com/ubuntu", Suites: []string{"noble", "noble-updates"}},
			{URL: "http://security.ubuntu.com/ubuntu", Suites: []string{"noble-security"}},
		},
		Components: []string{"main", "universe"},
	}

	var buf bytes.Buffer
	gen := NewGenerator(true, "/usr/share/keyrings/ubuntu-archive-keyring.gpg")
	require.NoError(t, gen.Generate(&buf, p))

	assert.Equal(t, `Types: deb deb-src
URIs: http://archive.ubuntu.com/ubuntu
Suites: noble noble-updates
Components: main universe
Signed-By: /usr/share/keyrings/ubuntu-archive-keyring.gpg

Types: deb deb-src
URIs: http://security.ubuntu.com/ubuntu
Suites: noble-security
Components: main universe
Signed-By: /usr/share/keyrings/ubuntu-archive-keyring.gpg

`, buf.String())
	assert.Equal(t, generator.FormatDeb822, gen.GetFormat())
}

func TestGenerateSkipsEmptyGroups(t *testing.T) {
	p := &models.Plan{
		Groups:     []models.Group{{URL: "http://example.org/debian"}},
		Components: []string{"main"},
	}

	data, err := GenerateSourcesFile(p, generator.Types(false), "")
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = GenerateSourcesFile(p, nil, "")
	assert.Error(t, err)
}
