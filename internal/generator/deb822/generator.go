package deb822

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ralt/aptsources/internal/generator"
	"github.com/ralt/aptsources/internal/models"
)

// Generator implements the generator.Generator interface for deb822
// .sources stanzas
type Generator struct {
	includeSource bool
	keyring       string
}

// NewGenerator creates a new deb822 generator signing every stanza with keyring
func NewGenerator(includeSource bool, keyring string) generator.Generator {
	return &Generator{
		includeSource: includeSource,
		keyring:       keyring,
	}
}

// Generate writes one stanza per URL
func (g *Generator) Generate(w io.Writer, p *models.Plan) error {
	data, err := GenerateSourcesFile(p, generator.Types(g.includeSource), g.keyring)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// GenerateSourcesFile renders the plan as deb822 stanzas
func GenerateSourcesFile(p *models.Plan, types []string, keyring string) ([]byte, error) {
	var buf bytes.Buffer

	if len(types) == 0 {
		return nil, fmt.Errorf("no package types to list")
	}

	for _, group := range p.Groups {
		if len(group.Suites) == 0 {
			continue
		}

		fmt.Fprintf(&buf, "Types: %s\n", strings.Join(types, " "))
		fmt.Fprintf(&buf, "URIs: %s\n", group.URL)
		fmt.Fprintf(&buf, "Suites: %s\n", strings.Join(group.Suites, " "))
		fmt.Fprintf(&buf, "Components: %s\n", strings.Join(p.Components, " "))
		if keyring != "" {
			fmt.Fprintf(&buf, "Signed-By: %s\n", keyring)
		}

		// Blank line between stanzas
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// GetFormat returns the format this generator emits
func (g *Generator) GetFormat() generator.Format {
	return generator.FormatDeb822
}
