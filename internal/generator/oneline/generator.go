package oneline

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ralt/aptsources/internal/generator"
	"github.com/ralt/aptsources/internal/models"
)

// Generator implements the generator.Generator interface for the legacy
// one-line-per-entry sources.list format
type Generator struct {
	includeSource bool
}

// NewGenerator creates a new one-line generator
func NewGenerator(includeSource bool) generator.Generator {
	return &Generator{
		includeSource: includeSource,
	}
}

// Generate writes one line per type, URL and suite
func (g *Generator) Generate(w io.Writer, p *models.Plan) error {
	_, err := w.Write(GenerateSourcesList(p, generator.Types(g.includeSource)))
	return err
}

// GenerateSourcesList renders every package type as its own block
func GenerateSourcesList(p *models.Plan, types []string) []byte {
	var buf bytes.Buffer
	components := strings.Join(p.Components, " ")

	for _, typ := range types {
		for _, group := range p.Groups {
			for _, suite := range group.Suites {
				fmt.Fprintf(&buf, "%s %s %s %s\n", typ, group.URL, suite, components)
			}
		}

		// Blank line between types
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// GetFormat returns the format this generator emits
func (g *Generator) GetFormat() generator.Format {
	return generator.FormatOneLine
}
