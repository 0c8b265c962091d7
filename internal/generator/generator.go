package generator

import (
	"io"

	"github.com/ralt/aptsources/internal/models"
)

// Format identifies an on-disk sources list format
type Format int

const (
	FormatOneLine Format = iota
	FormatDeb822
)

// String returns the string representation of Format
func (f Format) String() string {
	switch f {
	case FormatOneLine:
		return "one-line"
	case FormatDeb822:
		return "deb822"
	default:
		return "unknown"
	}
}

// Package types
const (
	TypeBinary = "deb"
	TypeSource = "deb-src"
)

// Generator interface for sources list renderers
type Generator interface {
	// Generate writes the plan in the generator's format
	Generate(w io.Writer, p *models.Plan) error

	// GetFormat returns the format this generator emits
	GetFormat() Format
}

// Types returns the package types to list, binaries first
func Types(includeSource bool) []string {
	if includeSource {
		return []string{TypeBinary, TypeSource}
	}
	return []string{TypeBinary}
}
