package oneline

import (
	"bytes"
	"testing"

	"github.com/ralt/aptsources/internal/generator"
	"github.com/ralt/aptsources/internal/models"
)

func testPlan() *models.Plan {
	return &models.Plan{
		Groups: []models.Group{
			{URL: "http://deb.debian.org/debian", Suites: []string{"bookworm", "bookworm-updates"}},
			{URL: "http://security.debian.org/debian-security", Suites: []string{"bookworm-security"}},
		},
		Components: []string{"main", "contrib"},
	}
}

func TestGenerateBinaryOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := NewGenerator(false).Generate(&buf, testPlan()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	expected := `deb http://deb.debian.org/debian bookworm main contrib
deb http://deb.debian.org/debian bookworm-updates main contrib
deb http://security.debian.org/debian-security bookworm-security main contrib

`
	if buf.String() != expected {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestGenerateWithSource(t *testing.T) {
	data := GenerateSourcesList(testPlan(), generator.Types(true))

	expected := `deb http://deb.debian.org/debian bookworm main contrib
deb http://deb.debian.org/debian bookworm-updates main contrib
deb http://security.debian.org/debian-security bookworm-security main contrib

deb-src http://deb.debian.org/debian bookworm main contrib
deb-src http://deb.debian.org/debian bookworm-updates main contrib
deb-src http://security.debian.org/debian-security bookworm-security main contrib

`
	if string(data) != expected {
		t.Errorf("unexpected output:\n%s", data)
	}
}

func TestGetFormat(t *testing.T) {
	if NewGenerator(false).GetFormat() != generator.FormatOneLine {
		t.Errorf("expected one-line format")
	}
}
