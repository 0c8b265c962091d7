// Package script wraps generated sources text into a shell script that
// installs it at the system's default location.
package script

import (
	"bytes"
	"fmt"
	"path"
	"strings"
)

const delimiter = "EOF"

// Wrap returns a POSIX shell script writing content to target
func Wrap(content []byte, target string) ([]byte, error) {
	for _, line := range strings.Split(string(content), "\n") {
		if line == delimiter {
			return nil, fmt.Errorf("content contains the here-document delimiter %q", delimiter)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("#!/bin/sh\n")
	buf.WriteString("set -e\n")
	fmt.Fprintf(&buf, "mkdir -p %s\n", path.Dir(target))
	fmt.Fprintf(&buf, "cat > %s <<'%s'\n", target, delimiter)
	buf.Write(content)
	if len(content) > 0 && !bytes.HasSuffix(content, []byte("\n")) {
		buf.WriteString("\n")
	}
	buf.WriteString(delimiter + "\n")

	return buf.Bytes(), nil
}
