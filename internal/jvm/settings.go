package jvm

import (
	"bufio"
	"bytes"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/checkenv/internal/report"
)

const settingsHeader = "Property settings:"

// ParseSettings extracts the "Property settings:" block printed by
// java -XshowSettings:properties.
//
// Entries look like "    key = value". A property holding a list is
// printed with one element per line, the extra elements indented further;
// those are joined back with the host path-list separator. The block ends
// at the first blank line. Anything else is ignored.
func ParseSettings(output []byte) report.Properties {
	props := report.Properties{}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inBlock := false
	entryIndent := -1
	lastKey := ""

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		if !inBlock {
			if strings.TrimSpace(line) == settingsHeader {
				inBlock = true
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			break
		}

		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if entryIndent < 0 {
			entryIndent = indent
		}

		if indent > entryIndent {
			if lastKey != "" {
				props[lastKey] += string(filepath.ListSeparator) + strings.TrimSpace(line)
			}
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			lastKey = ""
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			lastKey = ""
			continue
		}
		props[key] = strings.TrimSpace(value)
		lastKey = key
	}

	return props
}
