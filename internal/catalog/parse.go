package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// noModelsMarker is what the tool prints on stderr when nothing is
// installed. Callers treat it as an empty catalog, not a failure.
const noModelsMarker = "No models installed"

// IsEmptyListing reports whether the tool's stderr indicates an empty
// catalog rather than an error.
func IsEmptyListing(stderr string) bool {
	return strings.Contains(stderr, noModelsMarker)
}

// ParseList converts `list` output into entries. The first line is the
// column header (NAME  ID  SIZE  MODIFIED) and is skipped. Malformed
// lines are skipped and reported as warnings, never as a failure: one bad
// row should not hide the rest of the catalog.
//
// modelsDir is the directory models live under; each entry's InstallPath
// is derived from it the way the tool lays files out.
func ParseList(output, modelsDir string) ([]Entry, []string) {
	var (
		entries  []Entry
		warnings []string
	)

	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if i == 0 && strings.HasPrefix(strings.ToUpper(line), "NAME") {
			continue
		}

		entry, err := parseListLine(line, modelsDir)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping list line %q: %v", line, err))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, warnings
}

func parseListLine(line, modelsDir string) (Entry, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("want at least name, id and size, got %d columns", len(fields))
	}

	name := fields[0]
	id := fields[1]

	// The size column is either one token ("3.8GB") or two ("3.8 GB").
	sizeText := fields[2]
	rest := fields[3:]
	size, err := ParseSize(sizeText)
	if err != nil && len(rest) > 0 {
		joined := sizeText + rest[0]
		if s, joinErr := ParseSize(joined); joinErr == nil {
			size, err = s, nil
			rest = rest[1:]
		}
	}
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Name:        name,
		ID:          id,
		SizeBytes:   size,
		InstallPath: filepath.Join(modelsDir, "models", name),
		Modified:    strings.Join(rest, " "),
	}, nil
}
