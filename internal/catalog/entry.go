package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one parsed row of the tool's listing output.
type Entry struct {
	Name        string
	ID          string
	SizeBytes   int64
	InstallPath string
	Modified    string
}

// Size units are 1024-based throughout: the same rule applies to parsing
// the tool's output and to formatting sizes for display.
var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

const sizeUnitFactor = 1024

// ParseSize converts a human-readable size such as "3.8GB" or "986 MB"
// into bytes.
func ParseSize(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, fmt.Errorf("size is empty")
	}

	upper := strings.ToUpper(trimmed)
	unit := ""
	number := upper
	for _, u := range sizeUnits {
		if strings.HasSuffix(upper, u) && len(u) > len(unit) {
			unit = u
			number = strings.TrimSpace(strings.TrimSuffix(upper, u))
		}
	}
	if unit == "" {
		return 0, fmt.Errorf("size %q has no recognized unit", value)
	}

	amount, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", value, err)
	}
	if amount < 0 {
		return 0, fmt.Errorf("size %q is negative", value)
	}

	multiplier := float64(1)
	for _, u := range sizeUnits {
		if u == unit {
			break
		}
		multiplier *= sizeUnitFactor
	}
	return int64(amount * multiplier), nil
}

// FormatSize renders bytes with the same 1024-based units ParseSize reads.
func FormatSize(bytes int64) string {
	size := float64(bytes)
	for _, unit := range sizeUnits {
		if size < sizeUnitFactor {
			if unit == "B" {
				return fmt.Sprintf("%d %s", bytes, unit)
			}
			return fmt.Sprintf("%.1f %s", size, unit)
		}
		size /= sizeUnitFactor
	}
	return fmt.Sprintf("%.1f PB", size)
}
