// Package version parses and compares release version identifiers.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/sqltool/internal/messages"
)

// Parse leniently parses a release identifier such as "v1.4", "1.4.0" or "1.4.0-rc.1".
func Parse(raw string) (*semver.Version, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf(messages.VersionRequired)
	}
	v, err := semver.NewVersion(trimmed)
	if err != nil {
		return nil, fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	return v, nil
}

// Compare returns -1 if a < b, 0 if a == b, and 1 if a > b.
func Compare(a string, b string) (int, error) {
	av, err := Parse(a)
	if err != nil {
		return 0, err
	}
	bv, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return av.Compare(bv), nil
}
