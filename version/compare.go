// Package version reads and compares semantic versions of the playback pipeline.
package version

import (
	"fmt"
	"regexp"

	"github.com/samber/lo"
)

var semverRegex = regexp.MustCompile(`v?(\d+)\.(\d+)\.(\d+)`)

// Extract returns the first major.minor.patch found in s, without a leading v.
func Extract(s string) (string, error) {
	m := semverRegex.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("no version found in %q", s)
	}
	return fmt.Sprintf("%s.%s.%s", m[1], m[2], m[3]), nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	type version struct {
		major, minor, patch int
	}

	parse := func(s string) (version, error) {
		var v version
		_, err := fmt.Sscanf(s, "%d.%d.%d", &v.major, &v.minor, &v.patch)
		return v, err
	}

	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", a, err)
	}

	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", b, err)
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}
