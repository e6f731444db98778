// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"fmt"
	"strings"
)

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	parse := func(s string) (v [3]int, err error) {
		_, err = fmt.Sscanf(strings.TrimPrefix(s, "v"), "%d.%d.%d", &v[0], &v[1], &v[2])
		return
	}

	av, err := parse(a)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", a, err)
	}

	bv, err := parse(b)
	if err != nil {
		return 0, fmt.Errorf("parse version %q: %w", b, err)
	}

	for i := range av {
		if av[i] > bv[i] {
			return 1, nil
		}
		if av[i] < bv[i] {
			return -1, nil
		}
	}

	return 0, nil
}
