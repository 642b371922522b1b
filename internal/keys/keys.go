// Package keys holds the spelling rules shared by option keys and positional
// names.
package keys

import (
	"regexp"
	"strings"
)

// nameRegex matches a word that may contain inner hyphens, e.g. `keep-seeding`.
var nameRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9]*(?:-[a-zA-Z0-9]+)*$`)

// Valid reports whether name can be used as an option key, alias or
// positional name.
func Valid(name string) bool {
	return nameRegex.MatchString(name)
}

// Hyphenated reports whether name has a camelCase mirror distinct from itself.
func Hyphenated(name string) bool {
	return strings.Contains(name, "-")
}

// CamelCase converts a hyphenated word to its camelCase spelling:
// `keep-seeding` becomes `keepSeeding`. Names without hyphens are returned
// unchanged.
func CamelCase(name string) string {
	if !Hyphenated(name) {
		return name
	}
	parts := strings.Split(name, "-")
	var b strings.Builder
	b.Grow(len(name))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
