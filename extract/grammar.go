// Package extract implements the extraction-and-normalization engine: the
// class-name grammar parser, the per-entity-kind aggregators, and the
// shared normalization helpers they depend on.
package extract

import (
	"strings"

	"github.com/pwalkowski/richmark"
)

// ParseClassName splits a class-name token of the form
// {baseID}-{instanceID}-{fieldType} (or {baseID}-{fieldType} for
// non-instanced kinds) into its instance ID and field type. Matching is
// case-insensitive; the returned segments are lowercased.
//
// Returns EINVALID if the token has too few segments or an empty segment:
// a class that matched the base prefix but cannot be split is authoring
// error, not a stray class.
func ParseClassName(token, baseID string, instanced bool) (instanceID, fieldType string, err error) {
	segments := strings.Split(strings.ToLower(strings.TrimSpace(token)), "-")

	minSegments := 2
	if instanced {
		minSegments = 3
	}
	if len(segments) < minSegments {
		return "", "", richmark.Errorf(richmark.EINVALID,
			"malformed class name %q: expected %q followed by %d segment(s)",
			token, baseID, minSegments-1)
	}

	fieldType = segments[len(segments)-1]
	if instanced {
		instanceID = segments[len(segments)-2]
	}

	if fieldType == "" || (instanced && instanceID == "") {
		return "", "", richmark.Errorf(richmark.EINVALID,
			"malformed class name %q: empty instance ID or field type", token)
	}
	return instanceID, fieldType, nil
}

// classToken returns the first class in a (possibly multi-valued) class
// attribute that starts with the given prefix. Matching is
// case-insensitive.
func classToken(classAttr, prefix string) (string, bool) {
	for _, cls := range strings.Fields(classAttr) {
		if strings.HasPrefix(strings.ToLower(cls), strings.ToLower(prefix)) {
			return cls, true
		}
	}
	return "", false
}
