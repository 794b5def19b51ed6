package model

import "regexp"

var tagPattern = regexp.MustCompile(`#([\p{L}\p{N}_-]+)`)

// ExtractTags tokenizes #tag references out of a note. Tags are derived
// at read time rather than stored, so they can never drift out of sync
// with note edits.
func ExtractTags(note string) []string {
	matches := tagPattern.FindAllStringSubmatch(note, -1)
	if len(matches) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(matches))
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		tags = append(tags, m[1])
	}
	return tags
}

// HasTag reports whether a note mentions the given tag.
func HasTag(note, tag string) bool {
	for _, t := range ExtractTags(note) {
		if t == tag {
			return true
		}
	}
	return false
}
