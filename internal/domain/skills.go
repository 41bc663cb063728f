package domain

import "strings"

// SplitSkills normalizes a comma-separated skill string into lowercase,
// whitespace-trimmed entries. Empty entries are dropped.
func SplitSkills(skills string) []string {
	var out []string
	for _, s := range strings.Split(skills, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
