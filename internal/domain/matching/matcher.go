package matching

import "strings"

// Match returns the entries of target, in order, that contain or are
// contained in at least one candidate skill, ignoring case. Duplicates in
// target are kept.
func Match(candidate, target []string) []string {
	out := make([]string, 0)
	if len(candidate) == 0 || len(target) == 0 {
		return out
	}

	lowered := make([]string, len(candidate))
	for i, c := range candidate {
		lowered[i] = strings.ToLower(c)
	}

	for _, t := range target {
		lt := strings.ToLower(t)
		for _, c := range lowered {
			if strings.Contains(lt, c) || strings.Contains(c, lt) {
				out = append(out, t)
				break
			}
		}
	}
	return out
}

func hasMatch(candidate, target []string) bool {
	return len(Match(candidate, target)) > 0
}
