package matching

// FilterResources keeps resources sharing at least one skill with the
// profile, in input order, truncated to limit.
func FilterResources(profile *UserProfile, resources []LearningResource, limit int) []LearningResource {
	limit = normalizeLimit(limit)

	out := make([]LearningResource, 0)
	if profile == nil {
		return out
	}

	for _, r := range resources {
		if len(out) == limit {
			break
		}
		if hasMatch(profile.Skills, r.RelatedSkills) {
			out = append(out, r)
		}
	}
	return out
}
