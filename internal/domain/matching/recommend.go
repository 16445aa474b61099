package matching

func Recommend(profile *UserProfile, jobs []JobPosting, resources []LearningResource) (Recommendation, error) {
	if profile == nil || profile.Skills == nil {
		return Recommendation{}, ErrInvalidProfile
	}

	return Recommendation{
		Jobs:      ScoreJobs(profile, jobs, DefaultLimit),
		Resources: FilterResources(profile, resources, DefaultLimit),
	}, nil
}
