package matching

import (
	"math"
	"sort"
	"strings"
)

func ScoreJob(profile UserProfile, job JobPosting) ScoredJob {
	matched := Match(profile.Skills, job.RequiredSkills)

	bonus := 0
	if profile.PreferredTrack != "" && strings.Contains(strings.ToLower(job.Title), strings.ToLower(profile.PreferredTrack)) {
		bonus = TrackBonus
	}

	pct := 0
	if n := len(job.RequiredSkills); n > 0 {
		pct = int(math.Round(100 * float64(len(matched)) / float64(n)))
	}

	return ScoredJob{
		JobPosting:      job,
		MatchingSkills:  matched,
		MatchScore:      len(matched) + bonus,
		MatchPercentage: pct,
	}
}

// ScoreJobs keeps jobs with at least one matching skill, ranks them by
// match score (stable, so input order breaks ties) and truncates to limit.
// The track bonus only affects ranking: a job matching no skills is never
// returned, whatever its title.
func ScoreJobs(profile *UserProfile, jobs []JobPosting, limit int) []ScoredJob {
	limit = normalizeLimit(limit)

	out := make([]ScoredJob, 0)
	if profile == nil {
		return out
	}

	for _, j := range jobs {
		sj := ScoreJob(*profile, j)
		if len(sj.MatchingSkills) == 0 {
			continue
		}
		out = append(out, sj)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
