package matching

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(title string, skills ...string) JobPosting {
	return JobPosting{ID: uuid.New(), Title: title, RequiredSkills: skills}
}

func TestScoreJobs_PartialMatch(t *testing.T) {
	profile := &UserProfile{Skills: []string{"JavaScript", "React"}}
	jobs := []JobPosting{newJob("Frontend Developer", "JavaScript", "React", "HTML", "CSS")}

	got := ScoreJobs(profile, jobs, 5)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"JavaScript", "React"}, got[0].MatchingSkills)
	assert.Equal(t, 2, got[0].MatchScore)
	assert.Equal(t, 50, got[0].MatchPercentage)
	assert.Equal(t, jobs[0].ID, got[0].ID)
}

func TestScoreJobs_JavaMatchesJavaScript(t *testing.T) {
	// Substring containment, not equality: "java" is inside "javascript".
	profile := &UserProfile{Skills: []string{"Java"}}
	jobs := []JobPosting{newJob("Web Developer", "JavaScript")}

	got := ScoreJobs(profile, jobs, 5)

	require.Len(t, got, 1)
	assert.Equal(t, []string{"JavaScript"}, got[0].MatchingSkills)
	assert.Equal(t, 1, got[0].MatchScore)
	assert.Equal(t, 100, got[0].MatchPercentage)
}

func TestScoreJobs_NoSkillsExcludesEverything(t *testing.T) {
	profile := &UserProfile{Skills: []string{}}
	jobs := []JobPosting{
		newJob("Frontend Developer", "JavaScript"),
		newJob("Data Engineer", "Python", "SQL"),
	}

	assert.Empty(t, ScoreJobs(profile, jobs, 5))
}

func TestScoreJobs_AllZeroScoresReturnEmpty(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Figma"}}
	jobs := make([]JobPosting, 0, 10)
	for i := 0; i < 10; i++ {
		jobs = append(jobs, newJob(fmt.Sprintf("Backend %d", i), "Go", "PostgreSQL"))
	}

	for _, limit := range []int{0, 1, 5, 100} {
		assert.Empty(t, ScoreJobs(profile, jobs, limit))
	}
}

func TestScoreJobs_TrackBonus(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Python"}, PreferredTrack: "Data Science"}

	t.Run("title containing track gets bonus", func(t *testing.T) {
		got := ScoreJobs(profile, []JobPosting{newJob("Senior Data Science Engineer", "Python", "Spark")}, 5)
		require.Len(t, got, 1)
		assert.Equal(t, 1+TrackBonus, got[0].MatchScore)
		assert.Equal(t, 50, got[0].MatchPercentage)
	})

	t.Run("scientist does not contain science", func(t *testing.T) {
		got := ScoreJobs(profile, []JobPosting{newJob("Senior Data Scientist", "Python", "Spark")}, 5)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].MatchScore)
	})

	t.Run("bonus alone does not qualify a job", func(t *testing.T) {
		got := ScoreJobs(profile, []JobPosting{newJob("Data Science Intern", "R", "Tableau")}, 5)
		assert.Empty(t, got)
	})

	t.Run("bonus reorders", func(t *testing.T) {
		plain := newJob("Analyst", "Python", "SQL")
		track := newJob("Data Science Intern", "Python", "Statistics")
		p := &UserProfile{Skills: []string{"Python", "SQL"}, PreferredTrack: "data science"}

		got := ScoreJobs(p, []JobPosting{plain, track}, 5)

		require.Len(t, got, 2)
		assert.Equal(t, track.ID, got[0].ID)
		assert.Equal(t, 3, got[0].MatchScore)
		assert.Equal(t, plain.ID, got[1].ID)
		assert.Equal(t, 2, got[1].MatchScore)
	})

	t.Run("empty track never applies", func(t *testing.T) {
		p := &UserProfile{Skills: []string{"Python"}}
		got := ScoreJobs(p, []JobPosting{newJob("Data Science Intern", "Python")}, 5)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].MatchScore)
	})
}

func TestScoreJobs_SortedDescendingAndStable(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Go", "SQL", "Docker"}}
	a := newJob("A", "Go", "Rust")
	b := newJob("B", "Go", "SQL", "Docker")
	c := newJob("C", "SQL", "Excel")
	d := newJob("D", "Go", "SQL")
	e := newJob("E", "Docker")

	got := ScoreJobs(profile, []JobPosting{a, b, c, d, e}, 10)

	ids := make([]uuid.UUID, 0, len(got))
	for _, sj := range got {
		ids = append(ids, sj.ID)
	}
	assert.Equal(t, []uuid.UUID{b.ID, d.ID, a.ID, c.ID, e.ID}, ids)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].MatchScore, got[i].MatchScore)
	}
}

func TestScoreJobs_Limit(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Go"}}
	jobs := make([]JobPosting, 0, 12)
	for i := 0; i < 12; i++ {
		jobs = append(jobs, newJob(fmt.Sprintf("Job %d", i), "Go"))
	}

	assert.Len(t, ScoreJobs(profile, jobs, 3), 3)
	assert.Len(t, ScoreJobs(profile, jobs, 0), DefaultLimit)
	assert.Len(t, ScoreJobs(profile, jobs, -1), DefaultLimit)
	assert.Len(t, ScoreJobs(profile, jobs, 50), 12)
	assert.Len(t, ScoreJobs(profile, jobs[:2], 5), 2)
}

func TestScoreJobs_NilProfile(t *testing.T) {
	assert.Empty(t, ScoreJobs(nil, []JobPosting{newJob("X", "Go")}, 5))
}

func TestScoreJob_Percentage(t *testing.T) {
	p := UserProfile{Skills: []string{"Python"}}

	tests := []struct {
		name     string
		required []string
		want     int
	}{
		{name: "no requirements", required: nil, want: 0},
		{name: "one of three rounds down", required: []string{"Python", "ETL", "Airflow"}, want: 33},
		{name: "two of three rounds up", required: []string{"Python", "Python 3", "Airflow"}, want: 67},
		{name: "all", required: []string{"python"}, want: 100},
		{name: "none", required: []string{"Excel"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreJob(p, newJob("Job", tt.required...))
			assert.Equal(t, tt.want, got.MatchPercentage)
			assert.GreaterOrEqual(t, got.MatchPercentage, 0)
			assert.LessOrEqual(t, got.MatchPercentage, 100)
		})
	}
}
