package matching

import (
	"encoding/json"
	"sync"
	"testing"

	"career-match/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResource(skills ...string) LearningResource {
	return LearningResource{ID: uuid.New(), RelatedSkills: skills}
}

func TestFilterResources(t *testing.T) {
	profile := &UserProfile{Skills: []string{"React", "SQL"}}
	react := newResource("React", "JavaScript")
	docker := newResource("Docker", "DevOps")
	sql := newResource("SQL", "Databases")
	empty := newResource()

	got := FilterResources(profile, []LearningResource{react, docker, sql, empty}, 5)

	assert.Equal(t, []LearningResource{react, sql}, got)
}

func TestFilterResources_Limit(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Go"}}
	in := make([]LearningResource, 0, 8)
	for i := 0; i < 8; i++ {
		in = append(in, newResource("Go"))
	}

	got := FilterResources(profile, in, 0)
	require.Len(t, got, DefaultLimit)
	assert.Equal(t, in[:DefaultLimit], got)

	assert.Len(t, FilterResources(profile, in, 2), 2)
}

func TestRecommend_InvalidProfile(t *testing.T) {
	_, err := Recommend(nil, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidProfile)

	_, err = Recommend(&UserProfile{PreferredTrack: "Design"}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestRecommend_EmptyInputs(t *testing.T) {
	got, err := Recommend(&UserProfile{Skills: []string{}}, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, got.Jobs)
	assert.NotNil(t, got.Resources)
	assert.Empty(t, got.Jobs)
	assert.Empty(t, got.Resources)
}

func TestRecommend_CapsAndIsIdempotent(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Python", "SQL"}, PreferredTrack: "Data"}
	jobs := []JobPosting{
		newJob("Data Analyst Intern", "Python", "Excel", "SQL", "Statistics"),
		newJob("Backend Developer", "Node.js", "Express"),
		newJob("Machine Learning Engineer", "Python", "TensorFlow"),
		newJob("Business Analyst", "Excel", "Tableau", "SQL"),
		newJob("Data Engineer", "Python", "ETL", "Airflow", "SQL"),
		newJob("Marketing Data Specialist", "Google Analytics", "Python"),
		newJob("AI Research Intern", "Python", "Pandas"),
	}
	resources := []LearningResource{
		newResource("Python", "Data Analysis"),
		newResource("SQL", "Databases"),
		newResource("Git"),
		newResource("Machine Learning", "Python"),
		newResource("Python"),
		newResource("SQL"),
		newResource("Python", "SQL"),
	}

	first, err := Recommend(profile, jobs, resources)
	require.NoError(t, err)
	second, err := Recommend(profile, jobs, resources)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.Jobs, DefaultLimit)
	assert.Len(t, first.Resources, DefaultLimit)

	// Data Analyst Intern and Data Engineer both score 2 + track bonus;
	// input order decides between them.
	assert.Equal(t, jobs[0].ID, first.Jobs[0].ID)
	assert.Equal(t, 4, first.Jobs[0].MatchScore)
	assert.Equal(t, jobs[4].ID, first.Jobs[1].ID)
	assert.Equal(t, 4, first.Jobs[1].MatchScore)
	assert.Equal(t, jobs[5].ID, first.Jobs[2].ID)
	assert.Equal(t, 3, first.Jobs[2].MatchScore)
}

func TestRecommend_Concurrent(t *testing.T) {
	profile := &UserProfile{Skills: []string{"Go", "Docker"}}
	jobs := []JobPosting{newJob("DevOps", "Docker", "Kubernetes"), newJob("Backend", "Go")}
	resources := []LearningResource{newResource("Docker")}

	want, err := Recommend(profile, jobs, resources)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]Recommendation, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Recommend(profile, jobs, resources)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

func TestScoredJob_JSONFields(t *testing.T) {
	sj := ScoredJob{
		JobPosting:      newJob("Frontend Developer", "React"),
		MatchingSkills:  []string{"React"},
		MatchScore:      1,
		MatchPercentage: 100,
	}

	b, err := json.Marshal(sj)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, k := range []string{"id", "title", "requiredSkills", "matchingSkills", "matchScore", "matchPercentage"} {
		assert.Contains(t, m, k)
	}

	b, err = json.Marshal(newResource("Go"))
	require.NoError(t, err)
	m = map[string]any{}
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Len(t, m, 2)
}

func TestExtractProfile(t *testing.T) {
	u := user.User{Skills: []string{"Go"}, PreferredTrack: user.TrackWebDevelopment}
	p := ExtractProfile(u)

	assert.Equal(t, []string{"Go"}, p.Skills)
	assert.Equal(t, "Web Development", p.PreferredTrack)

	p.Skills[0] = "Rust"
	assert.Equal(t, "Go", u.Skills[0])

	empty := ExtractProfile(user.User{})
	assert.NotNil(t, empty.Skills)
	assert.Empty(t, empty.Skills)
}
