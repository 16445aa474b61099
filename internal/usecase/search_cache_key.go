package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

const (
	CatalogJobsKey      = "catalog:jobs"
	CatalogResourcesKey = "catalog:resources"
	JobFacetsKey        = "jobs:facets"

	jobsSearchPrefix = "jobs:search:"
	jobsLockPrefix   = "jobs:lock:"
)

type jobSearchCacheKeyInput struct {
	Query    string   `json:"q"`
	Location string   `json:"location"`
	JobType  string   `json:"job_type"`
	Skills   []string `json:"skills"`
	Remote   string   `json:"remote"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey is stable under case, whitespace and skill order, so
// equivalent filters share one cache entry.
func JobsSearchCacheKey(params JobListParams) string {
	skills := make([]string, 0, len(params.Skills))
	for _, s := range params.Skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}
	sort.Strings(skills)

	remote := ""
	if params.Remote != nil {
		remote = "false"
		if *params.Remote {
			remote = "true"
		}
	}

	in := jobSearchCacheKeyInput{
		Query:    normalizeSearchValue(params.Query),
		Location: normalizeSearchValue(params.Location),
		JobType:  strings.TrimSpace(params.JobType),
		Skills:   skills,
		Remote:   remote,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return jobsSearchPrefix + hex.EncodeToString(sum[:])
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	return jobsLockPrefix + strings.TrimPrefix(searchKey, jobsSearchPrefix)
}
