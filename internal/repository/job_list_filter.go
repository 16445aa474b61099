package repository

import (
	"fmt"
	"strings"
)

// JobListFilter narrows the public job listing. Empty fields do not filter.
type JobListFilter struct {
	Query    string
	Location string
	JobType  string
	Skills   []string
	Remote   *bool
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps s for a case-insensitive substring match with ILIKE.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func (f JobListFilter) whereClause() (string, []any) {
	conds := make([]string, 0, 5)
	args := make([]any, 0, 5)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		p := next(likePattern(q))
		conds = append(conds, fmt.Sprintf(
			`(title ILIKE %[1]s OR company ILIKE %[1]s OR description ILIKE %[1]s OR EXISTS (SELECT 1 FROM unnest(required_skills) AS rs WHERE rs ILIKE %[1]s))`,
			p,
		))
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		conds = append(conds, "location ILIKE "+next(likePattern(loc)))
	}
	if jt := strings.TrimSpace(f.JobType); jt != "" {
		conds = append(conds, "job_type = "+next(jt))
	}

	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		skills = append(skills, likePattern(s))
	}
	if len(skills) > 0 {
		// every wanted pattern must hit at least one required skill
		conds = append(conds, fmt.Sprintf(
			`NOT EXISTS (SELECT 1 FROM unnest(%s::text[]) AS want WHERE NOT EXISTS (SELECT 1 FROM unnest(required_skills) AS rs WHERE rs ILIKE want))`,
			next(skills),
		))
	}
	if f.Remote != nil {
		conds = append(conds, "remote = "+next(*f.Remote))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
