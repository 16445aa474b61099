package user

import "strings"

// Completeness scores how much of the profile is filled in, 0..100.
func Completeness(u User) int {
	score := 0
	addString := func(v string, weight int) {
		if strings.TrimSpace(v) != "" {
			score += weight
		}
	}
	addList := func(v []string, weight int) {
		if len(v) > 0 {
			score += weight
		}
	}

	addString(u.Name, 15)
	addString(u.Email, 10)
	addString(u.EducationLevel, 15)
	addString(u.ExperienceLevel, 15)
	addString(u.PreferredTrack, 15)
	addList(u.Skills, 20)
	addList(u.CareerInterests, 10)

	if score > 100 {
		return 100
	}
	return score
}
