package dto

import (
	"encoding/json"
	"errors"

	"career-match/internal/domain/user"
)

var errInvalidList = errors.New("expected an array of strings or a comma separated string")

// StringList accepts either ["a","b"] or "a, b" and stores the trimmed,
// non-blank items.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*l = user.CleanList(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*l = user.SplitList(s)
		return nil
	}
	return errInvalidList
}

// ExperienceList decodes an array of experience entries. Any other JSON
// value decodes to an empty list.
type ExperienceList []user.Experience

func (l *ExperienceList) UnmarshalJSON(b []byte) error {
	var arr []user.Experience
	if err := json.Unmarshal(b, &arr); err != nil || arr == nil {
		*l = ExperienceList{}
		return nil
	}
	*l = arr
	return nil
}
