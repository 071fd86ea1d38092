package usecase

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/RitikJ22/hirewise/internal/domain"
)

// Layouts tried when parsing submitted_at. Anything unparsable sorts as
// epoch 0, i.e. last under the descending date order.
var submittedAtLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SortCandidates orders the slice in place by the given key, stable.
// Descending for score/date/salary/experience, ascending locale order for
// the text keys. An unknown key leaves the order untouched.
func SortCandidates(candidates []domain.DerivedCandidate, key domain.SortKey) {
	// A collator is not safe for concurrent use, so each sort gets its own.
	col := collate.New(language.English)

	switch key {
	case domain.SortByMatchScore:
		sort.SliceStable(candidates, func(i, j int) bool {
			return scoreOrZero(&candidates[i]) > scoreOrZero(&candidates[j])
		})
	case domain.SortByDate:
		sort.SliceStable(candidates, func(i, j int) bool {
			return parseSubmittedAt(candidates[i].SubmittedAt) > parseSubmittedAt(candidates[j].SubmittedAt)
		})
	case domain.SortBySalary:
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].SalaryNumeric > candidates[j].SalaryNumeric
		})
	case domain.SortByName:
		sort.SliceStable(candidates, func(i, j int) bool {
			return col.CompareString(candidates[i].Name, candidates[j].Name) < 0
		})
	case domain.SortByLocation:
		sort.SliceStable(candidates, func(i, j int) bool {
			return col.CompareString(candidates[i].Location, candidates[j].Location) < 0
		})
	case domain.SortByEducation:
		sort.SliceStable(candidates, func(i, j int) bool {
			return col.CompareString(candidates[i].Education.HighestLevel, candidates[j].Education.HighestLevel) < 0
		})
	case domain.SortByExperience:
		sort.SliceStable(candidates, func(i, j int) bool {
			return len(candidates[i].WorkExperiences) > len(candidates[j].WorkExperiences)
		})
	case domain.SortByTopSchools:
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := &candidates[i], &candidates[j]
			if a.IsTopSchool != b.IsTopSchool {
				return a.IsTopSchool
			}
			return col.CompareString(a.Name, b.Name) < 0
		})
	}
}

// scoreOrZero treats an absent score as 0 for ordering purposes only.
func scoreOrZero(c *domain.DerivedCandidate) int {
	if c.MatchScore == nil {
		return 0
	}
	return *c.MatchScore
}

func parseSubmittedAt(value string) int64 {
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Unix()
		}
	}
	return 0
}
