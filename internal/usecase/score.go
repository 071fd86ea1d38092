package usecase

import (
	"math"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/RitikJ22/hirewise/internal/domain"
)

// ScoringStrategy computes a 0-100 match percentage for a candidate
// against the active filter criteria. ok is false when the score is not
// applicable (as opposed to zero).
type ScoringStrategy interface {
	Score(candidate *domain.DerivedCandidate, filters domain.FilterCriteria) (score int, ok bool)
}

// Weight each criterion contributes when active. Only active criteria
// enter the denominator, so a single-criterion query collapses to that
// criterion's full-credit/no-credit value scaled to 100.
const (
	weightSkills         = 30
	weightAvailability   = 20
	weightLocation       = 15
	weightRole           = 15
	weightCompany        = 10
	weightEducationLevel = 5
	weightDegreeSubject  = 5
)

// DynamicWeightScorer weighs only the criteria the recruiter activated.
// With no active criteria there is nothing to score against and the
// result is not applicable.
type DynamicWeightScorer struct{}

func NewDynamicWeightScorer() *DynamicWeightScorer {
	return &DynamicWeightScorer{}
}

func (s *DynamicWeightScorer) Score(c *domain.DerivedCandidate, f domain.FilterCriteria) (int, bool) {
	if !f.HasActiveCriteria() {
		return 0, false
	}

	var numerator, denominator float64

	if required := f.RequiredSkills(); len(required) > 0 {
		denominator += weightSkills
		numerator += weightSkills * skillsMatchFraction(c.Skills, required)
	}

	if len(f.WorkAvailability) > 0 {
		denominator += weightAvailability
		if hasAvailabilityOverlap(c.WorkAvailability, f.WorkAvailability) {
			numerator += weightAvailability
		}
	}

	if f.Location != "" {
		denominator += weightLocation
		if containsFold(c.Location, f.Location) {
			numerator += weightLocation
		}
	}

	if f.RoleName != "" {
		denominator += weightRole
		if anyExperienceMatches(c.WorkExperiences, f.RoleName, func(e domain.WorkExperience) string { return e.RoleName }) {
			numerator += weightRole
		}
	}

	if f.Company != "" {
		denominator += weightCompany
		if anyExperienceMatches(c.WorkExperiences, f.Company, func(e domain.WorkExperience) string { return e.Company }) {
			numerator += weightCompany
		}
	}

	if f.EducationLevel != "" && f.EducationLevel != domain.EducationLevelAll {
		denominator += weightEducationLevel
		if c.Education.HighestLevel == f.EducationLevel {
			numerator += weightEducationLevel
		}
	}

	if f.DegreeSubject != "" {
		denominator += weightDegreeSubject
		if anyDegreeSubjectMatches(c.Education.Degrees, f.DegreeSubject) {
			numerator += weightDegreeSubject
		}
	}

	// denominator > 0 is guaranteed: HasActiveCriteria held above
	return int(math.Round(100 * numerator / denominator)), true
}

// FixedWeightScorer is the legacy scheme: constant weights regardless of
// which filters are active (skills 50, experience 25, top school 15,
// salary competitiveness 10 against a fixed reference salary).
type FixedWeightScorer struct{}

// referenceSalary anchors the legacy salary-competitiveness term. Scores
// decay linearly with deviation from it, reaching 0 at +-100%.
const referenceSalary = 80000

func NewFixedWeightScorer() *FixedWeightScorer {
	return &FixedWeightScorer{}
}

func (s *FixedWeightScorer) Score(c *domain.DerivedCandidate, f domain.FilterCriteria) (int, bool) {
	var score float64

	if required := f.RequiredSkills(); len(required) > 0 {
		score += 50 * skillsMatchFraction(c.Skills, required)
	}

	experienceUnits := math.Min(float64(c.ExperienceProxy), 10)
	score += experienceUnits / 10 * 25

	if c.IsTopSchool {
		score += 15
	}

	deviation := math.Abs(float64(c.SalaryNumeric)-referenceSalary) / referenceSalary
	score += math.Max(0, 10-deviation*10)

	return int(math.Round(score)), true
}

// skillsMatchFraction is the fraction of required skills for which at
// least one candidate skill contains the required term, case-insensitive.
func skillsMatchFraction(candidateSkills, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0
	}
	matched := 0
	for _, required := range requiredSkills {
		for _, skill := range candidateSkills {
			if strings.Contains(strings.ToLower(skill), required) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(requiredSkills))
}

func hasAvailabilityOverlap(candidateTags, requestedTags []string) bool {
	have := mapset.NewSet(candidateTags...)
	want := mapset.NewSet(requestedTags...)
	return have.Intersect(want).Cardinality() > 0
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func anyExperienceMatches(experiences []domain.WorkExperience, needle string, field func(domain.WorkExperience) string) bool {
	for _, e := range experiences {
		if containsFold(field(e), needle) {
			return true
		}
	}
	return false
}

func anyDegreeSubjectMatches(degrees []domain.Degree, needle string) bool {
	for _, d := range degrees {
		if containsFold(d.Subject, needle) {
			return true
		}
	}
	return false
}
