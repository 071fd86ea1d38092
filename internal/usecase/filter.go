package usecase

import (
	"github.com/RitikJ22/hirewise/internal/domain"
)

// PassesFilters runs the two-phase filter chain. The salary gate applies
// to every request; the remaining predicates run only when at least one
// non-salary criterion is active, and failing any one excludes the
// candidate.
func PassesFilters(c *domain.DerivedCandidate, f domain.FilterCriteria) bool {
	// Phase 1: salary gate, unconditional
	if c.SalaryNumeric < f.MinSalary || c.SalaryNumeric > f.MaxSalary {
		return false
	}

	if !f.HasActiveCriteria() {
		return true
	}

	// Phase 2: conditionally-active predicates
	if len(f.WorkAvailability) > 0 && !hasAvailabilityOverlap(c.WorkAvailability, f.WorkAvailability) {
		return false
	}

	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}

	if f.RoleName != "" &&
		!anyExperienceMatches(c.WorkExperiences, f.RoleName, func(e domain.WorkExperience) string { return e.RoleName }) {
		return false
	}

	if f.Company != "" &&
		!anyExperienceMatches(c.WorkExperiences, f.Company, func(e domain.WorkExperience) string { return e.Company }) {
		return false
	}

	if f.EducationLevel != "" && f.EducationLevel != domain.EducationLevelAll &&
		c.Education.HighestLevel != f.EducationLevel {
		return false
	}

	if f.DegreeSubject != "" && !anyDegreeSubjectMatches(c.Education.Degrees, f.DegreeSubject) {
		return false
	}

	// Skills use OR semantics: one matched required skill is enough to
	// pass; the match fraction only affects the score.
	if required := f.RequiredSkills(); len(required) > 0 && skillsMatchFraction(c.Skills, required) == 0 {
		return false
	}

	return true
}
