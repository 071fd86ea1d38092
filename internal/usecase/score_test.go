package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/internal/usecase"
)

func scoringCandidate() *domain.DerivedCandidate {
	return &domain.DerivedCandidate{
		CandidateRecord: domain.CandidateRecord{
			Name:             "Aisha Patel",
			Email:            "aisha.patel@example.com",
			Location:         "San Francisco",
			WorkAvailability: []string{"full-time"},
			WorkExperiences: []domain.WorkExperience{
				{Company: "Stripe", RoleName: "Backend Engineer"},
				{Company: "Plaid", RoleName: "Software Engineer"},
			},
			Education: domain.Education{
				HighestLevel: "Master's Degree",
				Degrees: []domain.Degree{
					{Subject: "Computer Science", IsTop25: true},
				},
			},
			Skills: []string{"python", "rust"},
		},
		ExperienceProxy: 2,
		SalaryNumeric:   120000,
		IsTopSchool:     true,
	}
}

func TestDynamicWeightScorer(t *testing.T) {
	scorer := usecase.NewDynamicWeightScorer()

	t.Run("not applicable without active criteria", func(t *testing.T) {
		_, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{MinSalary: 45000, MaxSalary: 150000})
		assert.False(t, ok)
	})

	t.Run("not applicable when skills yield no usable terms", func(t *testing.T) {
		for _, skills := range []string{",", " ", " , ,"} {
			score, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{Skills: skills})
			assert.False(t, ok, "skills=%q", skills)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})

	t.Run("skills-only collapses to the skills fraction", func(t *testing.T) {
		score, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{Skills: "Python, Go"})
		assert.True(t, ok)
		// One of two required skills matched: round(100 * 0.5 * 30 / 30)
		assert.Equal(t, 50, score)
	})

	t.Run("single binary criterion collapses to 0 or 100", func(t *testing.T) {
		score, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{Location: "francisco"})
		assert.True(t, ok)
		assert.Equal(t, 100, score)

		score, ok = scorer.Score(scoringCandidate(), domain.FilterCriteria{Location: "London"})
		assert.True(t, ok)
		assert.Equal(t, 0, score)
	})

	t.Run("only active criteria enter the denominator", func(t *testing.T) {
		// skills 15/30 + location 15/15 over denominator 45
		score, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{
			Skills:   "Python, Go",
			Location: "San",
		})
		assert.True(t, ok)
		assert.Equal(t, 67, score) // round(100 * 30 / 45)
	})

	t.Run("education level is an exact match", func(t *testing.T) {
		score, _ := scorer.Score(scoringCandidate(), domain.FilterCriteria{EducationLevel: "Master's Degree"})
		assert.Equal(t, 100, score)

		score, _ = scorer.Score(scoringCandidate(), domain.FilterCriteria{EducationLevel: "Master's"})
		assert.Equal(t, 0, score)
	})

	t.Run("availability needs one overlapping tag", func(t *testing.T) {
		score, _ := scorer.Score(scoringCandidate(), domain.FilterCriteria{WorkAvailability: []string{"part-time", "full-time"}})
		assert.Equal(t, 100, score)

		score, _ = scorer.Score(scoringCandidate(), domain.FilterCriteria{WorkAvailability: []string{"part-time"}})
		assert.Equal(t, 0, score)
	})

	t.Run("score stays within 0..100 with everything active", func(t *testing.T) {
		score, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{
			Skills:           "python",
			WorkAvailability: []string{"full-time"},
			Location:         "San Francisco",
			RoleName:         "engineer",
			Company:          "stripe",
			EducationLevel:   "Master's Degree",
			DegreeSubject:    "computer",
		})
		assert.True(t, ok)
		assert.Equal(t, 100, score)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	})
}

func TestFixedWeightScorer(t *testing.T) {
	scorer := usecase.NewFixedWeightScorer()

	t.Run("always applicable", func(t *testing.T) {
		_, ok := scorer.Score(scoringCandidate(), domain.FilterCriteria{})
		assert.True(t, ok)
	})

	t.Run("sums the legacy components", func(t *testing.T) {
		c := scoringCandidate()
		c.ExperienceProxy = 4
		c.SalaryNumeric = 80000

		// skills 25 (1 of 2 matched), experience 4/10*25=10,
		// top school 15, salary at reference 10
		score, _ := scorer.Score(c, domain.FilterCriteria{Skills: "Python, Go"})
		assert.Equal(t, 60, score)
	})

	t.Run("salary component decays to zero at full deviation", func(t *testing.T) {
		c := scoringCandidate()
		c.IsTopSchool = false
		c.ExperienceProxy = 0
		c.SalaryNumeric = 160000

		score, _ := scorer.Score(c, domain.FilterCriteria{})
		assert.Equal(t, 0, score)
	})

	t.Run("experience units cap at ten", func(t *testing.T) {
		c := scoringCandidate()
		c.IsTopSchool = false
		c.ExperienceProxy = 25
		c.SalaryNumeric = 0

		score, _ := scorer.Score(c, domain.FilterCriteria{})
		assert.Equal(t, 25, score)
	})
}
