package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/internal/usecase"
)

func TestNormalizeSalary(t *testing.T) {
	tests := []struct {
		name     string
		salary   domain.SalaryExpectation
		expected int
	}{
		{
			name:     "range string takes the leading number",
			salary:   domain.NewSalaryExpectation(domain.SalaryEntry{Type: "full-time", Amount: "$120,000 - $140,000"}),
			expected: 120000,
		},
		{
			name:     "plain number with currency suffix",
			salary:   domain.NewSalaryExpectation(domain.SalaryEntry{Type: "full-time", Amount: "85,000 USD"}),
			expected: 85000,
		},
		{
			name: "falls back to first entry when no full-time",
			salary: domain.NewSalaryExpectation(
				domain.SalaryEntry{Type: "contract", Amount: "$90,000"},
				domain.SalaryEntry{Type: "part-time", Amount: "$60/hr"},
			),
			expected: 90000,
		},
		{
			name:     "full-time preferred over earlier entries",
			salary:   domain.NewSalaryExpectation(domain.SalaryEntry{Type: "part-time", Amount: "$50/hr"}, domain.SalaryEntry{Type: "full-time", Amount: "$100,000"}),
			expected: 100000,
		},
		{
			name:     "no digits yields zero",
			salary:   domain.NewSalaryExpectation(domain.SalaryEntry{Type: "full-time", Amount: "negotiable"}),
			expected: 0,
		},
		{
			name:     "missing mapping yields zero",
			salary:   domain.SalaryExpectation{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := usecase.Normalize(domain.CandidateRecord{AnnualSalaryExpectation: tt.salary})
			assert.Equal(t, tt.expected, c.SalaryNumeric)
			assert.GreaterOrEqual(t, c.SalaryNumeric, 0)
		})
	}
}

func TestNormalizeExperienceProxy(t *testing.T) {
	t.Run("counts work history entries", func(t *testing.T) {
		c := usecase.Normalize(domain.CandidateRecord{
			WorkExperiences: []domain.WorkExperience{
				{Company: "Stripe", RoleName: "Backend Engineer"},
				{Company: "Plaid", RoleName: "Software Engineer"},
			},
		})
		assert.Equal(t, 2, c.ExperienceProxy)
	})

	t.Run("zero for empty history", func(t *testing.T) {
		c := usecase.Normalize(domain.CandidateRecord{})
		assert.Equal(t, 0, c.ExperienceProxy)
	})
}

func TestNormalizeTopSchool(t *testing.T) {
	t.Run("true when any degree is top 50 or top 25", func(t *testing.T) {
		c := usecase.Normalize(domain.CandidateRecord{
			Education: domain.Education{Degrees: []domain.Degree{
				{Subject: "Mathematics"},
				{Subject: "Computer Science", IsTop25: true},
			}},
		})
		assert.True(t, c.IsTopSchool)
	})

	t.Run("false for empty degree list", func(t *testing.T) {
		c := usecase.Normalize(domain.CandidateRecord{})
		assert.False(t, c.IsTopSchool)
	})
}

func TestNormalizeNeverScores(t *testing.T) {
	// Scoring is the pipeline's job; normalization must leave the score
	// unset so "no active filters" stays distinguishable from zero.
	c := usecase.Normalize(domain.CandidateRecord{Name: "Aisha Patel"})
	assert.Nil(t, c.MatchScore)
}
