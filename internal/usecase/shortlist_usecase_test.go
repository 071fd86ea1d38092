package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/internal/repository/memory"
	"github.com/RitikJ22/hirewise/internal/usecase"
	"github.com/RitikJ22/hirewise/pkg/apperror"
)

func newShortlistUC() domain.ShortlistUsecase {
	return usecase.NewShortlistUsecase(memory.NewShortlistRepository(), validator.New(), 5)
}

func teamMember(i int) *domain.DerivedCandidate {
	c := &domain.DerivedCandidate{
		ExperienceProxy: i,
		SalaryNumeric:   100000 + i*10000,
	}
	c.Name = fmt.Sprintf("Candidate %d", i)
	c.Email = fmt.Sprintf("candidate%d@example.com", i)
	c.Location = "San Francisco"
	c.Skills = []string{"Go", "Python"}
	return c
}

func TestShortlistMembership(t *testing.T) {
	ctx := context.Background()
	uc := newShortlistUC()

	t.Run("add and list preserve order", func(t *testing.T) {
		for i := 1; i <= 3; i++ {
			view, err := uc.Add(ctx, teamMember(i))
			require.NoError(t, err)
			assert.Equal(t, i, view.Count)
			assert.Equal(t, 5, view.Capacity)
		}
		view, err := uc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "candidate1@example.com", view.Candidates[0].Email)
		assert.Equal(t, "candidate3@example.com", view.Candidates[2].Email)
	})

	t.Run("duplicate email is a no-op", func(t *testing.T) {
		dup := teamMember(1)
		dup.Name = "Candidate One Renamed" // same-named applicants must not collide; email is the key
		view, err := uc.Add(ctx, dup)
		require.NoError(t, err)
		assert.Equal(t, 3, view.Count)
		assert.Equal(t, "Candidate 1", view.Candidates[0].Name)
	})

	t.Run("capacity is enforced", func(t *testing.T) {
		_, err := uc.Add(ctx, teamMember(4))
		require.NoError(t, err)
		_, err = uc.Add(ctx, teamMember(5))
		require.NoError(t, err)

		_, err = uc.Add(ctx, teamMember(6))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)

		// re-adding an existing member still succeeds at capacity
		_, err = uc.Add(ctx, teamMember(5))
		assert.NoError(t, err)
	})

	t.Run("remove unknown email is not found", func(t *testing.T) {
		_, err := uc.Remove(ctx, "nobody@example.com")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 404, appErr.Code)
	})

	t.Run("remove then clear", func(t *testing.T) {
		view, err := uc.Remove(ctx, "candidate2@example.com")
		require.NoError(t, err)
		assert.Equal(t, 4, view.Count)

		require.NoError(t, uc.Clear(ctx))
		view, err = uc.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, view.Count)
	})
}

func TestShortlistRejectsIncompleteCandidates(t *testing.T) {
	ctx := context.Background()
	uc := newShortlistUC()

	c := teamMember(1)
	c.Email = "  "
	_, err := uc.Add(ctx, c)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)

	c = teamMember(1)
	c.Name = ""
	_, err = uc.Add(ctx, c)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Code)
}

func TestTeamAnalytics(t *testing.T) {
	ctx := context.Background()
	uc := newShortlistUC()

	t.Run("empty shortlist yields zero-valued analytics", func(t *testing.T) {
		analytics, err := uc.Analytics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, analytics.TeamSize)
		assert.Empty(t, analytics.SkillFrequency)
	})

	a := teamMember(1) // salary 110000, 1 position
	a.IsTopSchool = true
	score := 80
	a.MatchScore = &score
	a.Skills = []string{"Go", "Kubernetes"}

	b := teamMember(2) // salary 120000, 2 positions
	b.Location = "Austin"
	b.Skills = []string{"Go", "Python"}

	_, err := uc.Add(ctx, a)
	require.NoError(t, err)
	_, err = uc.Add(ctx, b)
	require.NoError(t, err)

	analytics, err := uc.Analytics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.TeamSize)
	assert.InDelta(t, 115000, analytics.AverageSalary, 0.001)
	assert.InDelta(t, 1.5, analytics.AverageExperience, 0.001)
	assert.InDelta(t, 40, analytics.AverageMatchScore, 0.001) // missing score counts as 0
	assert.Equal(t, 1, analytics.TopSchoolCount)
	assert.InDelta(t, 0.5, analytics.TopSchoolRatio, 0.001)
	assert.Equal(t, 2, analytics.UniqueLocations)

	// histogram: count descending, then skill ascending
	require.Len(t, analytics.SkillFrequency, 3)
	assert.Equal(t, domain.SkillCount{Skill: "Go", Count: 2}, analytics.SkillFrequency[0])
	assert.Equal(t, domain.SkillCount{Skill: "Kubernetes", Count: 1}, analytics.SkillFrequency[1])
	assert.Equal(t, domain.SkillCount{Skill: "Python", Count: 1}, analytics.SkillFrequency[2])
}

func TestTeamReport(t *testing.T) {
	ctx := context.Background()
	uc := newShortlistUC()

	t.Run("empty shortlist is a conflict", func(t *testing.T) {
		_, err := uc.Report(ctx)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})

	member := teamMember(1)
	member.WorkAvailability = []string{"full-time"}
	member.Education.HighestLevel = "Master's Degree"
	score := 85
	member.MatchScore = &score
	_, err := uc.Add(ctx, member)
	require.NoError(t, err)

	report, err := uc.Report(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count)
	assert.True(t, strings.HasPrefix(report.Text, "HIRING TEAM REPORT\n"))
	assert.Contains(t, report.Text, "Team Size: 1 candidates")
	assert.Contains(t, report.Text, "1. Candidate 1")
	assert.Contains(t, report.Text, "Email: candidate1@example.com")
	assert.Contains(t, report.Text, "Salary: $110,000")
	assert.Contains(t, report.Text, "Experience: 1 positions")
	assert.Contains(t, report.Text, "Match Score: 85%")
	assert.Contains(t, report.Text, "Average Salary: $110,000")
	assert.Contains(t, report.Text, "Top School Graduates: 0/1")
	assert.Contains(t, report.Text, "Geographic Diversity: 1 locations")
}

func TestShareLink(t *testing.T) {
	ctx := context.Background()
	uc := newShortlistUC()

	_, err := uc.Add(ctx, teamMember(1))
	require.NoError(t, err)

	t.Run("rejects invalid recipient", func(t *testing.T) {
		_, err := uc.ShareLink(ctx, "not-an-email")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 400, appErr.Code)
	})

	t.Run("builds an escaped mailto URL", func(t *testing.T) {
		link, err := uc.ShareLink(ctx, "hr@example.com")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(link, "mailto:hr@example.com?subject="))
		assert.Contains(t, link, "Hiring%20Team%20Report")
		assert.Contains(t, link, "&body=HIRING%20TEAM%20REPORT")
		// spaces must be percent-encoded, never "+"
		assert.NotContains(t, link, "+")
	})

	t.Run("empty shortlist is a conflict", func(t *testing.T) {
		empty := newShortlistUC()
		_, err := empty.ShareLink(ctx, "hr@example.com")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 409, appErr.Code)
	})
}
