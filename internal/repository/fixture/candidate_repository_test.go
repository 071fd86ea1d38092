package fixture_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RitikJ22/hirewise/internal/repository/fixture"
	"github.com/RitikJ22/hirewise/pkg/logger"
)

func init() {
	logger.Init()
}

func writePool(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "form-submissions.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestListAll(t *testing.T) {
	t.Run("loads well-formed records", func(t *testing.T) {
		path := writePool(t, `[
			{
				"name": "Aisha Patel",
				"email": "aisha.patel@example.com",
				"location": "San Francisco",
				"annual_salary_expectation": {"full-time": "$120,000 - $140,000"},
				"work_experiences": [{"company": "Stripe", "roleName": "Backend Engineer"}],
				"skills": ["Python", "Go"]
			}
		]`)

		records, err := fixture.NewCandidateRepository(path).ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, "Aisha Patel", records[0].Name)
		salary, ok := records[0].AnnualSalaryExpectation.Lookup("full-time")
		assert.True(t, ok)
		assert.Equal(t, "$120,000 - $140,000", salary)
	})

	t.Run("keeps a malformed record with defaults", func(t *testing.T) {
		path := writePool(t, `[
			{"name": "Good One", "email": "good@example.com"},
			{"name": "Broken One", "email": "broken@example.com", "skills": "not-an-array", "work_experiences": 42},
			{"name": "Also Good", "email": "also@example.com"}
		]`)

		records, err := fixture.NewCandidateRepository(path).ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, "Broken One", records[1].Name)
		assert.Empty(t, records[1].Skills)
		assert.Empty(t, records[1].WorkExperiences)
	})

	t.Run("tolerates a malformed salary mapping", func(t *testing.T) {
		path := writePool(t, `[{"name": "N", "email": "n@example.com", "annual_salary_expectation": "oops"}]`)

		records, err := fixture.NewCandidateRepository(path).ListAll(context.Background())
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, 0, records[0].AnnualSalaryExpectation.Len())
	})

	t.Run("missing file is a pool-level error", func(t *testing.T) {
		repo := fixture.NewCandidateRepository(filepath.Join(t.TempDir(), "missing.json"))
		_, err := repo.ListAll(context.Background())
		assert.Error(t, err)
	})

	t.Run("unparsable pool is a pool-level error", func(t *testing.T) {
		path := writePool(t, `{"not": "an array"`)
		_, err := fixture.NewCandidateRepository(path).ListAll(context.Background())
		assert.Error(t, err)
	})
}
