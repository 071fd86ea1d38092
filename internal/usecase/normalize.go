package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/RitikJ22/hirewise/internal/domain"
)

// First contiguous run of digits and grouping commas in a salary string,
// e.g. "$120,000 - $140,000" -> "120,000".
var salaryTokenRegex = regexp.MustCompile(`[\d,]+`)

// Normalize derives the canonical fields every downstream stage relies
// on. It is a total function: missing or malformed inputs produce zero
// values, never an error, so a candidate is never dropped here.
func Normalize(record domain.CandidateRecord) domain.DerivedCandidate {
	return domain.DerivedCandidate{
		CandidateRecord: record,
		ExperienceProxy: len(record.WorkExperiences),
		SalaryNumeric:   parseSalary(record.AnnualSalaryExpectation),
		IsTopSchool:     hasTopSchoolDegree(record.Education.Degrees),
	}
}

// parseSalary picks the "full-time" entry when present, otherwise the
// first entry in document order, and extracts its leading numeric token.
func parseSalary(expectation domain.SalaryExpectation) int {
	salaryStr, ok := expectation.Lookup("full-time")
	if !ok {
		salaryStr, ok = expectation.First()
	}
	if !ok || salaryStr == "" {
		return 0
	}

	token := salaryTokenRegex.FindString(salaryStr)
	if token == "" {
		return 0
	}
	value, err := strconv.Atoi(strings.ReplaceAll(token, ",", ""))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func hasTopSchoolDegree(degrees []domain.Degree) bool {
	for _, d := range degrees {
		if d.IsTop50 || d.IsTop25 {
			return true
		}
	}
	return false
}
