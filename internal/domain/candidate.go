package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// WorkExperience is one entry in a candidate's work history.
type WorkExperience struct {
	Company  string `json:"company"`
	RoleName string `json:"roleName"`
}

type Degree struct {
	Degree         string `json:"degree"`
	Subject        string `json:"subject"`
	School         string `json:"school,omitempty"`
	GPA            string `json:"gpa,omitempty"`
	StartDate      string `json:"startDate,omitempty"`
	EndDate        string `json:"endDate,omitempty"`
	OriginalSchool string `json:"originalSchool,omitempty"`
	IsTop50        bool   `json:"isTop50,omitempty"`
	IsTop25        bool   `json:"isTop25,omitempty"`
}

type Education struct {
	HighestLevel string   `json:"highest_level"`
	Degrees      []Degree `json:"degrees"`
}

// SalaryEntry pairs an employment-type label ("full-time", "part-time")
// with the free-text salary the applicant entered for it.
type SalaryEntry struct {
	Type   string
	Amount string
}

// SalaryExpectation is the applicant's salary mapping with JSON key order
// preserved. Order matters: when no "full-time" entry exists, the first
// entry in document order is the fallback for salary derivation.
type SalaryExpectation struct {
	entries []SalaryEntry
}

func NewSalaryExpectation(entries ...SalaryEntry) SalaryExpectation {
	return SalaryExpectation{entries: entries}
}

// UnmarshalJSON decodes the mapping token by token so insertion order
// survives. Malformed input (null, arrays, non-string amounts) decodes to
// an empty expectation instead of failing the record.
func (s *SalaryExpectation) UnmarshalJSON(data []byte) error {
	s.entries = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var entries []SalaryEntry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil
		}
		valTok, err := dec.Token()
		if err != nil {
			return nil
		}
		// Non-string amounts are tolerated but contribute nothing
		if val, ok := valTok.(string); ok {
			entries = append(entries, SalaryEntry{Type: key, Amount: val})
			continue
		}
		// Skip nested objects/arrays wholesale so later entries survive
		if open, ok := valTok.(json.Delim); ok && (open == '{' || open == '[') {
			depth := 1
			for depth > 0 {
				tok, err := dec.Token()
				if err != nil {
					return nil
				}
				if d, ok := tok.(json.Delim); ok {
					switch d {
					case '{', '[':
						depth++
					case '}', ']':
						depth--
					}
				}
			}
		}
	}
	s.entries = entries
	return nil
}

func (s SalaryExpectation) MarshalJSON() ([]byte, error) {
	if len(s.entries) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Type)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Lookup returns the amount for an exact employment-type label.
func (s SalaryExpectation) Lookup(employmentType string) (string, bool) {
	for _, e := range s.entries {
		if e.Type == employmentType {
			return e.Amount, true
		}
	}
	return "", false
}

// First returns the first entry in document order.
func (s SalaryExpectation) First() (string, bool) {
	if len(s.entries) == 0 {
		return "", false
	}
	return s.entries[0].Amount, true
}

func (s SalaryExpectation) Len() int {
	return len(s.entries)
}

// CandidateRecord is a raw applicant record as submitted. Every field
// beyond name/email may be absent or malformed in the pool.
type CandidateRecord struct {
	Name                    string            `json:"name"`
	Email                   string            `json:"email"`
	Phone                   string            `json:"phone,omitempty"`
	Location                string            `json:"location"`
	SubmittedAt             string            `json:"submitted_at"`
	WorkAvailability        []string          `json:"work_availability"`
	AnnualSalaryExpectation SalaryExpectation `json:"annual_salary_expectation"`
	WorkExperiences         []WorkExperience  `json:"work_experiences"`
	Education               Education         `json:"education"`
	Skills                  []string          `json:"skills"`
}

// DerivedCandidate is a CandidateRecord plus the canonical fields every
// downstream stage works with. MatchScore is nil when no filter criteria
// are active ("not applicable", distinct from zero).
type DerivedCandidate struct {
	CandidateRecord

	// Count of work-history entries, not years. The name is a legacy
	// artifact of the submission form and is kept for API compatibility.
	ExperienceProxy int  `json:"experienceProxy"`
	SalaryNumeric   int  `json:"salaryNumeric"`
	IsTopSchool     bool `json:"isTopSchool"`
	MatchScore      *int `json:"matchScore,omitempty"`
}

// EducationLevelAll is the sentinel meaning "education level not filtered".
const EducationLevelAll = "all"

// FilterCriteria is the set of filter fields a recruiter can activate.
// Zero-value string fields (and EducationLevelAll) are inactive; the
// salary bounds are always enforced regardless.
type FilterCriteria struct {
	Skills           string
	WorkAvailability []string
	MinSalary        int
	MaxSalary        int
	Location         string
	RoleName         string
	Company          string
	EducationLevel   string
	DegreeSubject    string
}

// HasActiveCriteria reports whether any non-salary criterion is set.
// Salary bounds are a gate, not a criterion, so they never count here.
// The skills filter counts only when it yields at least one usable term:
// a value like "," or " " must not activate scoring with no weighted
// criterion behind it.
func (f FilterCriteria) HasActiveCriteria() bool {
	return len(f.RequiredSkills()) > 0 ||
		len(f.WorkAvailability) > 0 ||
		f.Location != "" ||
		f.RoleName != "" ||
		f.Company != "" ||
		(f.EducationLevel != "" && f.EducationLevel != EducationLevelAll) ||
		f.DegreeSubject != ""
}

// RequiredSkills splits the comma-separated skills filter into trimmed,
// lowercased terms, dropping empties.
func (f FilterCriteria) RequiredSkills() []string {
	if f.Skills == "" {
		return nil
	}
	parts := strings.Split(strings.ToLower(f.Skills), ",")
	skills := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			skills = append(skills, p)
		}
	}
	return skills
}

type SortKey string

const (
	SortByMatchScore SortKey = "matchScore"
	SortByDate       SortKey = "date"
	SortBySalary     SortKey = "salary"
	SortByName       SortKey = "name"
	SortByLocation   SortKey = "location"
	SortByEducation  SortKey = "education"
	SortByExperience SortKey = "experience"
	SortByTopSchools SortKey = "topSchools"
)

// ListQuery is one screening request: filters plus ordering and paging.
type ListQuery struct {
	Filters FilterCriteria
	SortBy  SortKey
	Page    int
	Limit   int
}

// CandidateListing is the listing endpoint's response body.
type CandidateListing struct {
	Candidates []DerivedCandidate `json:"candidates"`
	HasMore    bool               `json:"hasMore"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

type CandidateRepository interface {
	ListAll(ctx context.Context) ([]CandidateRecord, error)
}

type ScreeningUsecase interface {
	ListCandidates(ctx context.Context, query ListQuery) (*CandidateListing, error)
}
