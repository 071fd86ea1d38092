package domain

import (
	"context"
	"errors"
)

// ErrShortlistFull is returned by ShortlistRepository.Add when the
// shortlist already holds the maximum number of candidates.
var ErrShortlistFull = errors.New("shortlist is full")

// ShortlistView is the current shortlist as returned to the client.
type ShortlistView struct {
	Candidates []DerivedCandidate `json:"candidates"`
	Count      int                `json:"count"`
	Capacity   int                `json:"capacity"`
}

// SkillCount is one bar of the team skill histogram.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// TeamAnalytics aggregates the shortlisted candidates into team-level
// numbers. AverageExperience is an average of position counts, not years.
type TeamAnalytics struct {
	TeamSize          int          `json:"teamSize"`
	AverageSalary     float64      `json:"averageSalary"`
	AverageExperience float64      `json:"averageExperience"`
	AverageMatchScore float64      `json:"averageMatchScore"`
	TopSchoolCount    int          `json:"topSchoolCount"`
	TopSchoolRatio    float64      `json:"topSchoolRatio"`
	UniqueLocations   int          `json:"uniqueLocations"`
	SkillFrequency    []SkillCount `json:"skillFrequency"`
}

// HiringReport is the rendered plain-text report together with the
// candidate count of the snapshot it was rendered from, so callers
// never re-read the shortlist to label the report.
type HiringReport struct {
	Text  string
	Count int
}

// ShareRequest is the body of the share-by-email action.
type ShareRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ShortlistRepository stores the shortlist keyed by candidate email,
// preserving insertion order.
type ShortlistRepository interface {
	List(ctx context.Context) ([]DerivedCandidate, error)
	// Add inserts the candidate unless its email is already present
	// (a no-op). The dedupe and capacity check run atomically so
	// concurrent adds cannot overfill the shortlist; at capacity it
	// returns ErrShortlistFull.
	Add(ctx context.Context, candidate DerivedCandidate, capacity int) error
	Remove(ctx context.Context, email string) (bool, error)
	Clear(ctx context.Context) error
}

type ShortlistUsecase interface {
	List(ctx context.Context) (*ShortlistView, error)
	Add(ctx context.Context, candidate *DerivedCandidate) (*ShortlistView, error)
	Remove(ctx context.Context, email string) (*ShortlistView, error)
	Clear(ctx context.Context) error
	Analytics(ctx context.Context) (*TeamAnalytics, error)
	Report(ctx context.Context) (*HiringReport, error)
	ShareLink(ctx context.Context, recipient string) (string, error)
}
