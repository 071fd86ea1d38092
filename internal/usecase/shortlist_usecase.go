package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/pkg/apperror"
)

type shortlistUsecase struct {
	repo     domain.ShortlistRepository
	validate *validator.Validate
	capacity int
}

func NewShortlistUsecase(repo domain.ShortlistRepository, validate *validator.Validate, capacity int) domain.ShortlistUsecase {
	return &shortlistUsecase{
		repo:     repo,
		validate: validate,
		capacity: capacity,
	}
}

func (u *shortlistUsecase) List(ctx context.Context) (*domain.ShortlistView, error) {
	return u.view(ctx)
}

// Add puts a candidate on the shortlist, keyed by email. Re-adding an
// existing email is a no-op; exceeding capacity is a conflict.
func (u *shortlistUsecase) Add(ctx context.Context, candidate *domain.DerivedCandidate) (*domain.ShortlistView, error) {
	if strings.TrimSpace(candidate.Email) == "" {
		return nil, apperror.BadRequest("candidate email is required")
	}
	if strings.TrimSpace(candidate.Name) == "" {
		return nil, apperror.BadRequest("candidate name is required")
	}

	if err := u.repo.Add(ctx, *candidate, u.capacity); err != nil {
		if errors.Is(err, domain.ErrShortlistFull) {
			return nil, apperror.Conflict(fmt.Sprintf("shortlist is full (%d candidates max)", u.capacity))
		}
		return nil, apperror.Internal("failed to update shortlist", err)
	}

	return u.view(ctx)
}

func (u *shortlistUsecase) Remove(ctx context.Context, email string) (*domain.ShortlistView, error) {
	removed, err := u.repo.Remove(ctx, email)
	if err != nil {
		return nil, apperror.Internal("failed to update shortlist", err)
	}
	if !removed {
		return nil, apperror.NotFound("candidate is not on the shortlist")
	}
	return u.view(ctx)
}

func (u *shortlistUsecase) Clear(ctx context.Context) error {
	if err := u.repo.Clear(ctx); err != nil {
		return apperror.Internal("failed to clear shortlist", err)
	}
	return nil
}

// Analytics aggregates the current shortlist. An empty shortlist yields
// zero-valued analytics rather than an error.
func (u *shortlistUsecase) Analytics(ctx context.Context) (*domain.TeamAnalytics, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to read shortlist", err)
	}

	analytics := &domain.TeamAnalytics{
		TeamSize:       len(candidates),
		SkillFrequency: []domain.SkillCount{},
	}
	if len(candidates) == 0 {
		return analytics, nil
	}

	var salarySum, experienceSum, scoreSum float64
	locations := mapset.NewSet[string]()
	skillCounts := map[string]int{}

	for i := range candidates {
		c := &candidates[i]
		salarySum += float64(c.SalaryNumeric)
		experienceSum += float64(c.ExperienceProxy)
		scoreSum += float64(scoreOrZero(c))
		if c.IsTopSchool {
			analytics.TopSchoolCount++
		}
		locations.Add(c.Location)
		for _, skill := range c.Skills {
			skillCounts[skill]++
		}
	}

	size := float64(len(candidates))
	analytics.AverageSalary = salarySum / size
	analytics.AverageExperience = experienceSum / size
	analytics.AverageMatchScore = scoreSum / size
	analytics.TopSchoolRatio = float64(analytics.TopSchoolCount) / size
	analytics.UniqueLocations = locations.Cardinality()

	for skill, count := range skillCounts {
		analytics.SkillFrequency = append(analytics.SkillFrequency, domain.SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(analytics.SkillFrequency, func(i, j int) bool {
		a, b := analytics.SkillFrequency[i], analytics.SkillFrequency[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Skill < b.Skill
	})

	return analytics, nil
}

// Report renders the shortlist as the plain-text hiring report used for
// both the file download and the mailto body. The returned count comes
// from the same snapshot as the text.
func (u *shortlistUsecase) Report(ctx context.Context) (*domain.HiringReport, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to read shortlist", err)
	}
	if len(candidates) == 0 {
		return nil, apperror.Conflict("shortlist is empty")
	}

	printer := message.NewPrinter(language.English)
	formatSalary := func(amount float64) string {
		return printer.Sprintf("$%d", int(math.Round(amount)))
	}

	var sb strings.Builder
	sb.WriteString("HIRING TEAM REPORT\n")
	sb.WriteString(fmt.Sprintf("Generated on: %s\n", time.Now().Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Team Size: %d candidates\n\n", len(candidates)))

	var salarySum float64
	topSchoolCount := 0
	locations := mapset.NewSet[string]()

	for i := range candidates {
		c := &candidates[i]
		salarySum += float64(c.SalaryNumeric)
		if c.IsTopSchool {
			topSchoolCount++
		}
		locations.Add(c.Location)

		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, c.Name))
		sb.WriteString(fmt.Sprintf("   Email: %s\n", c.Email))
		sb.WriteString(fmt.Sprintf("   Location: %s\n", orUnknown(c.Location)))
		sb.WriteString(fmt.Sprintf("   Work Availability: %s\n", orUnknown(strings.Join(c.WorkAvailability, ", "))))
		sb.WriteString(fmt.Sprintf("   Salary: %s\n", formatSalary(float64(c.SalaryNumeric))))
		sb.WriteString(fmt.Sprintf("   Skills: %s\n", orDefault(strings.Join(c.Skills, ", "), "No skills listed")))
		sb.WriteString(fmt.Sprintf("   Experience: %d positions\n", c.ExperienceProxy))
		sb.WriteString(fmt.Sprintf("   Education: %s\n", orUnknown(c.Education.HighestLevel)))
		if c.MatchScore != nil {
			sb.WriteString(fmt.Sprintf("   Match Score: %d%%\n", *c.MatchScore))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("TEAM SUMMARY:\n")
	sb.WriteString(fmt.Sprintf("Average Salary: %s\n", formatSalary(salarySum/float64(len(candidates)))))
	sb.WriteString(fmt.Sprintf("Top School Graduates: %d/%d\n", topSchoolCount, len(candidates)))
	sb.WriteString(fmt.Sprintf("Geographic Diversity: %d locations\n", locations.Cardinality()))

	return &domain.HiringReport{Text: sb.String(), Count: len(candidates)}, nil
}

// ShareLink builds a mailto URL with the report prefilled as the body.
func (u *shortlistUsecase) ShareLink(ctx context.Context, recipient string) (string, error) {
	if err := u.validate.Var(recipient, "required,email"); err != nil {
		return "", apperror.BadRequest("a valid recipient email is required")
	}

	report, err := u.Report(ctx)
	if err != nil {
		return "", err
	}

	subject := fmt.Sprintf("Hiring Team Report - %d Candidates", report.Count)
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		recipient, mailtoEscape(subject), mailtoEscape(report.Text)), nil
}

func (u *shortlistUsecase) view(ctx context.Context) (*domain.ShortlistView, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to read shortlist", err)
	}
	return &domain.ShortlistView{
		Candidates: candidates,
		Count:      len(candidates),
		Capacity:   u.capacity,
	}, nil
}

// mailtoEscape percent-encodes for a mailto URL. QueryEscape alone maps
// spaces to "+", which mail clients render literally.
func mailtoEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func orUnknown(s string) string {
	return orDefault(s, "Unknown")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
