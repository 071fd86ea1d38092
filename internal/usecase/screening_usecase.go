package usecase

import (
	"context"

	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/pkg/apperror"
)

type screeningUsecase struct {
	repo   domain.CandidateRepository
	scorer ScoringStrategy
}

func NewScreeningUsecase(repo domain.CandidateRepository, scorer ScoringStrategy) domain.ScreeningUsecase {
	return &screeningUsecase{
		repo:   repo,
		scorer: scorer,
	}
}

// ListCandidates runs the screening pipeline for one request:
// load -> normalize -> score (iff any criterion active) -> filter ->
// sort -> paginate. Per-candidate problems are absorbed by the stages
// themselves; only a pool-level failure aborts the request.
func (u *screeningUsecase) ListCandidates(ctx context.Context, q domain.ListQuery) (*domain.CandidateListing, error) {
	records, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal("failed to load candidates", err)
	}

	hasFilters := q.Filters.HasActiveCriteria()

	derived := make([]domain.DerivedCandidate, 0, len(records))
	for i := range records {
		candidate := Normalize(records[i])
		if hasFilters {
			if score, ok := u.scorer.Score(&candidate, q.Filters); ok {
				candidate.MatchScore = &score
			}
		}
		if !PassesFilters(&candidate, q.Filters) {
			continue
		}
		derived = append(derived, candidate)
	}

	SortCandidates(derived, q.SortBy)
	items, total, hasMore := Paginate(derived, q.Page, q.Limit)

	return &domain.CandidateListing{
		Candidates: items,
		HasMore:    hasMore,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
	}, nil
}
