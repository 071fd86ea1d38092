package usecase

import (
	"github.com/RitikJ22/hirewise/internal/domain"
)

// Paginate slices out the 1-indexed page and reports the full sequence
// length plus whether more pages follow. An out-of-range page yields an
// empty (non-nil) slice with the correct total.
func Paginate(candidates []domain.DerivedCandidate, page, limit int) (items []domain.DerivedCandidate, total int, hasMore bool) {
	total = len(candidates)
	start := (page - 1) * limit
	if start >= total {
		return []domain.DerivedCandidate{}, total, false
	}

	end := start + limit
	if end > total {
		end = total
	}
	return candidates[start:end], total, start+limit < total
}
