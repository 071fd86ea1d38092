package memory

import (
	"context"
	"sync"

	"github.com/RitikJ22/hirewise/internal/domain"
)

// shortlistRepository is the in-process shortlist store. Membership is
// keyed by email and insertion order is preserved so the report lists
// candidates in the order the recruiter picked them.
type shortlistRepository struct {
	mu         sync.Mutex
	candidates []domain.DerivedCandidate
}

func NewShortlistRepository() domain.ShortlistRepository {
	return &shortlistRepository{}
}

func (r *shortlistRepository) List(ctx context.Context) ([]domain.DerivedCandidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.DerivedCandidate, len(r.candidates))
	copy(out, r.candidates)
	return out, nil
}

// Add checks membership and capacity under the same lock, so two
// concurrent adds can never push the shortlist past capacity.
func (r *shortlistRepository) Add(ctx context.Context, candidate domain.DerivedCandidate, capacity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.candidates {
		if c.Email == candidate.Email {
			return nil
		}
	}
	if len(r.candidates) >= capacity {
		return domain.ErrShortlistFull
	}
	r.candidates = append(r.candidates, candidate)
	return nil
}

func (r *shortlistRepository) Remove(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.candidates {
		if c.Email == email {
			r.candidates = append(r.candidates[:i], r.candidates[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *shortlistRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.candidates = nil
	return nil
}

