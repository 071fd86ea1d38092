package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/pkg/logger"
)

// candidateRepository serves the candidate pool from a bundled JSON file.
// The file is read fresh on every request: the pool is small, read-only,
// and must never be cached across requests.
type candidateRepository struct {
	path string
}

func NewCandidateRepository(path string) domain.CandidateRepository {
	return &candidateRepository{path: path}
}

func (r *candidateRepository) ListAll(ctx context.Context) ([]domain.CandidateRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read candidate pool %s: %w", r.path, err)
	}

	var rawRecords []json.RawMessage
	if err := json.Unmarshal(data, &rawRecords); err != nil {
		return nil, fmt.Errorf("parse candidate pool %s: %w", r.path, err)
	}

	// Decode record by record so one malformed applicant cannot sink the
	// pool. encoding/json keeps filling compatible fields past a type
	// mismatch, so a partially bad record survives with defaults.
	records := make([]domain.CandidateRecord, 0, len(rawRecords))
	for i, raw := range rawRecords {
		var rec domain.CandidateRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			logger.Log.Warn("malformed candidate record kept with defaults",
				"index", i, "email", rec.Email, "error", err)
		}
		records = append(records, rec)
	}

	return records, nil
}
