package postgres

import (
	"context"

	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/usecase/interfaces"
)

const nextIDQuery = `
	INSERT INTO counters (name, seq)
	VALUES ($1, 1)
	ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
	RETURNING seq
`

// SequenceIssuer issues ids with a single upsert per call, so concurrent
// callers serialize on the counter row.
type SequenceIssuer struct {
	db DB
}

var _ interfaces.ISequenceIssuer = (*SequenceIssuer)(nil)

func NewSequenceIssuer(db DB) *SequenceIssuer {
	return &SequenceIssuer{db: db}
}

func (s *SequenceIssuer) NextID(ctx context.Context, counterName string) (int64, error) {
	var seq int64
	if err := s.db.QueryRow(ctx, nextIDQuery, counterName).Scan(&seq); err != nil {
		return 0, errs.StoreUnavailable(err, "postgres next id")
	}
	return seq, nil
}
