package interfaces

import "context"

//go:generate mockgen -source=sequence_issuer_interface.go -destination=mocks/mock_sequence_issuer.go -package=mock_interfaces

// ISequenceIssuer hands out unique, strictly increasing integers per counter.
//
// Implementations must perform create-or-increment as one atomic operation
// against the durable store. Store failures are reported as
// errs.ErrStoreUnavailable.
type ISequenceIssuer interface {
	NextID(ctx context.Context, counterName string) (int64, error)
}
