package budget

import "context"

// Store is the load/save contract for the persisted document. Every request
// loads a fresh copy and mutating requests write the full document back.
// Implementations must replace the persisted form atomically; they are not
// required to serialize concurrent writers (last writer wins).
type Store interface {
	Load(ctx context.Context) (Document, error)
	Save(ctx context.Context, doc Document) error
}
