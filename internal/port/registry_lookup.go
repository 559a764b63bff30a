package port

import (
	"context"

	"github.com/rl1809/epc-inventory/internal/core/domain"
)

// RegistryLookup answers what the registry of record knows about one
// scanned EPC in the context of a counting task. Implementations do
// not retry; a failed lookup is the caller's problem to surface.
type RegistryLookup interface {
	Lookup(ctx context.Context, epc, taskID string) (domain.LookupResult, error)
}
