package port

import "context"

type CacheRepository interface {
	// ClaimCounted marks an EPC as counted by holder, returns false if
	// another holder already claimed it
	ClaimCounted(ctx context.Context, epc, holder string) (bool, error)

	// CountedBy returns the holder that counted an EPC, "" if unclaimed
	CountedBy(ctx context.Context, epc string) (string, error)

	// ReleaseCounted drops the claim on an EPC (task reset, tooling)
	ReleaseCounted(ctx context.Context, epc string) error
}
