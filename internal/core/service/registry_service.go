package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/port"
)

// StoreRegistry answers lookups from the local registry of record: the
// database resolves the owning asset, the claim cache decides whether
// the tag was already counted by another session. It is the default
// RegistryLookup implementation; deployments that keep the registry
// elsewhere swap in the remote adapter instead.
type StoreRegistry struct {
	db     port.DatabaseRepository
	cache  port.CacheRepository
	logger *zap.Logger
}

func NewStoreRegistry(db port.DatabaseRepository, cache port.CacheRepository, logger *zap.Logger) *StoreRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreRegistry{db: db, cache: cache, logger: logger}
}

func (r *StoreRegistry) Lookup(ctx context.Context, epc, taskID string) (domain.LookupResult, error) {
	asset, err := r.db.GetAssetByEPC(ctx, epc)
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("resolve epc: %w", err)
	}
	if asset == nil {
		return domain.LookupResult{Status: domain.LookupStatusNotFound}, nil
	}

	holder, err := r.cache.CountedBy(ctx, epc)
	if err != nil {
		return domain.LookupResult{}, fmt.Errorf("check counted claim: %w", err)
	}
	if holder != "" {
		r.logger.Debug("epc already counted",
			zap.String("epc", epc),
			zap.String("holder", holder),
			zap.String("task_id", taskID))
		return domain.LookupResult{Status: domain.LookupStatusSurplus, Asset: asset}, nil
	}

	return domain.LookupResult{Status: domain.LookupStatusFound, Asset: asset}, nil
}

// CountHolder is the claim owner written when a session confirms.
func CountHolder(taskID, assetID string) string {
	return taskID + "/" + assetID
}
