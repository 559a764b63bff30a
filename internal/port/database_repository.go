package port

import (
	"context"
	"errors"

	"github.com/rl1809/epc-inventory/internal/core/domain"
)

// ErrDuplicateEPC is returned by CreateAsset when one of the tags is
// already registered to another asset.
var ErrDuplicateEPC = errors.New("epc already registered")

type DatabaseRepository interface {
	// CreateAsset persists an asset together with its registered EPC tags;
	// ErrDuplicateEPC if any tag is already taken
	CreateAsset(ctx context.Context, asset domain.Asset, epcs []string) error

	// GetAssetByEPC resolves the asset a tag is registered to, nil if unknown
	GetAssetByEPC(ctx context.Context, epc string) (*domain.Asset, error)

	// ListAssetEPCs returns every EPC registered to an asset
	ListAssetEPCs(ctx context.Context, assetID string) ([]string, error)

	// CreateTask persists a new inventory-count task
	CreateTask(ctx context.Context, task domain.InventoryTask) error

	// GetTask retrieves a task by ID, nil if unknown
	GetTask(ctx context.Context, taskID string) (*domain.InventoryTask, error)

	// CloseTask marks a task closed so no further sessions open against it
	CloseTask(ctx context.Context, taskID string) error

	// SaveTaskCount upserts the confirmed count for one (task, asset) pair
	SaveTaskCount(ctx context.Context, count domain.TaskCount) error
}
