package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/port"
)

var (
	ErrAssetNotFound = errors.New("no asset registered for epc")
	ErrNoEPCs        = errors.New("asset needs at least one epc")
	ErrEmptyName     = errors.New("name must not be empty")
)

// AssetService covers the declaration and lookup screens: registering
// a new asset with its tag list, resolving a scanned identifier, and
// opening inventory-count tasks.
type AssetService struct {
	db     port.DatabaseRepository
	logger *zap.Logger
}

func NewAssetService(db port.DatabaseRepository, logger *zap.Logger) *AssetService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetService{db: db, logger: logger}
}

func (s *AssetService) RegisterAsset(ctx context.Context, assetType, name string, epcs []string) (domain.Asset, error) {
	if name == "" {
		return domain.Asset{}, ErrEmptyName
	}
	if len(epcs) == 0 {
		return domain.Asset{}, ErrNoEPCs
	}
	for _, epc := range epcs {
		if epc == "" {
			return domain.Asset{}, ErrEmptyEPC
		}
	}

	asset := domain.Asset{
		ID:        uuid.NewString(),
		AssetType: assetType,
		Name:      name,
		CreatedAt: time.Now(),
	}

	if err := s.db.CreateAsset(ctx, asset, epcs); err != nil {
		return domain.Asset{}, fmt.Errorf("create asset: %w", err)
	}

	s.logger.Info("asset registered",
		zap.String("asset_id", asset.ID),
		zap.String("asset_type", asset.AssetType),
		zap.Int("epcs", len(epcs)))

	return asset, nil
}

// LookupAsset resolves a scanned EPC or barcode to its asset.
func (s *AssetService) LookupAsset(ctx context.Context, epc string) (*domain.Asset, error) {
	if epc == "" {
		return nil, ErrEmptyEPC
	}

	asset, err := s.db.GetAssetByEPC(ctx, epc)
	if err != nil {
		return nil, fmt.Errorf("lookup asset: %w", err)
	}
	if asset == nil {
		return nil, ErrAssetNotFound
	}
	return asset, nil
}

func (s *AssetService) CreateTask(ctx context.Context, name string) (domain.InventoryTask, error) {
	if name == "" {
		return domain.InventoryTask{}, ErrEmptyName
	}

	task := domain.InventoryTask{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    domain.TaskStatusOpen,
		CreatedAt: time.Now(),
	}

	if err := s.db.CreateTask(ctx, task); err != nil {
		return domain.InventoryTask{}, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info("task created", zap.String("task_id", task.ID), zap.String("name", task.Name))
	return task, nil
}

// CloseTask marks a finished count task closed. New sessions refuse
// closed tasks; sessions already open keep running. Closing twice is a
// no-op.
func (s *AssetService) CloseTask(ctx context.Context, taskID string) (domain.InventoryTask, error) {
	task, err := s.db.GetTask(ctx, taskID)
	if err != nil {
		return domain.InventoryTask{}, fmt.Errorf("load task: %w", err)
	}
	if task == nil {
		return domain.InventoryTask{}, ErrTaskNotFound
	}
	if task.Status == domain.TaskStatusClosed {
		return *task, nil
	}

	if err := s.db.CloseTask(ctx, taskID); err != nil {
		return domain.InventoryTask{}, fmt.Errorf("close task: %w", err)
	}
	task.Status = domain.TaskStatusClosed

	s.logger.Info("task closed", zap.String("task_id", taskID))
	return *task, nil
}
