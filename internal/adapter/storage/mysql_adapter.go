package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/port"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) CreateAsset(ctx context.Context, asset domain.Asset, epcs []string) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO assets (id, asset_type, name, created_at)
		VALUES (?, ?, ?, ?)`,
		asset.ID, asset.AssetType, asset.Name, asset.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert asset: %w", err)
	}

	for _, epc := range epcs {
		result, err := tx.ExecContext(ctx, `
			INSERT IGNORE INTO epcs (epc, asset_id, created_at)
			VALUES (?, ?, ?)`,
			epc, asset.ID, asset.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert epc %s: %w", epc, err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return fmt.Errorf("%w: %s", port.ErrDuplicateEPC, epc)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetAssetByEPC(ctx context.Context, epc string) (*domain.Asset, error) {
	var asset domain.Asset
	err := m.db.QueryRowContext(ctx, `
		SELECT a.id, a.asset_type, a.name, a.created_at
		FROM epcs e
		JOIN assets a ON a.id = e.asset_id
		WHERE e.epc = ?`, epc,
	).Scan(&asset.ID, &asset.AssetType, &asset.Name, &asset.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query asset by epc: %w", err)
	}

	return &asset, nil
}

func (m *MySQLAdapter) ListAssetEPCs(ctx context.Context, assetID string) ([]string, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT epc FROM epcs WHERE asset_id = ? ORDER BY epc`, assetID)
	if err != nil {
		return nil, fmt.Errorf("query asset epcs: %w", err)
	}
	defer rows.Close()

	var epcs []string
	for rows.Next() {
		var epc string
		if err := rows.Scan(&epc); err != nil {
			return nil, fmt.Errorf("scan epc row: %w", err)
		}
		epcs = append(epcs, epc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate epc rows: %w", err)
	}

	return epcs, nil
}

func (m *MySQLAdapter) CreateTask(ctx context.Context, task domain.InventoryTask) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO tasks (id, name, status, created_at)
		VALUES (?, ?, ?, ?)`,
		task.ID, task.Name, task.Status, task.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) GetTask(ctx context.Context, taskID string) (*domain.InventoryTask, error) {
	var task domain.InventoryTask
	err := m.db.QueryRowContext(ctx, `
		SELECT id, name, status, created_at
		FROM tasks WHERE id = ?`, taskID,
	).Scan(&task.ID, &task.Name, &task.Status, &task.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query task: %w", err)
	}

	return &task, nil
}

func (m *MySQLAdapter) CloseTask(ctx context.Context, taskID string) error {
	_, err := m.db.ExecContext(ctx, `
		UPDATE tasks SET status = ? WHERE id = ?`,
		domain.TaskStatusClosed, taskID,
	)
	if err != nil {
		return fmt.Errorf("close task: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) SaveTaskCount(ctx context.Context, count domain.TaskCount) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO task_counts (task_id, asset_id, confirmed_count, expected_count, counted_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			confirmed_count = VALUES(confirmed_count),
			expected_count = VALUES(expected_count),
			counted_at = VALUES(counted_at)`,
		count.TaskID, count.AssetID, count.ConfirmedCount, count.ExpectedCount, count.CountedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert task count: %w", err)
	}
	return nil
}
