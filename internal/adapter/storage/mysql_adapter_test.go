package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"

	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/port"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/epcinventory?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

func testEPCs(prefix string, n int) []string {
	epcs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		epcs = append(epcs, fmt.Sprintf("%s-%s-%02d", prefix, uuid.NewString()[:8], i))
	}
	return epcs
}

func TestCreateAsset_AndLookup(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	asset := domain.Asset{
		ID:        uuid.NewString(),
		AssetType: "forklift",
		Name:      "test-forklift",
		CreatedAt: time.Now(),
	}
	epcs := testEPCs("urn:epc:test", 3)

	if err := adapter.CreateAsset(ctx, asset, epcs); err != nil {
		t.Fatalf("CreateAsset failed: %v", err)
	}
	defer func() {
		db.ExecContext(ctx, `DELETE FROM epcs WHERE asset_id = ?`, asset.ID)
		db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, asset.ID)
	}()

	got, err := adapter.GetAssetByEPC(ctx, epcs[0])
	if err != nil {
		t.Fatalf("GetAssetByEPC failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected asset, got nil")
	}
	if got.ID != asset.ID || got.Name != asset.Name || got.AssetType != asset.AssetType {
		t.Errorf("asset mismatch: got %+v", got)
	}

	list, err := adapter.ListAssetEPCs(ctx, asset.ID)
	if err != nil {
		t.Fatalf("ListAssetEPCs failed: %v", err)
	}
	if len(list) != len(epcs) {
		t.Errorf("expected %d epcs, got %d", len(epcs), len(list))
	}
}

func TestCreateAsset_DuplicateEPCRollsBack(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	first := domain.Asset{ID: uuid.NewString(), AssetType: "pallet", Name: "first", CreatedAt: time.Now()}
	shared := testEPCs("urn:epc:dup", 1)

	if err := adapter.CreateAsset(ctx, first, shared); err != nil {
		t.Fatalf("setup failed: %v", err)
	}
	defer func() {
		db.ExecContext(ctx, `DELETE FROM epcs WHERE asset_id = ?`, first.ID)
		db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, first.ID)
	}()

	second := domain.Asset{ID: uuid.NewString(), AssetType: "pallet", Name: "second", CreatedAt: time.Now()}
	err := adapter.CreateAsset(ctx, second, shared)
	if !errors.Is(err, port.ErrDuplicateEPC) {
		t.Fatalf("expected ErrDuplicateEPC, got: %v", err)
	}

	// The whole transaction must roll back, including the asset row
	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets WHERE id = ?`, second.ID).Scan(&count)
	if count != 0 {
		t.Error("asset row survived a failed registration")
		db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, second.ID)
	}
}

func TestGetAssetByEPC_NotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	adapter := NewMySQLAdapter(db)

	asset, err := adapter.GetAssetByEPC(context.Background(), "urn:epc:nonexistent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset != nil {
		t.Error("expected nil for unknown epc")
	}
}

func TestCreateTask_AndGet(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	task := domain.InventoryTask{
		ID:        uuid.NewString(),
		Name:      "test-count",
		Status:    domain.TaskStatusOpen,
		CreatedAt: time.Now(),
	}

	if err := adapter.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, task.ID)

	got, err := adapter.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected task, got nil")
	}
	if got.Name != task.Name || got.Status != domain.TaskStatusOpen {
		t.Errorf("task mismatch: got %+v", got)
	}

	missing, err := adapter.GetTask(ctx, "nonexistent-task")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown task")
	}
}

func TestCloseTask(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	task := domain.InventoryTask{
		ID:        uuid.NewString(),
		Name:      "test-close",
		Status:    domain.TaskStatusOpen,
		CreatedAt: time.Now(),
	}
	if err := adapter.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	defer db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, task.ID)

	if err := adapter.CloseTask(ctx, task.ID); err != nil {
		t.Fatalf("CloseTask failed: %v", err)
	}

	got, err := adapter.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Status != domain.TaskStatusClosed {
		t.Errorf("expected status closed, got %s", got.Status)
	}
}

func TestSaveTaskCount_Upserts(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	taskID := uuid.NewString()
	assetID := uuid.NewString()
	defer db.ExecContext(ctx, `DELETE FROM task_counts WHERE task_id = ?`, taskID)

	count := domain.TaskCount{
		TaskID:         taskID,
		AssetID:        assetID,
		ConfirmedCount: 7,
		ExpectedCount:  10,
		CountedAt:      time.Now(),
	}
	if err := adapter.SaveTaskCount(ctx, count); err != nil {
		t.Fatalf("SaveTaskCount failed: %v", err)
	}

	// A re-count of the same pair replaces the previous row
	count.ConfirmedCount = 9
	if err := adapter.SaveTaskCount(ctx, count); err != nil {
		t.Fatalf("second SaveTaskCount failed: %v", err)
	}

	var rows, confirmed int
	db.QueryRowContext(ctx, `
		SELECT COUNT(*), MAX(confirmed_count) FROM task_counts
		WHERE task_id = ? AND asset_id = ?`, taskID, assetID,
	).Scan(&rows, &confirmed)

	if rows != 1 {
		t.Errorf("expected 1 row after upsert, got %d", rows)
	}
	if confirmed != 9 {
		t.Errorf("expected confirmed_count 9, got %d", confirmed)
	}
}
