package tests

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/adapter/storage"
	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/core/service"
	"github.com/rl1809/epc-inventory/internal/port"
)

type testEnv struct {
	redis   *redis.Client
	mysql   *sql.DB
	cache   *storage.RedisAdapter
	db      *storage.MySQLAdapter
	cleanup func()
}

func setupTestEnv(t *testing.T) *testEnv {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		mysqlDSN = "root:root@tcp(localhost:3306)/epcinventory?parseTime=true"
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return &testEnv{
		redis: rdb,
		mysql: db,
		cache: storage.NewRedisAdapter(rdb),
		db:    storage.NewMySQLAdapter(db),
		cleanup: func() {
			rdb.Close()
			db.Close()
		},
	}
}

// workerLoop matches the server's confirmation worker: persist the
// count, then claim the counted EPCs.
func workerLoop(queue <-chan service.Confirmation, db port.DatabaseRepository, cache port.CacheRepository) {
	for conf := range queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.SaveTaskCount(ctx, conf.Count); err == nil {
			holder := service.CountHolder(conf.Count.TaskID, conf.Count.AssetID)
			for _, epc := range conf.EPCs {
				cache.ClaimCounted(ctx, epc, holder)
			}
		}
		cancel()
	}
}

func seedAssetAndTask(t *testing.T, env *testEnv, tagCount int) (domain.Asset, domain.InventoryTask, []string) {
	t.Helper()
	ctx := context.Background()

	assets := service.NewAssetService(env.db, zap.NewNop())

	run := time.Now().UnixNano()
	epcs := make([]string, 0, tagCount)
	for i := 0; i < tagCount; i++ {
		epcs = append(epcs, fmt.Sprintf("urn:epc:itest:%d:%03d", run, i))
	}

	asset, err := assets.RegisterAsset(ctx, "pallet", fmt.Sprintf("itest-asset-%d", run), epcs)
	if err != nil {
		t.Fatalf("failed to register asset: %v", err)
	}

	task, err := assets.CreateTask(ctx, fmt.Sprintf("itest-task-%d", run))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	t.Cleanup(func() {
		env.mysql.ExecContext(ctx, `DELETE FROM task_counts WHERE task_id = ?`, task.ID)
		env.mysql.ExecContext(ctx, `DELETE FROM epcs WHERE asset_id = ?`, asset.ID)
		env.mysql.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, asset.ID)
		env.mysql.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, task.ID)
		for _, epc := range epcs {
			env.redis.Del(ctx, "counted:"+epc)
		}
	})

	return asset, task, epcs
}

func TestIntegration_FullCountingFlow(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	asset, task, epcs := seedAssetAndTask(t, env, 5)

	registry := service.NewStoreRegistry(env.db, env.cache, zap.NewNop())
	sessions := service.NewSessionService(registry, env.db, 100, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workerLoop(sessions.GetConfirmQueue(), env.db, env.cache)
	}()

	sess, err := sessions.Open(ctx, task.ID, asset.ID)
	if err != nil {
		t.Fatalf("failed to open session: %v", err)
	}
	if sess.ExpectedCount != len(epcs) {
		t.Errorf("expected count %d, got %d", len(epcs), sess.ExpectedCount)
	}

	// Scan every registered tag plus one ghost
	batch := append(append([]string{}, epcs...), "urn:epc:itest:ghost")
	added, err := sessions.Append(ctx, sess.ID, batch)
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if len(added) != len(epcs)+1 {
		t.Fatalf("expected %d records, got %d", len(epcs)+1, len(added))
	}

	partition, _ := sessions.Partition(sess.ID)
	if len(partition.Valid) != len(epcs) {
		t.Errorf("expected %d valid, got %d", len(epcs), len(partition.Valid))
	}
	if len(partition.Error) != 1 {
		t.Errorf("expected 1 error record, got %d", len(partition.Error))
	}

	count, err := sessions.Confirm(sess.ID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if count.ConfirmedCount != len(epcs) {
		t.Errorf("expected confirmed count %d, got %d", len(epcs), count.ConfirmedCount)
	}

	sessions.Close()
	wg.Wait()

	// Verify the count row landed in MySQL
	var confirmed int
	env.mysql.QueryRowContext(ctx, `
		SELECT confirmed_count FROM task_counts
		WHERE task_id = ? AND asset_id = ?`, task.ID, asset.ID,
	).Scan(&confirmed)
	if confirmed != len(epcs) {
		t.Errorf("expected confirmed_count %d in MySQL, got %d", len(epcs), confirmed)
	}

	// Verify the claims landed in Redis
	holder, _ := env.cache.CountedBy(ctx, epcs[0])
	if holder != service.CountHolder(task.ID, asset.ID) {
		t.Errorf("expected claim by this session, got %q", holder)
	}
}

func TestIntegration_ConfirmedTagsBecomeSurplus(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	ctx := context.Background()
	asset, task, epcs := seedAssetAndTask(t, env, 3)

	registry := service.NewStoreRegistry(env.db, env.cache, zap.NewNop())
	sessions := service.NewSessionService(registry, env.db, 100, zap.NewNop())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		workerLoop(sessions.GetConfirmQueue(), env.db, env.cache)
	}()

	// First session counts and confirms everything
	first, err := sessions.Open(ctx, task.ID, asset.ID)
	if err != nil {
		t.Fatalf("failed to open first session: %v", err)
	}
	if _, err := sessions.Append(ctx, first.ID, epcs); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if _, err := sessions.Confirm(first.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	sessions.Close()
	wg.Wait()

	// A second session over the same asset now sees every tag as surplus
	sessions2 := service.NewSessionService(registry, env.db, 100, zap.NewNop())
	defer sessions2.Close()

	second, err := sessions2.Open(ctx, task.ID, asset.ID)
	if err != nil {
		t.Fatalf("failed to open second session: %v", err)
	}

	added, err := sessions2.Append(ctx, second.ID, epcs[:1])
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if added[0].Status != domain.ScanStatusSurplus {
		t.Errorf("expected invalid_surplus for already-counted tag, got %s", added[0].Status)
	}
}
