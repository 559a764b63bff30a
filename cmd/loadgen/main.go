package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rl1809/epc-inventory/internal/adapter/storage"
	"github.com/rl1809/epc-inventory/internal/core/service"
)

const (
	mysqlDSN    = "root:root@tcp(localhost:3306)/epcinventory?parseTime=true"
	redisAddr   = "localhost:6379"
	tagCount    = 40
	unknownTags = 5
	scanners    = 8
	queueSize   = 100
)

// Seeds one asset with tagCount EPCs, opens a counting session and
// fires the same mixed batch from several goroutines at once. Every
// duplicate must be dropped, every unknown tag must land in the error
// bucket, and the confirmed count must equal tagCount.
func main() {
	ctx := context.Background()

	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		log.Fatalf("failed to open mysql: %v", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	mysqlAdapter := storage.NewMySQLAdapter(db)
	redisAdapter := storage.NewRedisAdapter(rdb)

	// Seed registry data
	assetService := service.NewAssetService(mysqlAdapter, zap.NewNop())

	run := time.Now().UnixNano()
	epcs := make([]string, 0, tagCount)
	for i := 0; i < tagCount; i++ {
		epcs = append(epcs, fmt.Sprintf("urn:epc:loadgen:%d:%04d", run, i))
	}

	asset, err := assetService.RegisterAsset(ctx, "pallet", fmt.Sprintf("loadgen-asset-%d", run), epcs)
	if err != nil {
		log.Fatalf("failed to register asset: %v", err)
	}

	task, err := assetService.CreateTask(ctx, fmt.Sprintf("loadgen-task-%d", run))
	if err != nil {
		log.Fatalf("failed to create task: %v", err)
	}

	// Clear any stale claims from previous runs
	for _, epc := range epcs {
		rdb.Del(ctx, "counted:"+epc)
	}

	registry := service.NewStoreRegistry(mysqlAdapter, redisAdapter, zap.NewNop())
	sessionService := service.NewSessionService(registry, mysqlAdapter, queueSize, zap.NewNop())
	defer sessionService.Close()

	// Drain the confirm queue in background
	go func() {
		for range sessionService.GetConfirmQueue() {
		}
	}()

	sess, err := sessionService.Open(ctx, task.ID, asset.ID)
	if err != nil {
		log.Fatalf("failed to open session: %v", err)
	}

	// Build one batch: every registered tag plus a few unknowns
	batch := append([]string{}, epcs...)
	for i := 0; i < unknownTags; i++ {
		batch = append(batch, fmt.Sprintf("urn:epc:loadgen:%d:ghost-%d", run, i))
	}

	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := sessionService.Append(ctx, sess.ID, batch); err != nil {
				log.Printf("append failed: %v", err)
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	partition, err := sessionService.Partition(sess.ID)
	if err != nil {
		log.Fatalf("failed to read partition: %v", err)
	}

	count, err := sessionService.Confirm(sess.ID)
	if err != nil {
		log.Fatalf("failed to confirm: %v", err)
	}

	fmt.Println("=========== LOADGEN RESULTS ===========")
	fmt.Printf("Registered Tags:  %d\n", tagCount)
	fmt.Printf("Unknown Tags:     %d\n", unknownTags)
	fmt.Printf("Scanners:         %d\n", scanners)
	fmt.Printf("Valid Bucket:     %d\n", len(partition.Valid))
	fmt.Printf("Surplus Bucket:   %d\n", len(partition.Surplus))
	fmt.Printf("Error Bucket:     %d\n", len(partition.Error))
	fmt.Printf("Confirmed Count:  %d\n", count.ConfirmedCount)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("=======================================")

	if len(partition.Valid) == tagCount && len(partition.Error) == unknownTags && len(partition.Surplus) == 0 {
		fmt.Println("PASS: buckets match, duplicates dropped across scanners")
	} else {
		fmt.Printf("FAIL: expected %d valid / %d error / 0 surplus\n", tagCount, unknownTags)
	}

	if count.ConfirmedCount == tagCount {
		fmt.Println("PASS: confirmed count equals registered tags")
	} else {
		fmt.Printf("FAIL: expected confirmed count %d, got %d\n", tagCount, count.ConfirmedCount)
	}
}
