package main

import (
	"context"
	"time"

	httpadapter "isocity/internal/adapter/http"
	levelfile "isocity/internal/adapter/level/file"
	metricsinmem "isocity/internal/adapter/metrics/inmemory"
	gormrepo "isocity/internal/adapter/repo/gorm"
	"isocity/internal/adapter/repo/memory"
	"isocity/internal/app/buildmode"
	"isocity/internal/app/journal"
	"isocity/internal/app/ports"
	"isocity/internal/app/status"
	"isocity/internal/app/upkeep"
	"isocity/internal/config"
	"isocity/internal/domain/city"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}

	grid, err := levelfile.LoadGrid(cfg.Level, cfg.TilemapSize)
	if err != nil {
		hlog.Fatalf("load level: %v", err)
	}
	c := city.New(grid, cfg.City())

	store := memory.NewStore(c)
	txManager, journalRepo := mustBuildRepos(cfg, store)
	cities := memory.NewCityRepo(store)
	kpiRecorder := metricsinmem.NewRecorder()

	upkeepUC := upkeep.UseCase{
		TxManager: txManager,
		Cities:    cities,
		Journal:   journalRepo,
		Metrics:   kpiRecorder,
		Now:       time.Now,
	}
	h := httpadapter.Handler{
		BuildUC: buildmode.UseCase{
			TxManager: txManager,
			Cities:    cities,
			Journal:   journalRepo,
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		UpkeepUC:    upkeepUC,
		StatusUC:    status.UseCase{TxManager: txManager, Cities: cities},
		JournalUC:   journal.UseCase{Journal: journalRepo},
		KPI:         kpiRecorder,
		Limiter:     httpadapter.NewClientLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst),
		AllowOrigin: cfg.CORSOrigin,
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go runUpkeep(ctx, cfg.Tick(), upkeepUC.Advance)

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s.Engine)

	hlog.Infof("isocity listening on %s (%dx%d map, gold=%d)", cfg.Addr, grid.Width(), grid.Height(), c.Ledger.Balance())
	s.Spin()
}

// mustBuildRepos keeps the journal in memory unless a DSN is configured, in
// which case journal rows are written in a postgres transaction opened under
// the city lock.
func mustBuildRepos(cfg config.Config, store *memory.Store) (ports.TxManager, ports.JournalRepository) {
	tx := memory.NewTxManager(store)
	if cfg.DBDSN == "" {
		hlog.Infof("journal backend: memory")
		return tx, memory.NewJournalRepo(store)
	}
	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		hlog.Fatalf("open postgres: %v", err)
	}
	applied, err := gormrepo.ApplyMigrations(context.Background(), db, gormrepo.Migrations, "migrations")
	if err != nil {
		hlog.Fatalf("apply migrations: %v", err)
	}
	hlog.Infof("journal backend: postgres (migrations applied: %v)", applied)
	return tx.WithInner(gormrepo.NewTxManager(db)), gormrepo.NewJournalRepo(db)
}

type advanceFunc func(ctx context.Context, dt time.Duration) (upkeep.Result, error)

// runUpkeep feeds measured wall-clock deltas into the upkeep timer until ctx
// is done.
func runUpkeep(ctx context.Context, tick time.Duration, advance advanceFunc) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if _, err := advance(ctx, dt); err != nil {
				hlog.CtxWarnf(ctx, "upkeep tick failed: %v", err)
			}
		}
	}
}
