package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/repository/memory"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/operator"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

type stores struct {
	catalog      domain.Catalog
	appointments domain.Repository
	operators    operator.Store
	auditStore   audit.Store
	auditReader  audit.Reader
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog, err := logger.New(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx := context.Background()

	slots, err := domain.NewSlotSet(cfg.Slots)
	if err != nil {
		return err
	}

	st, err := openStores(cfg, zlog)
	if err != nil {
		return err
	}

	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if _, err := operator.EnsureAdmin(ctx, st.operators, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
		zlog.Info("admin operator ready", zap.String("email", operator.NormalizeEmail(cfg.AdminEmail)))
	}

	publisher, err := newPublisher(ctx, cfg, zlog)
	if err != nil {
		return err
	}

	auditDispatcher := audit.NewDispatcher(st.auditStore, zlog)
	handoff := notify.NewHandoff(st.catalog, publisher, zlog)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:       cfg,
		Log:          zlog,
		Catalog:      st.catalog,
		Appointments: st.appointments,
		Operators:    st.operators,
		AuditReader:  st.auditReader,
		Audit:        auditDispatcher,
		Handoff:      handoff,
		Slots:        slots,
		Clock:        timezone.ClockIn(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("store", cfg.StoreDriver),
			zap.String("notify", cfg.NotifyDriver),
			zap.String("timezone", cfg.Timezone),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		zlog.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("http shutdown failed", zap.Error(err))
	}

	if err := handoff.Close(); err != nil {
		zlog.Error("notifier close failed", zap.Error(err))
	}
	auditDispatcher.Close()

	return nil
}

func openStores(cfg *config.Config, zlog *zap.Logger) (*stores, error) {
	if cfg.StoreDriver == config.StoreMemory {
		mem := memory.NewStore()
		if cfg.CatalogFile != "" {
			if err := mem.LoadCatalog(cfg.CatalogFile); err != nil {
				return nil, err
			}
		}
		zlog.Warn("using in-memory store, data is lost on restart")

		return &stores{
			catalog:      mem,
			appointments: mem,
			operators:    mem,
			auditStore:   mem,
			auditReader:  mem,
		}, nil
	}

	db, err := dbpkg.NewDB(cfg, zlog)
	if err != nil {
		return nil, err
	}

	auditStore := audit.NewGormStore(db)
	return &stores{
		catalog:      infraRepo.NewCatalogGormRepository(db),
		appointments: infraRepo.NewAppointmentGormRepository(db),
		operators:    infraRepo.NewOperatorGormRepository(db),
		auditStore:   auditStore,
		auditReader:  auditStore,
	}, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (notify.Publisher, error) {
	switch cfg.NotifyDriver {
	case config.NotifyRedis:
		p := notify.NewRedisPublisher(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RedisNotifyKey)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := p.Ping(pingCtx); err != nil {
			zlog.Warn("redis not reachable yet, confirmations may be dropped", zap.Error(err))
		}
		return p, nil

	case config.NotifyKafka:
		return notify.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic), nil

	default:
		return notify.NewLogPublisher(zlog), nil
	}
}
