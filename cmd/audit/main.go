package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kdiallo/shop-admin-gateway/internal/audit"
	"github.com/kdiallo/shop-admin-gateway/internal/config"
	"github.com/kdiallo/shop-admin-gateway/internal/httpx"
	kafkax "github.com/kdiallo/shop-admin-gateway/internal/kafka"
	"github.com/kdiallo/shop-admin-gateway/internal/postgres"
	"github.com/kdiallo/shop-admin-gateway/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()

	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	repo := &audit.Repo{DB: db}
	if err := repo.EnsureSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}

	svc := &audit.Service{
		Repo:        repo,
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-audit",
	}

	group := getenv("AUDIT_GROUP", "admin-audit")
	workers := mustAtoi(os.Getenv("AUDIT_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, audit.TopicAdminAction, workers)

	go func() {
		log.Printf("audit consumer started: group=%s topic=%s workers=%d", group, audit.TopicAdminAction, workers)
		if err := cons.Start(ctx, svc.HandleAdminAction); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	router := httpx.NewRouter()
	(&httpx.AuditHandler{Log: repo}).Register(router)
	srv := &http.Server{Addr: cfg.AuditHTTPAddr, Handler: router}
	go func() {
		log.Printf("audit readback listening on %s", cfg.AuditHTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("http server: %v", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down...")
	shutCtx, shutCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutCancel()
	_ = srv.Shutdown(shutCtx)
	cancel()
	time.Sleep(500 * time.Millisecond)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}
