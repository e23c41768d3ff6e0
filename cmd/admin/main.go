package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/kdiallo/shop-admin-gateway/internal/audit"
	"github.com/kdiallo/shop-admin-gateway/internal/backend"
	"github.com/kdiallo/shop-admin-gateway/internal/config"
	"github.com/kdiallo/shop-admin-gateway/internal/dashboard"
	"github.com/kdiallo/shop-admin-gateway/internal/httpx"
	kafkax "github.com/kdiallo/shop-admin-gateway/internal/kafka"
	"github.com/kdiallo/shop-admin-gateway/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer for audit events
	prod := kafkax.NewProducer(cfg.KafkaBrokers, audit.TopicAdminAction, 1024)
	prod.Start(ctx)

	// Backend clients
	products := backend.NewProductsClient(cfg.ProductsBaseURL)
	users := backend.NewUsersClient(cfg.UsersBaseURL)
	orders := backend.NewOrdersClient(cfg.OrdersBaseURL)
	payments := backend.NewPaymentsClient(cfg.PaymentsBaseURL)

	// Read model
	store := dashboard.NewStore()
	notifier := dashboard.NewNotifier()
	ctrl := &dashboard.Controller{
		Products: products,
		Users:    users,
		Orders:   orders,
		Payments: payments,
		Store:    store,
		Notifier: notifier,
		Redis:    rdb,
	}

	// Handler
	router := httpx.NewRouter()
	ah := &httpx.AdminHandler{
		Store:       store,
		Controller:  ctrl,
		Notifier:    notifier,
		Intents:     &redisx.IntentStore{RDB: rdb},
		Audit:       &audit.Recorder{Producer: prod, Service: cfg.ServiceName},
		ProductsSvc: products,
		UsersSvc:    users,
		OrdersSvc:   orders,
		PaymentsSvc: payments,
	}
	ah.Register(router)

	// initial load + periodic refresh
	go func() {
		_ = ctrl.LoadAll(ctx)
		t := time.NewTicker(cfg.RefreshInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				_ = ctrl.LoadAll(ctx)
			}
		}
	}()

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // close inbox -> flush & close writer
	cancel()
	prod.WaitClosed()
}
