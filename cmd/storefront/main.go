// Command storefront serves the OceanKicks shop API: product catalog, a
// single-session cart with durable snapshots, order submission, and product
// imagery under /assets/.
package main

import (
	"context"
	"errors"
	"expvar"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"oceankicks/internal/adapters/storefront"
	"oceankicks/internal/blob"
	"oceankicks/internal/catalog"
	"oceankicks/internal/core"
)

type stdLogger struct {
	l     *log.Logger
	debug bool
}

func (s stdLogger) Debug(msg string, args ...any) {
	if s.debug {
		s.print("DEBUG", msg, args)
	}
}
func (s stdLogger) Info(msg string, args ...any)  { s.print("INFO", msg, args) }
func (s stdLogger) Warn(msg string, args ...any)  { s.print("WARN", msg, args) }
func (s stdLogger) Error(msg string, args ...any) { s.print("ERROR", msg, args) }

func (s stdLogger) print(level, msg string, args []any) {
	if len(args) == 0 {
		s.l.Printf("%s %s", level, msg)
		return
	}
	s.l.Printf("%s %s %v", level, msg, args)
}

func main() {
	addr := flag.String("addr", envOr("OCEANKICKS_ADDR", ":8080"), "listen address")
	debug := flag.Bool("debug", false, "log cart transitions")
	flag.Parse()

	logger := stdLogger{l: log.New(os.Stderr, "storefront ", log.LstdFlags|log.LUTC), debug: *debug}
	if err := run(*addr, logger); err != nil {
		logger.Error("storefront exited", "error", err)
		os.Exit(1)
	}
}

func run(addr string, logger core.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := core.OpenCartStore(logger)
	if err != nil {
		return fmt.Errorf("open cart store: %w", err)
	}

	promRecorder, err := core.NewPrometheusMetricsRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	svc := core.NewService(store,
		core.WithLogger(logger),
		core.WithMetrics(promRecorder),
	)
	defer func() { _ = svc.Close() }()

	assets, err := blob.Open(ctx)
	if err != nil {
		return fmt.Errorf("open asset store: %w", err)
	}
	products := catalog.Open()
	if seeded, err := blob.SeedPlaceholders(ctx, assets, catalogImageKeys(ctx, products)); err != nil {
		logger.Warn("asset seeding incomplete", "error", err)
	} else if seeded > 0 {
		logger.Info("seeded placeholder assets", "count", seeded)
	}

	handler := storefront.NewHandler(products, svc.Cart(), assets, logger)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", handler)
	mux.Handle("/assets/", handler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/debug/vars", expvar.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

// catalogImageKeys collects the distinct image keys of the whole catalog so
// missing imagery can be seeded with placeholders at startup.
func catalogImageKeys(ctx context.Context, products catalog.Service) []string {
	summaries, err := products.ListProducts(ctx, core.ListFilters{})
	if err != nil {
		return nil
	}
	seen := map[string]bool{}
	var keys []string
	for _, s := range summaries {
		product, err := products.GetProduct(ctx, s.ID)
		if err != nil {
			continue
		}
		for _, key := range product.Images {
			if key != "" && !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
		}
	}
	return keys
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
