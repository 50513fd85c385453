package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"minidb/internal/engine"
	"minidb/internal/storage/filestore"
	"minidb/internal/web"
)

func main() {
	var (
		dataDir = flag.String("data", "./data_web", "data directory path")
		addr    = flag.String("addr", ":8080", "listen address")
	)
	flag.Parse()

	store, err := filestore.New(*dataDir)
	if err != nil {
		log.Fatalf("open data directory: %v", err)
	}

	eng, err := engine.Open(store)
	if err != nil {
		log.Fatalf("open engine: %v", err)
	}

	app := web.New(eng)
	if err := app.Initialize(); err != nil {
		log.Fatalf("initialize tasks table: %v", err)
	}

	srv := &http.Server{
		Addr:    *addr,
		Handler: app.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("minidb-web listening on %s (data in %s)", *addr, *dataDir)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
}
