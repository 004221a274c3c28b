package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/oryweaver/auction/internal/app"
	"github.com/oryweaver/auction/internal/config"
	"github.com/oryweaver/auction/internal/service"
	"github.com/oryweaver/auction/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Runtime is an engine opened for the duration of one command.
type Runtime struct {
	Engine *app.Engine
	Clock  ports.Clock

	closers []func() error
}

// Close releases resources in reverse order of acquisition.
func (r *Runtime) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		errs = append(errs, r.closers[i]())
	}
	return errors.Join(errs...)
}

// Opener builds the runtime a command works against.
type Opener func(ctx context.Context, cfg *config.Config) (*Runtime, error)

// DefaultOpener connects to the configured store and starts a notification
// dispatcher, so operator actions notify users like the server does.
func DefaultOpener(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"AuctionCtl",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	rt := &Runtime{Clock: service.SystemClock{}}

	var st app.Stores
	if cfg.Store.InMemory() {
		st = app.MemoryStores()
	} else {
		db, err := app.OpenDB(cfg.Postgres)
		if err != nil {
			return nil, err
		}
		rt.closers = append(rt.closers, db.Master.Close)
		st = app.PostgresStores(db)
	}

	n, err := app.NewNotifier(ctx, cfg, st, log)
	if err != nil {
		_ = rt.Close()
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	go func() {
		defer close(done)
		n.Run(runCtx)
	}()
	rt.closers = append(rt.closers, func() error {
		// очередь дочитывается после отмены
		cancel()
		<-done
		return n.Close()
	})

	rt.Engine = app.NewEngine(st, n, rt.Clock, cfg.Engine, log)
	return rt, nil
}

// withRuntime loads config, opens a runtime, runs fn and closes the runtime.
func withRuntime(ctx context.Context, opts *RootOptions, fn func(rt *Runtime) error) error {
	rt, err := opts.Open(ctx, opts.Load())
	if err != nil {
		return fmt.Errorf("open engine: %w", err)
	}

	err = fn(rt)
	if cerr := rt.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close engine: %w", cerr)
	}
	return err
}
