// Package lifecycle runs one conversion under signal handling and releases
// the resources it opened (sinks, manifest, script VMs) in reverse order.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Resource is anything holding a handle that must be released.
type Resource interface {
	Close() error
}

// FuncResource adapts a close function into the Resource interface.
type FuncResource func() error

// Close calls the underlying function.
func (f FuncResource) Close() error { return f() }

// Lifecycle owns the resources of one run. Resources are closed in the
// reverse of the order they were added.
type Lifecycle struct {
	logger    *zap.Logger
	resources []namedResource
	mu        sync.Mutex
}

type namedResource struct {
	name     string
	resource Resource
}

// New creates a Lifecycle.
//
// Precondition: logger must be non-nil.
func New(logger *zap.Logger) *Lifecycle {
	return &Lifecycle{logger: logger}
}

// Add registers a named resource to close when the run ends.
//
// Precondition: name must be non-empty; r must be non-nil.
func (l *Lifecycle) Add(name string, r Resource) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.resources = append(l.resources, namedResource{name: name, resource: r})
}

// Run calls fn with a context that is cancelled on SIGINT or SIGTERM, or when
// ctx is cancelled. Once fn returns, every resource is closed, even after a
// failure.
//
// Postcondition: All resources are closed when this method returns. The
// returned error joins fn's error with every close error.
func (l *Lifecycle) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			l.logger.Info("received signal, cancelling run",
				zap.String("signal", sig.String()),
			)
			cancel()
		case <-ctx.Done():
		}
	}()

	runErr := fn(ctx)
	if runErr != nil && ctx.Err() != nil {
		runErr = fmt.Errorf("run interrupted: %w", runErr)
	}
	cancel()

	closeErr := l.shutdown()
	l.logger.Debug("lifecycle complete",
		zap.Duration("elapsed", time.Since(start)),
	)
	return errors.Join(runErr, closeErr)
}

func (l *Lifecycle) shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	var errs []error
	for i := len(l.resources) - 1; i >= 0; i-- {
		nr := l.resources[i]
		if err := nr.resource.Close(); err != nil {
			l.logger.Error("closing resource",
				zap.String("resource", nr.name),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("closing %s: %w", nr.name, err))
			continue
		}
		l.logger.Debug("resource closed", zap.String("resource", nr.name))
	}
	l.resources = nil
	return errors.Join(errs...)
}
