// Package usagelog buffers classification usage records and flushes them to
// a sink in batches. Emission is best-effort by contract: a flush failure is
// logged and dropped, and must never surface as a request failure.
package usagelog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nsellier/brigade/internal/service"
)

// Config controls the batching behavior.
type Config struct {
	// MaxBatch flushes the buffer once this many records are pending.
	MaxBatch int
	// FlushInterval flushes whatever is pending on this cadence.
	FlushInterval time.Duration
	// FlushTimeout bounds each sink write.
	FlushTimeout time.Duration
}

// DefaultConfig returns the default batching configuration.
func DefaultConfig() Config {
	return Config{
		MaxBatch:      20,
		FlushInterval: 5 * time.Second,
		FlushTimeout:  3 * time.Second,
	}
}

// Buffer is an owned, explicitly constructed batch buffer. Create one per
// process and pass it by reference; there is no package-level state.
type Buffer struct {
	sink   service.UsageSink
	config Config

	mu      sync.Mutex
	pending []service.UsageRecord

	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewBuffer creates a buffer and starts its background flush loop.
func NewBuffer(sink service.UsageSink, config Config) *Buffer {
	if config.MaxBatch <= 0 {
		config.MaxBatch = DefaultConfig().MaxBatch
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = DefaultConfig().FlushInterval
	}
	if config.FlushTimeout <= 0 {
		config.FlushTimeout = DefaultConfig().FlushTimeout
	}

	b := &Buffer{
		sink:   sink,
		config: config,
		done:   make(chan struct{}),
	}

	b.wg.Add(1)
	go b.flushLoop()

	return b
}

// Append queues one record. It never blocks on the sink: when the batch
// threshold is reached the flush happens on a background goroutine.
func (b *Buffer) Append(record service.UsageRecord) {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	b.mu.Lock()
	b.pending = append(b.pending, record)
	full := len(b.pending) >= b.config.MaxBatch
	b.mu.Unlock()

	if full {
		go b.flush()
	}
}

// Flush synchronously drains the buffer. Sink errors are swallowed here as
// everywhere else; Flush exists so callers can force emission before exit.
func (b *Buffer) Flush() {
	b.flush()
}

// Close stops the background loop and drains what is left.
func (b *Buffer) Close() {
	b.stopOnce.Do(func() {
		close(b.done)
	})
	b.wg.Wait()
	b.flush()
}

func (b *Buffer) flushLoop() {
	defer b.wg.Done()

	ticker := time.NewTicker(b.config.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.flush()
		case <-b.done:
			return
		}
	}
}

func (b *Buffer) flush() {
	b.mu.Lock()
	if len(b.pending) == 0 {
		b.mu.Unlock()
		return
	}
	batch := b.pending
	b.pending = nil
	b.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), b.config.FlushTimeout)
	defer cancel()

	if err := b.sink.WriteUsage(ctx, batch); err != nil {
		// Dropped on purpose: usage logging never affects the outcome.
		slog.Warn("usage log flush failed, dropping batch",
			"batch_size", len(batch),
			"error", err)
	}
}
