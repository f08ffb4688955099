package queue

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/fitengage/gym-manager/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans legacy member rows out to a fixed set of workers. Rows are
// sharded by member name so duplicates of one person are inserted in file order.
type Dispatcher struct {
	workers  []chan ports.LegacyMemberRow
	importer ports.ImportService
	log      zerolog.Logger

	wg       sync.WaitGroup
	imported atomic.Int64
	skipped  atomic.Int64
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, importer ports.ImportService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan ports.LegacyMemberRow, numWorkers),
		importer: importer,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.LegacyMemberRow, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled or
// when Close drains their queue.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a row to the worker responsible for its member name.
// The call blocks once that worker's buffer is full and returns ctx.Err()
// if ctx is cancelled first.
func (d *Dispatcher) Enqueue(ctx context.Context, row ports.LegacyMemberRow) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case d.workers[d.shardIndex(row.FirstName+" "+row.LastName)] <- row:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting rows, waits for the workers to finish and returns the
// totals. Enqueue must not be called after Close.
func (d *Dispatcher) Close() ports.ImportReport {
	for _, ch := range d.workers {
		close(ch)
	}
	d.wg.Wait()
	return ports.ImportReport{Imported: d.imported.Load(), Skipped: d.skipped.Load()}
}

// shardIndex maps a member name deterministically to a worker index.
func (d *Dispatcher) shardIndex(name string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strings.ToLower(strings.TrimSpace(name))))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.LegacyMemberRow) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case row, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.importer.ImportRow(ctx, row); err != nil {
				d.skipped.Add(1)
				d.log.Warn().Err(err).
					Int("line", row.Line).
					Int("worker_id", id).
					Msg("legacy row skipped")
				continue
			}
			d.imported.Add(1)
		}
	}
}
