package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"rbtree"
)

// keyWidth is the byte width of the big-endian uint64 keys.
const keyWidth = 8

// ctxCheckInterval is how many mutations run between cancellation checks.
const ctxCheckInterval = 1024

var errLeak = errors.New("cleanup count mismatch")

// Result is one worker's outcome.
type Result struct {
	Worker   int
	Inserted int
	Rejected int
	Deleted  int
	Verifies int
	Elapsed  time.Duration
}

// Ops returns the number of tree mutations attempted.
func (r Result) Ops() int {
	return r.Inserted + r.Rejected + r.Deleted
}

// Run exercises cfg.Workers independent trees in parallel. Each tree is owned
// by exactly one goroutine.
func Run(ctx context.Context, cfg *Config, log *logrus.Logger) ([]Result, error) {
	results := make([]Result, cfg.Workers)
	group, ctx := errgroup.WithContext(ctx)

	for worker := range cfg.Workers {
		group.Go(func() error {
			res, err := runWorker(ctx, cfg, worker, log)
			results[worker] = res

			return err
		})
	}

	err := group.Wait()
	if err != nil {
		return results, err
	}

	return results, nil
}

func runWorker(ctx context.Context, cfg *Config, worker int, log *logrus.Logger) (Result, error) {
	res := Result{Worker: worker}
	wlog := log.WithFields(logrus.Fields{"worker": worker, "keys": cfg.Keys})

	released := 0
	index, err := rbtree.NewIndex(keyWidth, bytes.Compare, func(any) { released++ },
		rbtree.WithMaxNodes(cfg.MaxNodes), rbtree.WithInitialCapacity(cfg.Keys))
	if err != nil {
		return res, fmt.Errorf("worker %d: %w", worker, err)
	}
	defer index.Destroy()

	rnd := rand.New(rand.NewPCG(cfg.Seed+uint64(worker), uint64(worker)))
	start := time.Now()
	mutations := 0

	step := func() error {
		mutations++
		if mutations%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if cfg.VerifyEvery > 0 && mutations%cfg.VerifyEvery == 0 {
			res.Verifies++
			if err := index.Verify(); err != nil {
				return fmt.Errorf("worker %d after %d mutations: %w", worker, mutations, err)
			}
		}

		return nil
	}

	wlog.Debug("inserting")

	for _, k := range rnd.Perm(cfg.Keys) {
		err = index.Insert(encodeKey(k), k)

		switch {
		case err == nil:
			res.Inserted++
		case errors.Is(err, rbtree.ErrOutOfMemory):
			res.Rejected++
		default:
			return res, fmt.Errorf("worker %d insert %d: %w", worker, k, err)
		}

		err = step()
		if err != nil {
			return res, err
		}
	}

	wlog.WithField("size", index.Size()).Debug("deleting")

	for _, k := range rnd.Perm(cfg.Keys) {
		err = index.Delete(encodeKey(k))

		switch {
		case err == nil:
			res.Deleted++
		case errors.Is(err, rbtree.ErrNotFound) && res.Rejected > 0:
		default:
			return res, fmt.Errorf("worker %d delete %d: %w", worker, k, err)
		}

		err = step()
		if err != nil {
			return res, err
		}
	}

	res.Elapsed = time.Since(start)

	if index.Size() != 0 {
		return res, fmt.Errorf("worker %d: %d entries left after deleting every key", worker, index.Size())
	}

	if released != res.Inserted {
		return res, fmt.Errorf("%w: worker %d inserted %d, released %d", errLeak, worker, res.Inserted, released)
	}

	wlog.WithField("elapsed", res.Elapsed).Info("worker done")

	return res, nil
}

func encodeKey(k int) []byte {
	return binary.BigEndian.AppendUint64(make([]byte, 0, keyWidth), uint64(k))
}
