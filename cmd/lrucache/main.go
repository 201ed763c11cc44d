// Command lrucache exercises the lru package: it replays the eviction
// walkthrough on a small cache, then drives a concurrent put/get load
// against a sharded cache and logs the resulting counters.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	lru "github.com/venkatsvpr/lrucache"
	"github.com/venkatsvpr/lrucache/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "lrucache: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg, out)
	if err != nil {
		return err
	}

	if err := walkthrough(log); err != nil {
		return fmt.Errorf("walkthrough: %w", err)
	}
	if err := load(ctx, log, cfg); err != nil {
		return fmt.Errorf("load: %w", err)
	}
	return nil
}

func newLogger(cfg config.Config, out io.Writer) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(out, opts)), nil
	}
	return slog.New(slog.NewTextHandler(out, opts)), nil
}

// walkthrough puts A, B, C into a cache of three, touches A and puts D, which
// must evict B.
func walkthrough(log *slog.Logger) error {
	c, err := lru.New[string, int](3)
	if err != nil {
		return err
	}
	for i, k := range []string{"A", "B", "C"} {
		if _, err := c.Put(k, i+1); err != nil {
			return err
		}
	}
	c.Get("A")
	if _, err := c.Put("D", 4); err != nil {
		return err
	}

	if _, ok := c.Get("B"); ok {
		return errors.New("B should have been evicted")
	}
	log.Info("walkthrough done",
		slog.Any("keys", c.Keys()),
		slog.Int("len", c.Len()),
		slog.Uint64("evictions", c.Stats().Evictions),
	)
	return nil
}

// load runs cfg.Workers goroutines, each doing cfg.Ops random puts and gets
// over cfg.Keys distinct keys.
func load(ctx context.Context, log *slog.Logger, cfg config.Config) error {
	c, err := lru.NewSharded[string, int](cfg.Capacity, cfg.Shards, lru.StringHasher[string])
	if err != nil {
		return err
	}

	start := time.Now()
	errs := make(chan error, cfg.Workers)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rnd := rand.New(rand.NewSource(seed))
			for i := 0; i < cfg.Ops; i++ {
				if i%256 == 0 && ctx.Err() != nil {
					errs <- ctx.Err()
					return
				}
				n := rnd.Intn(cfg.Keys)
				key := "key-" + strconv.Itoa(n)
				if rnd.Intn(2) == 0 {
					if _, err := c.Put(key, n); err != nil {
						errs <- err
						return
					}
					continue
				}
				if v, ok := c.Get(key); ok && v != n {
					errs <- fmt.Errorf("key %s holds %d", key, v)
					return
				}
			}
		}(int64(w))
	}
	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return err
	}

	st := c.Stats()
	log.Info("load done",
		slog.Int("workers", cfg.Workers),
		slog.Int("shards", c.Shards()),
		slog.Int("len", c.Len()),
		slog.Int("cap", c.Cap()),
		slog.Uint64("hits", st.Hits),
		slog.Uint64("misses", st.Misses),
		slog.Uint64("evictions", st.Evictions),
		slog.Float64("hit_ratio", st.HitRatio()),
		slog.Duration("elapsed", time.Since(start)),
	)
	if c.Len() > c.Cap() {
		return fmt.Errorf("len %d exceeds capacity %d", c.Len(), c.Cap())
	}
	return nil
}
