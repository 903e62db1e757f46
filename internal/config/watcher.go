// ABOUTME: Polling file watcher for config hot-reload
// ABOUTME: Compares mtimes on a ticker until the context ends

package config

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval is the polling period used when none is given.
const DefaultWatchInterval = 2 * time.Second

// Watch polls paths every interval and calls onChange from its own
// goroutine whenever one is created, modified or removed. It returns when
// ctx is done.
func Watch(ctx context.Context, paths []string, interval time.Duration, onChange func()) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	seen := snapshot(paths)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := snapshot(paths)
			if !sameMtimes(seen, now) {
				seen = now
				onChange()
			}
		}
	}
}

func snapshot(paths []string) map[string]time.Time {
	m := make(map[string]time.Time, len(paths))
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil {
			m[p] = info.ModTime()
		}
	}
	return m
}

func sameMtimes(a, b map[string]time.Time) bool {
	if len(a) != len(b) {
		return false
	}
	for p, t := range a {
		if u, ok := b[p]; !ok || !u.Equal(t) {
			return false
		}
	}
	return true
}
