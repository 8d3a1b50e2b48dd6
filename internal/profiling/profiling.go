package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Process-wide timing tally for generation runs.

// Stat is the accumulated time and call count under one name.
type Stat struct {
	Total time.Duration
	Calls int
}

// Mean is the average duration per call.
func (s Stat) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

var (
	mu    sync.Mutex
	stats = make(map[string]Stat)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("terrain.Hills")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := stats[name]
		s.Total += d
		s.Calls++
		stats[name] = s
		mu.Unlock()
	}
}

// Reset clears all recorded stats.
func Reset() {
	mu.Lock()
	clear(stats)
	mu.Unlock()
}

// Snapshot returns a copy of the current stats.
func Snapshot() map[string]Stat {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Stat, len(stats))
	for k, v := range stats {
		out[k] = v
	}
	return out
}

// TopN formats the n names with the largest total time.
// Example: "terrain.Hills:37.2ms/1, terrain.Steps:10.0ms/1"
func TopN(n int) string {
	ss := Snapshot()
	names := make([]string, 0, len(ss))
	for k := range ss {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		if ss[names[i]].Total != ss[names[j]].Total {
			return ss[names[i]].Total > ss[names[j]].Total
		}
		return names[i] < names[j]
	})
	if n > len(names) {
		n = len(names)
	}
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		s := ss[name]
		parts = append(parts, fmt.Sprintf("%s:%s/%d", name, formatMs(s.Total), s.Calls))
	}
	return strings.Join(parts, ", ")
}

func formatMs(d time.Duration) string {
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}
