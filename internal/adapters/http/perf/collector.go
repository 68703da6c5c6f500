package perf

import (
	"cmp"
	"math"
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultRingSize is how many timings are kept when NewCollector is given zero.
const DefaultRingSize = 10000

// Kind separates HTTP requests from store actions.
type Kind uint8

const (
	KindRequest Kind = iota
	KindAction
	kindCount
)

// Entry is one timed request or store action.
type Entry struct {
	Kind     Kind
	Name     string // route pattern such as "POST /api/payments", or an action name such as "add_payment"
	Status   int    // HTTP status; zero for actions
	Duration time.Duration
	At       time.Time
}

// Collector keeps the most recent entries in a ring and aggregates them on read.
// It backs /admin/perf and receives store actions through store.WithObserver.
type Collector struct {
	mu    sync.Mutex
	ring  []Entry
	next  int
	total atomic.Int64
}

// NewCollector returns a collector that remembers the last size entries.
// PRE: size <= 0 selects DefaultRingSize
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = DefaultRingSize
	}
	return &Collector{ring: make([]Entry, size)}
}

// Record stores e, overwriting the oldest entry once the ring is full.
func (c *Collector) Record(e Entry) {
	c.mu.Lock()
	c.ring[c.next] = e
	c.next = (c.next + 1) % len(c.ring)
	c.mu.Unlock()
	c.total.Add(1)
}

// ObserveRequest records a served request under its route pattern.
func (c *Collector) ObserveRequest(route string, status int, elapsed time.Duration, at time.Time) {
	c.Record(Entry{Kind: KindRequest, Name: route, Status: status, Duration: elapsed, At: at})
}

// ObserveAction records one applied store action. Its signature matches store.Observer.
func (c *Collector) ObserveAction(action string, elapsed time.Duration) {
	c.Record(Entry{Kind: KindAction, Name: action, Duration: elapsed, At: time.Now()})
}

// TotalRecorded counts every entry ever recorded, including overwritten ones.
func (c *Collector) TotalRecorded() int64 {
	return c.total.Load()
}

// Stat aggregates the timings of one route or action.
type Stat struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	AvgMs        float64 `json:"avgMs"`
	MaxMs        float64 `json:"maxMs"`
	ServerErrors int     `json:"serverErrors"`
}

// Summary describes all entries of one kind inside the window.
type Summary struct {
	Count        int     `json:"count"`
	P50Ms        float64 `json:"p50Ms"`
	P95Ms        float64 `json:"p95Ms"`
	P99Ms        float64 `json:"p99Ms"`
	ServerErrors int     `json:"serverErrors"` // responses with status >= 500
	Slowest      []Stat  `json:"slowest"`      // by average, slowest first
}

// Snapshot is the /admin/perf payload.
type Snapshot struct {
	Since         time.Time `json:"since"`
	TotalRecorded int64     `json:"totalRecorded"`
	Requests      Summary   `json:"requests"`
	Actions       Summary   `json:"actions"`
}

// Snapshot aggregates the entries recorded at or after since.
// It copies and sorts the ring, so it belongs on the admin read path only.
// POST: Each Slowest list holds at most topN stats
func (c *Collector) Snapshot(since time.Time, topN int) Snapshot {
	c.mu.Lock()
	entries := slices.Clone(c.ring)
	c.mu.Unlock()

	var acc [kindCount]accumulator
	for _, e := range entries {
		if e.At.IsZero() || e.At.Before(since) || e.Kind >= kindCount {
			continue
		}
		acc[e.Kind].add(e)
	}

	return Snapshot{
		Since:         since,
		TotalRecorded: c.TotalRecorded(),
		Requests:      acc[KindRequest].summary(topN),
		Actions:       acc[KindAction].summary(topN),
	}
}

// accumulator gathers one kind's entries during a Snapshot.
type accumulator struct {
	durations []float64 // milliseconds
	errors    int
	byName    map[string]*Stat
	totals    map[string]float64
}

func (a *accumulator) add(e Entry) {
	ms := float64(e.Duration.Microseconds()) / 1000
	if a.byName == nil {
		a.byName = make(map[string]*Stat)
		a.totals = make(map[string]float64)
	}
	s, ok := a.byName[e.Name]
	if !ok {
		s = &Stat{Name: e.Name}
		a.byName[e.Name] = s
	}
	s.Count++
	s.MaxMs = max(s.MaxMs, ms)
	a.totals[e.Name] += ms
	if e.Status >= 500 {
		s.ServerErrors++
		a.errors++
	}
	a.durations = append(a.durations, ms)
}

func (a *accumulator) summary(topN int) Summary {
	out := Summary{Count: len(a.durations), ServerErrors: a.errors, Slowest: []Stat{}}
	if out.Count == 0 {
		return out
	}
	slices.Sort(a.durations)
	out.P50Ms = percentile(a.durations, 50)
	out.P95Ms = percentile(a.durations, 95)
	out.P99Ms = percentile(a.durations, 99)

	for name, s := range a.byName {
		s.AvgMs = a.totals[name] / float64(s.Count)
		out.Slowest = append(out.Slowest, *s)
	}
	slices.SortFunc(out.Slowest, func(x, y Stat) int {
		if c := cmp.Compare(y.AvgMs, x.AvgMs); c != 0 {
			return c
		}
		return cmp.Compare(x.Name, y.Name)
	})
	if topN >= 0 && len(out.Slowest) > topN {
		out.Slowest = out.Slowest[:topN]
	}
	return out
}

// percentile interpolates the p-th percentile of sorted values.
func percentile(sorted []float64, p float64) float64 {
	rank := p * float64(len(sorted)-1) / 100
	lo, hi := int(math.Floor(rank)), int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}
