// Package monitor keeps keyword watch configurations and serves the
// curated trending-misinformation table.
package monitor

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultThreshold is used when a monitor is created without one.
const DefaultThreshold = 0.6

// Monitor is a stored keyword watch.
type Monitor struct {
	ID        string    `json:"id"`
	Keywords  []string  `json:"keywords"`
	Threshold float64   `json:"threshold"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// TrendingClaim is one entry of the trending table.
type TrendingClaim struct {
	Claim       string  `json:"claim"`
	SpreadScore float64 `json:"spread_score"`
	TruthScore  float64 `json:"truth_score"`
	Topic       string  `json:"topic"`
	FirstSeen   string  `json:"first_seen"`
}

// Registry holds monitors in memory. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	monitors map[string]*Monitor
}

func NewRegistry() *Registry {
	return &Registry{monitors: make(map[string]*Monitor)}
}

// Setup registers a new monitor for the given keywords. A threshold
// outside (0, 1] falls back to the default.
func (r *Registry) Setup(keywords []string, threshold float64) (*Monitor, error) {
	if len(keywords) == 0 {
		return nil, fmt.Errorf("monitor: at least one keyword required")
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}

	m := &Monitor{
		ID:        fmt.Sprintf("monitor_%d_%s", len(keywords), uuid.NewString()),
		Keywords:  keywords,
		Threshold: threshold,
		Status:    "active",
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.monitors[m.ID] = m
	r.mu.Unlock()

	return m, nil
}

// Get returns a monitor by id.
func (r *Registry) Get(id string) (*Monitor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.monitors[id]
	return m, ok
}

// List returns all registered monitors.
func (r *Registry) List() []*Monitor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Monitor, 0, len(r.monitors))
	for _, m := range r.monitors {
		out = append(out, m)
	}
	return out
}

// trendingTable is the demo dataset served until a real spread index
// backs this. High spread, low veracity.
var trendingTable = []TrendingClaim{
	{
		Claim:       "5G technology is causing COVID-19 symptoms",
		SpreadScore: 0.85,
		TruthScore:  0.05,
		Topic:       "health",
		FirstSeen:   "2025-04-15",
	},
	{
		Claim:       "Elections were rigged using secret algorithms",
		SpreadScore: 0.92,
		TruthScore:  0.12,
		Topic:       "politics",
		FirstSeen:   "2025-03-22",
	},
	{
		Claim:       "Drinking bleach cures cancer",
		SpreadScore: 0.75,
		TruthScore:  0.01,
		Topic:       "health",
		FirstSeen:   "2025-02-07",
	},
	{
		Claim:       "Climate change is a hoax created by scientists",
		SpreadScore: 0.88,
		TruthScore:  0.04,
		Topic:       "environment",
		FirstSeen:   "2025-01-30",
	},
	{
		Claim:       "New cryptocurrency guaranteed to increase 1000% in value",
		SpreadScore: 0.79,
		TruthScore:  0.10,
		Topic:       "finance",
		FirstSeen:   "2025-04-05",
	},
}

// Trending returns trending misinformation claims, optionally filtered
// by topic substring. A non-positive limit means no cap.
func Trending(topic string, limit int) []TrendingClaim {
	out := make([]TrendingClaim, 0, len(trendingTable))
	needle := strings.ToLower(topic)
	for _, c := range trendingTable {
		if needle != "" && !strings.Contains(strings.ToLower(c.Topic), needle) {
			continue
		}
		out = append(out, c)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
