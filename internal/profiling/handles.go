package profiling

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/opd-ai/go-cairo/pkg/cairo"
)

// Byte size constants for memory formatting.
const (
	KB = 1024
	MB = KB * 1024
	GB = MB * 1024
)

// Sample is the process state after one render.
type Sample struct {
	Time        time.Time
	LiveHandles int64  // cairo handles not yet released
	HeapAlloc   uint64 // bytes of allocated heap objects
	Goroutines  int
}

// CurrentSample reads the process state now.
func CurrentSample() Sample {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Sample{
		Time:        time.Now(),
		LiveHandles: cairo.LiveHandles(),
		HeapAlloc:   ms.HeapAlloc,
		Goroutines:  runtime.NumGoroutine(),
	}
}

// String formats the sample on one line.
func (s Sample) String() string {
	return fmt.Sprintf("handles=%d heap=%s goroutines=%d", s.LiveHandles, FormatBytes(s.HeapAlloc), s.Goroutines)
}

// Growth compares the first and last samples of a tracker.
type Growth struct {
	Renders        int
	HandleDelta    int64
	HeapDelta      int64
	GoroutineDelta int
	HeapPerRender  float64
	PotentialLeak  bool
	LeakReason     string
}

// String formats the analysis on one line.
func (g Growth) String() string {
	status := "ok"
	if g.PotentialLeak {
		status = "possible leak: " + g.LeakReason
	}
	return fmt.Sprintf("over %d renders: handles %+d, heap %+d B (%.1f KB/render), goroutines %+d; %s",
		g.Renders, g.HandleDelta, g.HeapDelta, g.HeapPerRender/KB, g.GoroutineDelta, status)
}

// TrackerConfig sets the thresholds a Tracker reports against.
type TrackerConfig struct {
	// MaxSamples bounds the retained history; older samples are dropped.
	MaxSamples int

	// HandleThreshold is how many more live handles than the first sample
	// count as a leak. Handles freed by the garbage collector lag a little.
	HandleThreshold int64

	// HeapThreshold is the heap growth per render that counts as a leak.
	HeapThreshold int64

	// GoroutineThreshold is the goroutine growth that counts as a leak.
	GoroutineThreshold int
}

// DefaultTrackerConfig returns thresholds suited to a watch session.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		MaxSamples:         100,
		HandleThreshold:    64,
		HeapThreshold:      4 * MB,
		GoroutineThreshold: 10,
	}
}

// Tracker records a Sample after each render of a watch session, so
// resources the script or the renderer fail to release show up as growth.
type Tracker struct {
	config  TrackerConfig
	samples []Sample
	sample  func() Sample
	onLeak  func(Growth)
	mu      sync.Mutex
}

// NewTracker returns an empty Tracker. Zero fields of config take their
// defaults.
func NewTracker(config TrackerConfig) *Tracker {
	def := DefaultTrackerConfig()
	if config.MaxSamples < 2 {
		config.MaxSamples = def.MaxSamples
	}
	if config.HandleThreshold <= 0 {
		config.HandleThreshold = def.HandleThreshold
	}
	if config.HeapThreshold <= 0 {
		config.HeapThreshold = def.HeapThreshold
	}
	if config.GoroutineThreshold <= 0 {
		config.GoroutineThreshold = def.GoroutineThreshold
	}
	return &Tracker{
		config: config,
		sample: CurrentSample,
	}
}

// OnLeak sets a callback run from Record whenever the analysis after a
// sample reports a potential leak.
func (t *Tracker) OnLeak(fn func(Growth)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onLeak = fn
}

// Record stores the current state and checks it against the first
// retained sample.
func (t *Tracker) Record() Sample {
	s := t.sample()

	t.mu.Lock()
	t.samples = append(t.samples, s)
	if len(t.samples) > t.config.MaxSamples {
		t.samples = t.samples[1:]
	}
	growth := t.analyze()
	onLeak := t.onLeak
	t.mu.Unlock()

	if growth != nil && growth.PotentialLeak && onLeak != nil {
		onLeak(*growth)
	}
	return s
}

// Samples returns a copy of the retained samples.
func (t *Tracker) Samples() []Sample {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Sample(nil), t.samples...)
}

// Analyze compares the first and last retained samples. It returns nil
// with fewer than two samples.
func (t *Tracker) Analyze() *Growth {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.analyze()
}

func (t *Tracker) analyze() *Growth {
	if len(t.samples) < 2 {
		return nil
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	renders := len(t.samples) - 1

	g := &Growth{
		Renders:        renders,
		HandleDelta:    last.LiveHandles - first.LiveHandles,
		HeapDelta:      int64(last.HeapAlloc) - int64(first.HeapAlloc),
		GoroutineDelta: last.Goroutines - first.Goroutines,
	}
	g.HeapPerRender = float64(g.HeapDelta) / float64(renders)

	switch {
	case g.HandleDelta > t.config.HandleThreshold:
		g.PotentialLeak = true
		g.LeakReason = fmt.Sprintf("%d more cairo handles alive than after the first render", g.HandleDelta)
	case g.HeapPerRender > float64(t.config.HeapThreshold):
		g.PotentialLeak = true
		g.LeakReason = fmt.Sprintf("heap grows %s per render", FormatBytes(uint64(g.HeapPerRender)))
	case g.GoroutineDelta > t.config.GoroutineThreshold:
		g.PotentialLeak = true
		g.LeakReason = fmt.Sprintf("%d more goroutines than after the first render", g.GoroutineDelta)
	}
	return g
}

// FormatBytes formats a byte count as a human-readable string.
func FormatBytes(bytes uint64) string {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
