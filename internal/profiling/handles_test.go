package profiling

import (
	"strings"
	"sync"
	"testing"
	"time"
)

// scripted returns a sampler that replays samples in order.
func scripted(samples ...Sample) func() Sample {
	i := 0
	return func() Sample {
		s := samples[i]
		i++
		return s
	}
}

func TestNewTrackerDefaults(t *testing.T) {
	tr := NewTracker(TrackerConfig{})
	if tr.config != DefaultTrackerConfig() {
		t.Errorf("expected defaults, got %+v", tr.config)
	}

	custom := TrackerConfig{MaxSamples: 5, HandleThreshold: 1, HeapThreshold: 2, GoroutineThreshold: 3}
	if got := NewTracker(custom).config; got != custom {
		t.Errorf("custom config not kept: %+v", got)
	}
}

func TestTrackerAnalyze(t *testing.T) {
	now := time.Now()
	base := Sample{Time: now, LiveHandles: 3, HeapAlloc: 10 * MB, Goroutines: 4}

	tests := []struct {
		name   string
		last   Sample
		leak   bool
		reason string
	}{
		{"steady", base, false, ""},
		{"handles", Sample{LiveHandles: 3 + 65, HeapAlloc: 10 * MB, Goroutines: 4}, true, "cairo handles"},
		{"heap", Sample{LiveHandles: 3, HeapAlloc: 20 * MB, Goroutines: 4}, true, "heap grows"},
		{"goroutines", Sample{LiveHandles: 3, HeapAlloc: 10 * MB, Goroutines: 20}, true, "goroutines"},
		{"shrink", Sample{LiveHandles: 0, HeapAlloc: 1 * MB, Goroutines: 1}, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(TrackerConfig{})
			tr.sample = scripted(base, tt.last)

			if tr.Analyze() != nil {
				t.Error("Analyze() with no samples should be nil")
			}
			tr.Record()
			if tr.Analyze() != nil {
				t.Error("Analyze() with one sample should be nil")
			}
			tr.Record()

			g := tr.Analyze()
			if g == nil {
				t.Fatal("Analyze() returned nil")
			}
			if g.Renders != 1 {
				t.Errorf("Renders = %d, want 1", g.Renders)
			}
			if g.PotentialLeak != tt.leak {
				t.Errorf("PotentialLeak = %v, want %v (%s)", g.PotentialLeak, tt.leak, g)
			}
			if !strings.Contains(g.LeakReason, tt.reason) {
				t.Errorf("LeakReason = %q, want it to mention %q", g.LeakReason, tt.reason)
			}
		})
	}
}

func TestTrackerOnLeak(t *testing.T) {
	tr := NewTracker(TrackerConfig{HandleThreshold: 2})
	tr.sample = scripted(
		Sample{LiveHandles: 0},
		Sample{LiveHandles: 1},
		Sample{LiveHandles: 5},
	)

	var got []Growth
	tr.OnLeak(func(g Growth) { got = append(got, g) })

	tr.Record()
	tr.Record()
	if len(got) != 0 {
		t.Fatalf("unexpected leak report %v", got)
	}
	tr.Record()
	if len(got) != 1 {
		t.Fatalf("expected one leak report, got %d", len(got))
	}
	if got[0].HandleDelta != 5 || got[0].Renders != 2 {
		t.Errorf("unexpected growth %+v", got[0])
	}
}

func TestTrackerMaxSamples(t *testing.T) {
	tr := NewTracker(TrackerConfig{MaxSamples: 3})
	var n int64
	tr.sample = func() Sample {
		n++
		return Sample{LiveHandles: n}
	}
	for i := 0; i < 10; i++ {
		tr.Record()
	}

	samples := tr.Samples()
	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if samples[0].LiveHandles != 8 {
		t.Errorf("expected the oldest samples dropped, first = %d", samples[0].LiveHandles)
	}

	samples[0].LiveHandles = 999
	if tr.Samples()[0].LiveHandles == 999 {
		t.Error("Samples() should return a copy")
	}
}

func TestTrackerConcurrentRecord(t *testing.T) {
	tr := NewTracker(TrackerConfig{MaxSamples: 10})
	var mu sync.Mutex
	tr.sample = func() Sample {
		mu.Lock()
		defer mu.Unlock()
		return Sample{Time: time.Now()}
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tr.Record()
				tr.Analyze()
			}
		}()
	}
	wg.Wait()

	if len(tr.Samples()) != 10 {
		t.Errorf("expected 10 samples, got %d", len(tr.Samples()))
	}
}

func TestCurrentSample(t *testing.T) {
	s := CurrentSample()
	if s.HeapAlloc == 0 || s.Goroutines == 0 {
		t.Errorf("unexpected sample %+v", s)
	}
	if s.LiveHandles < 0 {
		t.Errorf("negative live handles %d", s.LiveHandles)
	}
	if !strings.Contains(s.String(), "handles=") {
		t.Errorf("String() = %q", s.String())
	}
}

func TestGrowthString(t *testing.T) {
	g := Growth{Renders: 4, HandleDelta: 2, HeapDelta: -2048, HeapPerRender: -512}
	if s := g.String(); !strings.Contains(s, "over 4 renders") || !strings.HasSuffix(s, "ok") {
		t.Errorf("String() = %q", s)
	}
	g.PotentialLeak = true
	g.LeakReason = "too many"
	if s := g.String(); !strings.Contains(s, "possible leak: too many") {
		t.Errorf("String() = %q", s)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{KB, "1.00 KB"},
		{1536, "1.50 KB"},
		{MB, "1.00 MB"},
		{GB, "1.00 GB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.in); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
