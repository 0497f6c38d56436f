package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// DebugEnvVar enables debug logging and render profiling when set to "1".
const DebugEnvVar = "SLIDER_DEBUG"

// slowFrame is the budget for one View call at 60fps.
const slowFrame = 16 * time.Millisecond

const frameWindow = 100

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "slider-debug.log")

// InitDebug initializes debug logging if SLIDER_DEBUG=1 is set.
func InitDebug() {
	if os.Getenv(DebugEnvVar) != "1" {
		DebugEnabled = false
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		ErrorLog.Printf("could not open debug log file: %s", err)
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("debug log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		debugLogFile = nil
		fmt.Println("wrote debug logs to " + debugLogFileName)
	}
}

func debugf(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	debugf(format, v...)
}

// InputTrace logs key, mouse and resize handling.
func InputTrace(format string, v ...interface{}) {
	debugf("[INPUT] "+format, v...)
}

// LayoutTrace logs viewport and constraint changes.
func LayoutTrace(format string, v ...interface{}) {
	debugf("[LAYOUT] "+format, v...)
}

// RenderTrace logs render events for a component.
func RenderTrace(component, format string, v ...interface{}) {
	debugf("[RENDER:%s] %s", component, fmt.Sprintf(format, v...))
}

// RenderProfiler tracks rendering performance per component and per frame.
type RenderProfiler struct {
	mu           sync.RWMutex
	components   map[string]*ComponentMetrics
	frameCount   int64
	totalTime    time.Duration
	frameTimings []time.Duration
}

// ComponentMetrics tracks timings for a single component.
type ComponentMetrics struct {
	Name        string
	RenderCount int64
	TotalTime   time.Duration
	MinTime     time.Duration
	MaxTime     time.Duration
}

var profiler = newRenderProfiler()

func newRenderProfiler() *RenderProfiler {
	return &RenderProfiler{
		components:   make(map[string]*ComponentMetrics),
		frameTimings: make([]time.Duration, 0, frameWindow),
	}
}

// GetProfiler returns the global render profiler.
func GetProfiler() *RenderProfiler {
	return profiler
}

// StartRender begins timing a component render. Call the returned func when
// the render completes.
func (p *RenderProfiler) StartRender(component string) func() {
	if !DebugEnabled {
		return func() {}
	}

	start := time.Now()
	return func() {
		p.recordRender(component, time.Since(start))
	}
}

func (p *RenderProfiler) recordRender(component string, elapsed time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	m, ok := p.components[component]
	if !ok {
		m = &ComponentMetrics{Name: component, MinTime: elapsed, MaxTime: elapsed}
		p.components[component] = m
	}

	m.RenderCount++
	m.TotalTime += elapsed
	if elapsed < m.MinTime {
		m.MinTime = elapsed
	}
	if elapsed > m.MaxTime {
		m.MaxTime = elapsed
	}
}

// RecordFrame records a complete frame render and warns on slow frames.
func (p *RenderProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed

	if len(p.frameTimings) >= frameWindow {
		p.frameTimings = p.frameTimings[1:]
	}
	p.frameTimings = append(p.frameTimings, elapsed)

	if elapsed > slowFrame {
		debugf("[PERF WARNING] slow frame: %v", elapsed)
	}
}

// GetStats returns a summary of render statistics, or "" when debug is off.
func (p *RenderProfiler) GetStats() string {
	if !DebugEnabled {
		return ""
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString("\n=== Render Profile ===\n")
	sb.WriteString(fmt.Sprintf("Total frames: %d\n", p.frameCount))
	if p.frameCount > 0 {
		sb.WriteString(fmt.Sprintf("Avg frame time: %v\n", p.totalTime/time.Duration(p.frameCount)))
	}

	if n := len(p.frameTimings); n > 0 {
		var sum time.Duration
		lo, hi := p.frameTimings[0], p.frameTimings[0]
		for _, t := range p.frameTimings {
			sum += t
			lo = min(lo, t)
			hi = max(hi, t)
		}
		sb.WriteString(fmt.Sprintf("Recent %d frames: avg=%v min=%v max=%v\n", n, sum/time.Duration(n), lo, hi))
	}

	sb.WriteString("\n--- Components ---\n")
	sorted := make([]*ComponentMetrics, 0, len(p.components))
	for _, m := range p.components {
		sorted = append(sorted, m)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].TotalTime > sorted[j].TotalTime
	})
	for _, m := range sorted {
		sb.WriteString(fmt.Sprintf("  %s: count=%d total=%v avg=%v min=%v max=%v\n",
			m.Name, m.RenderCount, m.TotalTime, m.TotalTime/time.Duration(m.RenderCount), m.MinTime, m.MaxTime))
	}

	return sb.String()
}

// LogStats writes the current render statistics to the debug log.
func (p *RenderProfiler) LogStats() {
	if stats := p.GetStats(); stats != "" {
		debugf("%s", stats)
	}
}

// Reset clears all profiling data.
func (p *RenderProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.components = make(map[string]*ComponentMetrics)
	p.frameCount = 0
	p.totalTime = 0
	p.frameTimings = make([]time.Duration, 0, frameWindow)
}
