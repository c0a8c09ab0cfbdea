// Debug mode tracing. Enable by setting WXDECK_DEBUG=1; traces go to a
// separate file so they can be tailed while the dashboard runs.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	DebugEnabled bool
	DebugLog     *log.Logger
	debugLogFile *os.File
)

var debugLogFileName = filepath.Join(os.TempDir(), "wxdeck-debug.log")

// InitDebug initializes debug tracing if WXDECK_DEBUG=1 is set. Called by
// Initialize; exposed for tests.
func InitDebug() {
	if os.Getenv("WXDECK_DEBUG") != "1" {
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugEnabled = true

	f, err := os.OpenFile(debugLogFileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		if ErrorLog != nil {
			ErrorLog.Printf("could not open debug log file: %s", err)
		}
		DebugLog = log.New(io.Discard, "", 0)
		return
	}

	DebugLog = log.New(f, "DEBUG:", log.Ldate|log.Ltime|log.Lmicroseconds)
	debugLogFile = f
	DebugLog.Printf("debug tracing enabled, log: %s", debugLogFileName)
}

// CloseDebug closes the debug log file.
func CloseDebug() {
	if debugLogFile != nil {
		_ = debugLogFile.Close()
		fmt.Println("wrote debug traces to " + debugLogFileName)
	}
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}

// LayoutTrace logs layout engine events (cache hits, packing decisions).
func LayoutTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[LAYOUT] "+format, v...)
	}
}

// RenderTrace logs render events for a named widget or component.
func RenderTrace(component, format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[RENDER:%s] %s", component, fmt.Sprintf(format, v...))
	}
}

// InputTrace logs input handling events.
func InputTrace(format string, v ...interface{}) {
	if DebugEnabled && DebugLog != nil {
		DebugLog.Printf("[INPUT] "+format, v...)
	}
}

// FrameProfiler tracks per-frame render timings with a rolling window.
type FrameProfiler struct {
	mu         sync.Mutex
	frameCount int64
	totalTime  time.Duration
	timings    []time.Duration
}

const frameWindow = 100

var profiler = &FrameProfiler{timings: make([]time.Duration, 0, frameWindow)}

// GetProfiler returns the process-wide frame profiler.
func GetProfiler() *FrameProfiler {
	return profiler
}

// RecordFrame records one complete frame render. Slow frames (over the 60fps
// budget) are logged individually.
func (p *FrameProfiler) RecordFrame(elapsed time.Duration) {
	if !DebugEnabled {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.frameCount++
	p.totalTime += elapsed
	if len(p.timings) >= frameWindow {
		p.timings = p.timings[1:]
	}
	p.timings = append(p.timings, elapsed)

	if elapsed > 16*time.Millisecond && DebugLog != nil {
		DebugLog.Printf("SLOW FRAME: %v", elapsed)
	}
}

// Stats returns a one-line summary of recent frame timings.
func (p *FrameProfiler) Stats() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.frameCount == 0 {
		return "no frames recorded"
	}
	avg := p.totalTime / time.Duration(p.frameCount)
	return fmt.Sprintf("frames=%d avg=%v window=%d", p.frameCount, avg, len(p.timings))
}

// Reset clears all profiling data.
func (p *FrameProfiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.frameCount = 0
	p.totalTime = 0
	p.timings = p.timings[:0]
}
