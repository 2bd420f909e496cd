package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known metric keys
const (
	KeyLoopTasks      = "engine.tasks"
	KeyTicks          = "countdown.ticks"
	KeyFrames         = "countdown.frames"
	KeyDroppedFrames  = "countdown.dropped"
	KeyCompleted      = "countdown.completed"
	KeyRemaining      = "countdown.remaining"
	KeyPhase          = "countdown.phase"
	KeyVisible        = "surface.visible"
	KeyFadeOpacity    = "surface.opacity"
	KeyLayoutFontSize = "layout.font_size"
	KeyLayoutResizes  = "layout.resizes"
)

// Registry is the central metrics facade
// Components cache pointers at construction; tick paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Summary renders every metric as space separated key=value pairs in key order per type
// Used by the debug status line
func (r *Registry) Summary() string {
	var sb strings.Builder
	write := func(key, val string) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(shortKey(key))
		sb.WriteByte('=')
		sb.WriteString(val)
	}

	r.Strings.Range(func(key string, s *AtomicString) { write(key, s.Load()) })
	r.Ints.Range(func(key string, v *atomic.Int64) { write(key, fmt.Sprintf("%d", v.Load())) })
	r.Floats.Range(func(key string, f *AtomicFloat) { write(key, fmt.Sprintf("%.1f", f.Get())) })
	r.Bools.Range(func(key string, b *atomic.Bool) { write(key, fmt.Sprintf("%t", b.Load())) })
	return sb.String()
}

// shortKey drops the namespace prefix for compact display
func shortKey(key string) string {
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		return key[i+1:]
	}
	return key
}
