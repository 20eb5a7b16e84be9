package solution

import (
	"github.com/go-logr/logr"
	"k8s.io/klog/v2"
)

// IterationHook is invoked once per executed iteration with the iteration
// number (1-based), the benefit of the current solution and the best
// benefit seen so far.
type IterationHook func(iter int, current, best int64)

// Call invokes h if it is non-nil.
func (h IterationHook) Call(iter int, current, best int64) {
	if h != nil {
		h(iter, current, best)
	}
}

// TraceLogger returns the logger a driver writes progress traces to.
// When verbose is false the traces are discarded. When verbose is true and
// l has no sink, klog's global logger is used. name is appended with
// WithName.
func TraceLogger(verbose bool, l logr.Logger, name string) logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	if l.GetSink() == nil {
		l = klog.Background()
	}
	return l.WithName(name)
}
