package recorder

import (
	"context"
	"sync"
	"time"
)

type ctxKey struct{}

// CycleInfo collects the per-cycle attribution data that only the handler
// knows: which controller/action served the request and how much time was
// spent in database and render phases. One CycleInfo belongs to exactly one
// in-flight request; the mutex only guards against handlers that fan out
// into goroutines of their own.
type CycleInfo struct {
	mu          sync.Mutex
	controller  string
	action      string
	viewRuntime *float64
	dbRuntime   *float64
}

// NewCycleInfo creates an empty CycleInfo for one request cycle
func NewCycleInfo() *CycleInfo {
	return &CycleInfo{}
}

// WithCycleInfo attaches the cycle info to the request context
func WithCycleInfo(ctx context.Context, info *CycleInfo) context.Context {
	return context.WithValue(ctx, ctxKey{}, info)
}

// InfoFromContext returns the cycle info for the current request, or nil
// when the request is not instrumented (e.g. plain httptest handlers).
func InfoFromContext(ctx context.Context) *CycleInfo {
	info, _ := ctx.Value(ctxKey{}).(*CycleInfo)
	return info
}

// Tag records the controller and action names serving the current request.
// It is a no-op on uninstrumented requests.
func Tag(ctx context.Context, controller, action string) {
	info := InfoFromContext(ctx)
	if info == nil {
		return
	}
	info.mu.Lock()
	info.controller = controller
	info.action = action
	info.mu.Unlock()
}

// TrackDB measures fn as database time for the current request and
// accumulates it into the cycle's db runtime.
func TrackDB(ctx context.Context, fn func() error) error {
	start := time.Now()
	err := fn()
	addRuntime(ctx, time.Since(start), func(info *CycleInfo, ms float64) {
		if info.dbRuntime == nil {
			info.dbRuntime = new(float64)
		}
		*info.dbRuntime += ms
	})
	return err
}

// TrackRender measures fn as render time for the current request and
// accumulates it into the cycle's view runtime.
func TrackRender(ctx context.Context, fn func() error) error {
	start := time.Now()
	err := fn()
	addRuntime(ctx, time.Since(start), func(info *CycleInfo, ms float64) {
		if info.viewRuntime == nil {
			info.viewRuntime = new(float64)
		}
		*info.viewRuntime += ms
	})
	return err
}

func addRuntime(ctx context.Context, elapsed time.Duration, add func(*CycleInfo, float64)) {
	info := InfoFromContext(ctx)
	if info == nil {
		return
	}
	info.mu.Lock()
	add(info, millis(elapsed))
	info.mu.Unlock()
}

// Event builds the completed-cycle event from the response data captured by
// the middleware and the attribution collected during the cycle.
func (info *CycleInfo) Event(status int, method, path, format string, elapsed time.Duration) CycleEvent {
	info.mu.Lock()
	defer info.mu.Unlock()

	ev := CycleEvent{
		Status:     status,
		Method:     method,
		Path:       path,
		Format:     format,
		Controller: info.controller,
		Action:     info.action,
		Duration:   millis(elapsed),
	}

	// Copy the runtime values out so the event does not alias the tracked
	// state of a cycle that may still have stray goroutines writing to it.
	if info.viewRuntime != nil {
		v := *info.viewRuntime
		ev.ViewRuntime = &v
	}
	if info.dbRuntime != nil {
		d := *info.dbRuntime
		ev.DBRuntime = &d
	}

	return ev
}

func millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
