// Package counter implements the persisted counter widget state.
package counter

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"

	"go.uber.org/zap"

	applog "github.com/janisto/widget-playground/internal/platform/logging"
	"github.com/janisto/widget-playground/internal/storage"
)

// Cell is a write-through counter that never goes below zero.
type Cell struct {
	mu    sync.Mutex
	store storage.Store
	value int
}

// NewCell creates a counter cell over store. Call Load before use.
func NewCell(store storage.Store) *Cell {
	return &Cell{store: store}
}

// Load reads the stored value. Absent, unreadable, unparseable or negative
// values load as 0.
func (c *Cell) Load(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.value = 0
	raw, ok, err := c.store.Get(ctx, storage.KeyCounter)
	if err != nil {
		applog.LogWarn(ctx, "counter read failed, using default", zap.Error(err))
		return 0
	}
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		applog.LogWarn(ctx, "stored counter is malformed, using default",
			zap.String("raw", raw))
		return 0
	}
	c.value = v
	return v
}

// Value returns the in-memory value.
func (c *Cell) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Increment adds one and persists the result. It saturates at math.MaxInt.
func (c *Cell) Increment(ctx context.Context) (int, error) {
	return c.apply(ctx, "increment", func(v int) int {
		if v == math.MaxInt {
			return v
		}
		return v + 1
	})
}

// Decrement subtracts one, clamped at zero, and persists the result.
func (c *Cell) Decrement(ctx context.Context) (int, error) {
	return c.apply(ctx, "decrement", func(v int) int { return max(v-1, 0) })
}

// Reset sets the value to zero and persists it.
func (c *Cell) Reset(ctx context.Context) (int, error) {
	return c.apply(ctx, "reset", func(int) int { return 0 })
}

// apply computes the next value and writes it through. On write failure the
// in-memory value is left unchanged.
func (c *Cell) apply(ctx context.Context, action string, next func(int) int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := next(c.value)
	if err := c.store.Set(ctx, storage.KeyCounter, strconv.Itoa(v)); err != nil {
		applog.LogAuditEvent(ctx, action, "counter", storage.KeyCounter, "failure", nil)
		return c.value, fmt.Errorf("persist counter: %w", err)
	}
	c.value = v
	applog.LogAuditEvent(ctx, action, "counter", storage.KeyCounter, "success",
		map[string]any{"value": v})
	return v, nil
}

// Intensity is the visual-intensity signal for v: min(v/100, 1).
func Intensity(v int) float64 {
	return min(float64(v)/100, 1)
}

// Color renders the background color for v.
func Color(v int) string {
	return "rgba(0, 150, 255, " + strconv.FormatFloat(Intensity(v), 'f', -1, 64) + ")"
}
