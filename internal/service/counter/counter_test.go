package counter

import (
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"pgregory.net/rapid"

	"github.com/janisto/widget-playground/internal/storage"
)

func newCell(t *testing.T, stored ...string) (*Cell, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	if len(stored) > 0 {
		if err := store.Set(context.Background(), storage.KeyCounter, stored[0]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	c := NewCell(store)
	c.Load(context.Background())
	return c, store
}

func TestLoadDefaults(t *testing.T) {
	tests := []struct {
		name   string
		stored []string
		want   int
	}{
		{name: "absent", want: 0},
		{name: "stored", stored: []string{"12"}, want: 12},
		{name: "garbage", stored: []string{"twelve"}, want: 0},
		{name: "negative", stored: []string{"-3"}, want: 0},
		{name: "float", stored: []string{"1.5"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newCell(t, tt.stored...)
			if got := c.Value(); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLoadWhenStoreUnavailable(t *testing.T) {
	store := storage.NewMemoryStore()
	store.FailReads(true)
	c := NewCell(store)
	if got := c.Load(context.Background()); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestIncrementDecrementWriteThrough(t *testing.T) {
	ctx := context.Background()
	c, store := newCell(t)

	for range 3 {
		if _, err := c.Increment(ctx); err != nil {
			t.Fatalf("increment: %v", err)
		}
	}
	if got := store.Snapshot()[storage.KeyCounter]; got != "3" {
		t.Fatalf("expected stored 3, got %q", got)
	}

	v, err := c.Decrement(ctx)
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if v != 2 || store.Snapshot()[storage.KeyCounter] != "2" {
		t.Fatalf("expected 2, got %d (stored %q)", v, store.Snapshot()[storage.KeyCounter])
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	c, store := newCell(t)
	v, err := c.Decrement(context.Background())
	if err != nil {
		t.Fatalf("decrement: %v", err)
	}
	if v != 0 || store.Snapshot()[storage.KeyCounter] != "0" {
		t.Fatalf("expected 0, got %d", v)
	}
}

func TestResetIsIdempotent(t *testing.T) {
	ctx := context.Background()
	c, _ := newCell(t, "9")
	for i := range 2 {
		v, err := c.Reset(ctx)
		if err != nil {
			t.Fatalf("reset %d: %v", i, err)
		}
		if v != 0 {
			t.Fatalf("reset %d: expected 0, got %d", i, v)
		}
	}
}

func TestWriteFailureKeepsValue(t *testing.T) {
	ctx := context.Background()
	c, store := newCell(t, "5")
	store.FailWrites(true)

	v, err := c.Increment(ctx)
	if !errors.Is(err, storage.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if v != 5 || c.Value() != 5 {
		t.Fatalf("expected value to stay 5, got %d / %d", v, c.Value())
	}
}

func TestIncrementSaturatesAtMaxInt(t *testing.T) {
	ctx := context.Background()
	c, store := newCell(t, strconv.Itoa(math.MaxInt))

	v, err := c.Increment(ctx)
	if err != nil {
		t.Fatalf("increment: %v", err)
	}
	if v != math.MaxInt || c.Value() != math.MaxInt {
		t.Fatalf("expected %d, got %d / %d", math.MaxInt, v, c.Value())
	}
	if got := store.Snapshot()[storage.KeyCounter]; got != strconv.Itoa(math.MaxInt) {
		t.Fatalf("expected stored %d, got %q", math.MaxInt, got)
	}
}

func TestDecrementNeverNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.IntRange(0, 50).Draw(rt, "start")
		steps := rapid.IntRange(0, 100).Draw(rt, "steps")

		store := storage.NewMemoryStore()
		c := NewCell(store)
		c.value = start
		for range steps {
			v, err := c.Decrement(context.Background())
			if err != nil {
				rt.Fatalf("decrement: %v", err)
			}
			if v < 0 {
				rt.Fatalf("value went negative: %d", v)
			}
		}
		if want := max(start-steps, 0); c.Value() != want {
			rt.Fatalf("expected %d, got %d", want, c.Value())
		}
	})
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		v     int
		want  float64
		color string
	}{
		{0, 0, "rgba(0, 150, 255, 0)"},
		{25, 0.25, "rgba(0, 150, 255, 0.25)"},
		{100, 1, "rgba(0, 150, 255, 1)"},
		{250, 1, "rgba(0, 150, 255, 1)"},
	}
	for _, tt := range tests {
		if got := Intensity(tt.v); got != tt.want {
			t.Errorf("Intensity(%d) = %v, want %v", tt.v, got, tt.want)
		}
		if got := Color(tt.v); got != tt.color {
			t.Errorf("Color(%d) = %q, want %q", tt.v, got, tt.color)
		}
	}
}
