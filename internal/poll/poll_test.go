// internal/poll/poll_test.go
package poll

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tamzrod/modbus-sensorbridge/internal/encoding"
	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
)

// ---- fakes ----

type fakeSource struct {
	values map[string]float64
	fail   map[string]bool
}

func (f *fakeSource) Read(path string) (float64, error) {
	if f.fail[path] {
		return 0, errors.New("sensor unreachable")
	}
	return f.values[path], nil
}

type fakeStore struct {
	regs map[uint16]uint16
}

func newFakeStore() *fakeStore {
	return &fakeStore{regs: make(map[uint16]uint16)}
}

func (f *fakeStore) SetRegisters(addr uint16, words []uint16) {
	for i, w := range words {
		f.regs[addr+uint16(i)] = w
	}
}

// ---- tests ----

func entries() []mapping.Entry {
	return []mapping.Entry{
		{Address: 0, Path: "MOD-0001.temperature", Enc: encoding.Float32},
		{Address: 10, Path: "MOD-0001.humidity", Enc: encoding.Int16},
	}
}

func TestRefreshOnce_WritesEncodedValues(t *testing.T) {
	src := &fakeSource{values: map[string]float64{
		"MOD-0001.temperature": 23.5,
		"MOD-0001.humidity":    48,
	}}
	st := newFakeStore()

	r, err := New(Config{Interval: time.Second, Entries: entries()}, src, st)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := r.RefreshOnce()
	if len(res.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Refreshed != 2 {
		t.Fatalf("refreshed=%d, want 2", res.Refreshed)
	}

	want := encoding.Float32.Encode(23.5)
	if st.regs[0] != want[0] || st.regs[1] != want[1] {
		t.Fatalf("float32 regs=[%#x %#x], want [%#x %#x]", st.regs[0], st.regs[1], want[0], want[1])
	}
	if st.regs[10] != 48 {
		t.Fatalf("int16 reg=%d, want 48", st.regs[10])
	}
}

func TestRefreshOnce_FailureKeepsStaleValue(t *testing.T) {
	src := &fakeSource{
		values: map[string]float64{
			"MOD-0001.temperature": 23.5,
			"MOD-0001.humidity":    48,
		},
		fail: map[string]bool{},
	}
	st := newFakeStore()

	r, err := New(Config{Interval: time.Second, Entries: entries()}, src, st)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	// first cycle populates both entries
	if res := r.RefreshOnce(); len(res.Errors) != 0 {
		t.Fatalf("first cycle errors: %v", res.Errors)
	}

	// temperature goes dark, humidity changes
	src.fail["MOD-0001.temperature"] = true
	src.values["MOD-0001.humidity"] = 51

	res := r.RefreshOnce()
	if len(res.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(res.Errors))
	}
	if res.Errors[0].Entry.Path != "MOD-0001.temperature" {
		t.Fatalf("failed path=%q", res.Errors[0].Entry.Path)
	}
	if res.Refreshed != 1 {
		t.Fatalf("refreshed=%d, want 1", res.Refreshed)
	}

	// stale float32 value must survive the failed read
	want := encoding.Float32.Encode(23.5)
	if st.regs[0] != want[0] || st.regs[1] != want[1] {
		t.Fatalf("stale value lost: regs=[%#x %#x]", st.regs[0], st.regs[1])
	}
	// the healthy entry still refreshed
	if st.regs[10] != 51 {
		t.Fatalf("int16 reg=%d, want 51", st.regs[10])
	}
}

func TestNew_Validation(t *testing.T) {
	src := &fakeSource{}
	st := newFakeStore()

	if _, err := New(Config{Interval: 0, Entries: entries()}, src, st); err == nil {
		t.Fatalf("expected error for zero interval")
	}
	if _, err := New(Config{Interval: time.Second}, src, st); err == nil {
		t.Fatalf("expected error for empty entries")
	}
	if _, err := New(Config{Interval: time.Second, Entries: entries()}, nil, st); err == nil {
		t.Fatalf("expected error for nil source")
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	src := &fakeSource{values: map[string]float64{
		"MOD-0001.temperature": 1,
		"MOD-0001.humidity":    2,
	}}
	st := newFakeStore()

	r, err := New(Config{Interval: 5 * time.Millisecond, Entries: entries()}, src, st)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	// buffered so the runner is never blocked on send when cancel lands
	out := make(chan Result, 8)
	done := make(chan struct{})

	go func() {
		r.Run(ctx, out)
		close(done)
	}()

	select {
	case <-out:
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for first cycle")
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("runner did not stop after cancel")
	}
}
