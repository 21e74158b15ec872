package testsupport

import (
	"sync"
	"testing"
)

// Recorder captures the values a callback was invoked with.
type Recorder[V any] struct {
	mu     sync.Mutex
	values []V
	err    error
}

// NewRecorder creates an empty recorder.
func NewRecorder[V any]() *Recorder[V] {
	return &Recorder[V]{}
}

// Record appends v. It has the shape of an observer callback.
func (r *Recorder[V]) Record(v V) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

// RecordErr appends v and returns the error configured with FailWith.
func (r *Recorder[V]) RecordErr(v V) error {
	r.Record(v)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// FailWith makes subsequent RecordErr calls return err.
func (r *Recorder[V]) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Values returns a copy of the recorded values.
func (r *Recorder[V]) Values() []V {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]V(nil), r.values...)
}

// Calls reports how many values were recorded.
func (r *Recorder[V]) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Reset forgets recorded values.
func (r *Recorder[V]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = nil
}

// Counter counts invocations, typically of an initializer.
type Counter struct {
	mu sync.Mutex
	n  int
}

// Inc increments the counter.
func (c *Counter) Inc() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n++
}

// Count returns the current count.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// AssertCount fails the test when the counter differs from want.
func (c *Counter) AssertCount(t *testing.T, want int) {
	t.Helper()

	if got := c.Count(); got != want {
		t.Errorf("expected %d invocations, got %d", want, got)
	}
}
