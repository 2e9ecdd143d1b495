package control

import (
	"reflect"
	"testing"
)

func TestRegistry_RunAllOrder(t *testing.T) {
	var r Registry
	var fired []string

	r.Add(func() { fired = append(fired, "first") })
	r.Add(func() { fired = append(fired, "second") })
	r.Add(func() { fired = append(fired, "third") })

	r.RunAll()

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
}

func TestRegistry_ReleasedCallbackDoesNotFire(t *testing.T) {
	var r Registry
	var fired []string

	r.Add(func() { fired = append(fired, "keep") })
	h := r.Add(func() { fired = append(fired, "drop") })
	h.Release()

	r.RunAll()
	r.RunAll()

	want := []string{"keep", "keep"}
	if !reflect.DeepEqual(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
}

func TestRegistry_ReleaseAfterRun(t *testing.T) {
	var r Registry
	count := 0

	h := r.Add(func() { count++ })

	r.RunAll()
	h.Release()
	r.RunAll()

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestRegistry_ReleaseIsIdempotent(t *testing.T) {
	var r Registry
	count := 0

	h := r.Add(func() { count++ })
	h.Release()
	h.Release()

	var zero Handle
	zero.Release() // no-op

	r.RunAll()
	if count != 0 {
		t.Errorf("count = %d, want 0", count)
	}
}

func TestRegistry1_PassesArgument(t *testing.T) {
	var r Registry1[float64]
	var got []float64

	r.Add(func(dt float64) { got = append(got, dt) })
	r.Add(func(dt float64) { got = append(got, dt*2) })

	r.RunAll(16.6)

	want := []float64{16.6, 33.2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got = %v, want %v", got, want)
	}
}

func TestRegistry1_ReleasedCallbackDoesNotFire(t *testing.T) {
	var r Registry1[int]
	sum := 0

	h := r.Add(func(n int) { sum += n })
	r.Add(func(n int) { sum += n * 10 })
	h.Release()

	r.RunAll(1)

	if sum != 10 {
		t.Errorf("sum = %d, want 10", sum)
	}
}
