package cache

import (
	"testing"
	"time"
)

func TestSnapshotSetGetInvalidate(t *testing.T) {
	s := NewSnapshot[int](time.Minute)

	if _, ok := s.Get(); ok {
		t.Fatalf("expected miss before first Set")
	}

	s.Set(42)
	if v, ok := s.Get(); !ok || v != 42 {
		t.Fatalf("get = %d,%v", v, ok)
	}

	s.Invalidate()
	if _, ok := s.Get(); ok {
		t.Fatalf("expected miss after invalidate")
	}
}

func TestSnapshotExpiry(t *testing.T) {
	s := NewSnapshot[string](5 * time.Millisecond)
	s.Set("v")
	time.Sleep(20 * time.Millisecond)

	if _, ok := s.Get(); ok {
		t.Fatalf("expected expired snapshot to miss")
	}

	s.Set("v2")
	if v, ok := s.Get(); !ok || v != "v2" {
		t.Fatalf("re-set after expiry should hit, got %q,%v", v, ok)
	}
}
