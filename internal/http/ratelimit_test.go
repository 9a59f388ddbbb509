package http

import (
	"net/http"
	"testing"
	"time"
)

func TestWriteLimiterNeverLimitsReads(t *testing.T) {
	l := newWriteLimiter(1, time.Minute)
	defer l.stop()

	now := time.Now()
	for i := 0; i < 100; i++ {
		if !l.allowAt(now, http.MethodGet, "10.0.0.1") {
			t.Fatalf("GET %d was limited", i)
		}
	}
}

func TestWriteLimiterWindow(t *testing.T) {
	l := newWriteLimiter(3, time.Minute)
	defer l.stop()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if !l.allowAt(start, http.MethodPost, "10.0.0.1") {
			t.Fatalf("write %d should be allowed", i)
		}
	}
	if l.allowAt(start, http.MethodPost, "10.0.0.1") {
		t.Fatalf("4th write in the window should be denied")
	}
	if l.deniedCount() != 1 {
		t.Fatalf("deniedCount = %d, want 1", l.deniedCount())
	}

	// Another client is unaffected.
	if !l.allowAt(start, http.MethodPost, "10.0.0.2") {
		t.Fatalf("other client should not be limited")
	}

	// A fresh window resets the count.
	later := start.Add(2 * time.Minute)
	if !l.allowAt(later, http.MethodPost, "10.0.0.1") {
		t.Fatalf("write in a fresh window should be allowed")
	}
}
