package http

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// writeLimiter throttles mutating requests per client IP. Reads are never
// limited: rendering is cheap and backed by the snapshot cache, while every
// write is a full read-modify-write of the ledger blob.
type writeLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	windows map[string]*writeWindow

	denied atomic.Int64

	done     chan struct{}
	stopOnce sync.Once
}

// writeWindow counts writes from one client inside a fixed window.
type writeWindow struct {
	start time.Time
	count int
}

func newWriteLimiter(limit int, window time.Duration) *writeLimiter {
	l := &writeLimiter{
		limit:   limit,
		window:  window,
		windows: make(map[string]*writeWindow),
		done:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

// allow reports whether the request may proceed. GET and HEAD always pass;
// other methods are counted against the client's current window.
func (l *writeLimiter) allow(method, clientIP string) bool {
	return l.allowAt(time.Now(), method, clientIP)
}

func (l *writeLimiter) allowAt(now time.Time, method, clientIP string) bool {
	if method == http.MethodGet || method == http.MethodHead {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[clientIP]
	if !ok || now.Sub(w.start) >= l.window {
		l.windows[clientIP] = &writeWindow{start: now, count: 1}
		return true
	}

	w.count++
	if w.count > l.limit {
		l.denied.Add(1)
		return false
	}
	return true
}

// deniedCount returns how many writes have been rejected since startup.
func (l *writeLimiter) deniedCount() int64 {
	return l.denied.Load()
}

// sweep periodically drops windows that have long since closed so idle
// clients do not accumulate.
func (l *writeLimiter) sweep() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-2 * l.window)
			l.mu.Lock()
			for ip, w := range l.windows {
				if w.start.Before(cutoff) {
					delete(l.windows, ip)
				}
			}
			l.mu.Unlock()
		case <-l.done:
			return
		}
	}
}

func (l *writeLimiter) stop() {
	l.stopOnce.Do(func() { close(l.done) })
}
