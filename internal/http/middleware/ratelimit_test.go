package middleware

import (
	"testing"
	"time"
)

func TestActiveVisitorKeepsItsBudgetAcrossSweeps(t *testing.T) {
	rl := &RateLimiter{visitors: make(map[string]*visitor)}

	first := rl.getLimiter("10.0.0.1")
	for i := 0; i < 5; i++ {
		first.Allow()
	}
	if first.Allow() {
		t.Fatal("expected the burst to be exhausted")
	}

	// a sweep while the caller is active must not reset the budget
	rl.sweep(time.Now())

	again := rl.getLimiter("10.0.0.1")
	if again != first {
		t.Fatal("active visitor was evicted and handed a fresh limiter")
	}
	if again.Allow() {
		t.Fatal("sweep restored the exhausted budget")
	}
}

func TestIdleVisitorsAreSwept(t *testing.T) {
	rl := &RateLimiter{visitors: make(map[string]*visitor)}

	rl.getLimiter("10.0.0.2")
	rl.getLimiter("10.0.0.3")
	rl.visitors["10.0.0.2"].lastSeen = time.Now().Add(-time.Hour)

	rl.sweep(time.Now())

	if _, ok := rl.visitors["10.0.0.2"]; ok {
		t.Fatal("idle visitor was not swept")
	}
	if _, ok := rl.visitors["10.0.0.3"]; !ok {
		t.Fatal("recent visitor must survive the sweep")
	}
}
