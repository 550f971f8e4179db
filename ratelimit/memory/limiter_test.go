package memorylimiter

import (
	"testing"
	"time"
)

func TestAllowNamedDeniesOverLimit(t *testing.T) {
	l := New(map[string]Limit{"sponsor_grant": {Limit: 2, Window: time.Minute}})

	for i := 0; i < 2; i++ {
		ok, err := l.AllowNamed("sponsor_grant", "10.0.0.1")
		if err != nil || !ok {
			t.Fatalf("request %d: expected allow, got ok=%v err=%v", i, ok, err)
		}
	}
	ok, err := l.AllowNamed("sponsor_grant", "10.0.0.1")
	if err != nil {
		t.Fatalf("AllowNamed: %v", err)
	}
	if ok {
		t.Error("expected third request denied")
	}

	// A different key has its own window.
	ok, _ = l.AllowNamed("sponsor_grant", "10.0.0.2")
	if !ok {
		t.Error("expected other client allowed")
	}
}

func TestAllowNamedFallsBackToDefault(t *testing.T) {
	l := New(map[string]Limit{"default": {Limit: 1, Window: time.Minute}})

	if ok, _ := l.AllowNamed("sponsor_query", "k"); !ok {
		t.Fatal("first request must pass")
	}
	if ok, _ := l.AllowNamed("sponsor_query", "k"); ok {
		t.Fatal("second request must hit the default limit")
	}
}

func TestAllowNamedRequiresBucketAndKey(t *testing.T) {
	l := New(nil)
	if _, err := l.AllowNamed("", "k"); err == nil {
		t.Error("expected error for empty bucket")
	}
	if _, err := l.AllowNamed("sponsor_grant", ""); err == nil {
		t.Error("expected error for empty key")
	}
}
