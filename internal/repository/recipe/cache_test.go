package recipe

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func newTestCachedSource(t *testing.T, inner *mockSource) (*CachedSource, *mockKVStore, *prometheus.CounterVec) {
	t.Helper()
	ms := &mockKVStore{}
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_cache_total"}, []string{"result"})
	cs := NewCachedSource(inner, ms, "cookbook:", 5*time.Minute, counter, zap.NewNop())
	return cs, ms, counter
}

func TestCachedSource_MissFetchesAndStores(t *testing.T) {
	inner := &mockSource{name: "url:http://x", data: []byte(`[]`)}
	cs, ms, counter := newTestCachedSource(t, inner)

	var storedKey string
	var storedTTL time.Duration
	ms.setFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		storedKey, storedTTL = key, ttl
		if string(value) != `[]` {
			t.Errorf("stored %q", value)
		}
		return nil
	}

	data, err := cs.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("data = %q", data)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d", inner.calls)
	}
	if !strings.HasPrefix(storedKey, "cookbook:source:") {
		t.Errorf("key = %q", storedKey)
	}
	if storedTTL != 5*time.Minute {
		t.Errorf("ttl = %v", storedTTL)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("miss")); got != 1 {
		t.Errorf("miss = %v", got)
	}
}

func TestCachedSource_HitSkipsInner(t *testing.T) {
	inner := &mockSource{name: "file:/tmp/r.json", data: []byte(`[1]`)}
	cs, ms, counter := newTestCachedSource(t, inner)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte(`[]`), nil
	}

	data, err := cs.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("data = %q, want cached", data)
	}
	if inner.calls != 0 {
		t.Errorf("inner called %d times on hit", inner.calls)
	}
	if got := testutil.ToFloat64(counter.WithLabelValues("hit")); got != 1 {
		t.Errorf("hit = %v", got)
	}
}

func TestCachedSource_UnreadableCacheIsMiss(t *testing.T) {
	inner := &mockSource{name: "s", data: []byte(`[]`)}
	cs, ms, _ := newTestCachedSource(t, inner)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte(`[{"id":`), nil
	}

	if _, err := cs.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 1 {
		t.Errorf("inner calls = %d, want 1", inner.calls)
	}
}

func TestCachedSource_StoreErrorsTolerated(t *testing.T) {
	inner := &mockSource{name: "s", data: []byte(`[]`)}
	cs, ms, _ := newTestCachedSource(t, inner)
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, errors.New("connection reset")
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return errors.New("connection reset")
	}

	data, err := cs.Fetch(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail fetch: %v", err)
	}
	if string(data) != `[]` {
		t.Errorf("data = %q", data)
	}
}

func TestCachedSource_InvalidDocumentNotCached(t *testing.T) {
	inner := &mockSource{name: "s", data: []byte(`not json`)}
	cs, ms, _ := newTestCachedSource(t, inner)
	stored := false
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		stored = true
		return nil
	}

	if _, err := cs.Fetch(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored {
		t.Error("invalid document must not be cached")
	}
}

func TestCachedSource_InnerErrorPropagated(t *testing.T) {
	cause := errors.New("timeout")
	cs, _, _ := newTestCachedSource(t, &mockSource{name: "s", err: cause})

	_, err := cs.Fetch(context.Background())
	if !errors.Is(err, cause) {
		t.Errorf("expected inner error, got %v", err)
	}
}

func TestCachedSource_KeyDependsOnInnerName(t *testing.T) {
	a, msA, _ := newTestCachedSource(t, &mockSource{name: "a", data: []byte(`[]`)})
	b, msB, _ := newTestCachedSource(t, &mockSource{name: "b", data: []byte(`[]`)})

	var keyA, keyB string
	msA.getFn = func(_ context.Context, key string) ([]byte, error) { keyA = key; return []byte(`[]`), nil }
	msB.getFn = func(_ context.Context, key string) ([]byte, error) { keyB = key; return []byte(`[]`), nil }

	_, _ = a.Fetch(context.Background())
	_, _ = b.Fetch(context.Background())
	if keyA == keyB {
		t.Errorf("keys collide: %q", keyA)
	}
	if a.Name() != "a" {
		t.Errorf("Name() = %q", a.Name())
	}
}

func TestCachedSource_Invalidate(t *testing.T) {
	cs, ms, _ := newTestCachedSource(t, &mockSource{name: "s"})

	var deleted string
	ms.delFn = func(_ context.Context, key string) error { deleted = key; return nil }
	if err := cs.Invalidate(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(deleted, "cookbook:source:") {
		t.Errorf("deleted %q", deleted)
	}

	ms.delFn = func(_ context.Context, _ string) error { return errors.New("down") }
	if err := cs.Invalidate(context.Background()); err == nil {
		t.Error("expected error")
	}
}
