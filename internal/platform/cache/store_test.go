package cache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestStore_SetGetDelete(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := t.Context()

	if _, ok := s.Get(ctx, "missing"); ok {
		t.Fatalf("expected miss for unknown key")
	}

	s.Set(ctx, "k", "v")
	value, ok := s.Get(ctx, "k")
	if !ok || value != "v" {
		t.Fatalf("expected hit with v, got %v ok=%v", value, ok)
	}

	s.Delete(ctx, "k")
	if _, ok := s.Get(ctx, "k"); ok {
		t.Fatalf("expected miss after delete")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := t.Context()

	s.Set(ctx, "matches:season:1", "a")
	s.Set(ctx, "matches:season:2", "b")
	s.Set(ctx, "players:all", "c")

	s.DeletePrefix(ctx, "matches:season:")

	if _, ok := s.Get(ctx, "matches:season:1"); ok {
		t.Fatalf("expected season 1 evicted")
	}
	if _, ok := s.Get(ctx, "matches:season:2"); ok {
		t.Fatalf("expected season 2 evicted")
	}
	if _, ok := s.Get(ctx, "players:all"); !ok {
		t.Fatalf("expected players key to survive")
	}
}

func TestStore_GetOrLoadCachesResult(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := t.Context()
	calls := 0

	loader := func(_ context.Context) (any, error) {
		calls++
		return "loaded", nil
	}

	for i := 0; i < 3; i++ {
		value, err := s.GetOrLoad(ctx, "k", loader)
		if err != nil {
			t.Fatalf("get or load: %v", err)
		}
		if value != "loaded" {
			t.Fatalf("unexpected value: %v", value)
		}
	}

	if calls != 1 {
		t.Fatalf("expected 1 loader call, got %d", calls)
	}
}

func TestStore_GetOrLoadErrorNotCached(t *testing.T) {
	s := NewStore(time.Minute)
	ctx := t.Context()
	calls := 0

	loader := func(_ context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, fmt.Errorf("boom")
		}
		return "ok", nil
	}

	if _, err := s.GetOrLoad(ctx, "k", loader); err == nil {
		t.Fatalf("expected first load to fail")
	}
	value, err := s.GetOrLoad(ctx, "k", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if value != "ok" {
		t.Fatalf("unexpected value: %v", value)
	}
}
