package provider

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type fakeTokenSource struct {
	calls int
	err   error
}

func (f *fakeTokenSource) Token(_ context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("tok-%d", f.calls), nil
}

func TestTokenCache_ReusesToken(t *testing.T) {
	src := &fakeTokenSource{}
	cache := NewTokenCache(src)

	first, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	second, err := cache.Get(context.Background())
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	if src.calls != 1 {
		t.Fatalf("expected one source call, got %d", src.calls)
	}
	if first.Value != second.Value {
		t.Fatalf("expected cached token to be reused")
	}
}

func TestTokenCache_InvalidateForcesRefetch(t *testing.T) {
	src := &fakeTokenSource{}
	cache := NewTokenCache(src)

	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("get: %v", err)
	}
	cache.Invalidate()
	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("get: %v", err)
	}

	if src.calls != 2 {
		t.Fatalf("expected refetch after invalidation, got %d calls", src.calls)
	}
}

func TestTokenCache_SourceErrorIsNotCached(t *testing.T) {
	src := &fakeTokenSource{err: errors.New("login rejected")}
	cache := NewTokenCache(src)

	if _, err := cache.Get(context.Background()); err == nil {
		t.Fatalf("expected error")
	}

	src.err = nil
	if _, err := cache.Get(context.Background()); err != nil {
		t.Fatalf("expected recovery after source heals, got %v", err)
	}
	if src.calls != 2 {
		t.Fatalf("expected two source calls, got %d", src.calls)
	}
}
