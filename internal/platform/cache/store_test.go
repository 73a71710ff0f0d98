package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_SetGet(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	if _, ok := store.Get(ctx, "missing"); ok {
		t.Fatal("expected miss for unknown key")
	}

	store.Set(ctx, "k", 42)
	value, ok := store.Get(ctx, "k")
	if !ok || value.(int) != 42 {
		t.Fatalf("expected cached 42, got %v ok=%v", value, ok)
	}
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(time.Nanosecond)
	ctx := context.Background()

	store.Set(ctx, "k", "v")
	time.Sleep(time.Millisecond)

	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestStore_GetOrLoad_SingleFlight(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	var calls atomic.Int64
	load := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(5 * time.Millisecond)
		return "loaded", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := store.GetOrLoad(ctx, "hot", load)
			if err != nil || value.(string) != "loaded" {
				t.Errorf("unexpected load result: %v %v", value, err)
			}
		}()
	}
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single load, got %d", got)
	}
}

func TestStore_GetOrLoad_ErrorNotCached(t *testing.T) {
	store := NewStore(time.Minute)
	ctx := context.Background()

	boom := errors.New("boom")
	if _, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	value, err := store.GetOrLoad(ctx, "k", func(context.Context) (any, error) { return "ok", nil })
	if err != nil || value.(string) != "ok" {
		t.Fatalf("expected reload after error, got %v %v", value, err)
	}
}
