package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newStoreTest(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	t.Cleanup(mr.Close)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, time.Hour), mr
}

func TestCreateThenGet(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	want := Data{UserID: "u-1", Email: "diner@example.com", Role: "diner"}
	if err := store.Create(ctx, "sid-1", want); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, ok, err := store.Get(ctx, "sid-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("session not found after create")
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestGetUnknownID(t *testing.T) {
	store, _ := newStoreTest(t)

	_, ok, err := store.Get(context.Background(), "never-created")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected absent session")
	}
}

func TestDeleteThenGet(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Create(ctx, "sid-1", Data{UserID: "u-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, err := store.Get(ctx, "sid-1"); err != nil || ok {
		t.Fatalf("get after delete: ok=%v err=%v", ok, err)
	}

	// deleting again is a no-op
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestExpiredSessionAbsent(t *testing.T) {
	store, mr := newStoreTest(t)
	ctx := context.Background()

	if err := store.Create(ctx, "sid-1", Data{UserID: "u-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(2 * time.Hour)

	if _, ok, err := store.Get(ctx, "sid-1"); err != nil || ok {
		t.Fatalf("get after expiry: ok=%v err=%v", ok, err)
	}
}

func TestCreateOverwritesExistingID(t *testing.T) {
	store, _ := newStoreTest(t)
	ctx := context.Background()

	if err := store.Create(ctx, "sid-1", Data{UserID: "u-1"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, "sid-1", Data{UserID: "u-2"}); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, ok, err := store.Get(ctx, "sid-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.UserID != "u-2" {
		t.Errorf("UserID = %q, want u-2", got.UserID)
	}
}
