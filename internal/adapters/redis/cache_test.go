package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "tourdesk/internal/adapters/redis"
	"tourdesk/internal/domain"
)

func TestCache_SetGetDel(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	doc := &domain.Document{Regions: []domain.Region{{ID: 1, Name: "Baku"}}}
	if err := cache.Set(ctx, "document", doc, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got domain.Document
	ok, err := cache.Get(ctx, "document", &got)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(got.Regions) != 1 || got.Regions[0].Name != "Baku" {
		t.Fatalf("unexpected cached document: %+v", got)
	}

	if err := cache.Del(ctx, "document"); err != nil {
		t.Fatalf("del: %v", err)
	}
	ok, err = cache.Get(ctx, "document", &got)
	if err != nil {
		t.Fatalf("get after del: %v", err)
	}
	if ok {
		t.Fatal("expected miss after delete")
	}
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)

	var got domain.Document
	ok, err := cache.Get(context.Background(), "nope", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected miss")
	}
}
