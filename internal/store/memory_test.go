package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/egoscicki/Untitled-Location-Game/internal/game"
)

func testGame(id string) *game.Game {
	g := game.New(game.ModeWorld, game.Location{
		City: "Paris", Region: "Île-de-France", Country: "France",
		Continent: "Europe", ImageURLs: []string{"x"},
	})
	g.ID = id
	return g
}

func TestSaveAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	g := testGame("round-1")
	if err := s.Save(ctx, g); err != nil {
		t.Fatal(err)
	}
	got, err := s.Get(ctx, "round-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "round-1" || got.Location.City != "Paris" {
		t.Errorf("wrong round returned: %+v", got)
	}

	// Save is an upsert.
	g.Score = 60
	if err := s.Save(ctx, g); err != nil {
		t.Fatal(err)
	}
	got, _ = s.Get(ctx, "round-1")
	if got.Score != 60 {
		t.Errorf("update lost: score=%d", got.Score)
	}
}

func TestGetMissing(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); err == nil {
		t.Fatal("expected an error for an unknown round ID")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("round-%d", i)
			if err := s.Save(ctx, testGame(id)); err != nil {
				t.Error(err)
				return
			}
			if _, err := s.Get(ctx, id); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
}
