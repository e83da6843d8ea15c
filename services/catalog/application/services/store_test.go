package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/campusmart/campusmart/pkg/campus"
	"github.com/campusmart/campusmart/services/catalog/domain/models"
)

// blockingFetcher returns canned listings, optionally waiting on a gate
// channel before completing so tests can interleave loads.
type blockingFetcher struct {
	mu       sync.Mutex
	results  [][]*models.Listing
	err      error
	gates    []chan struct{}
	callIdx  int
	fetchErr []error
}

func (f *blockingFetcher) FetchByCampus(_ context.Context, _ campus.Key) ([]*models.Listing, error) {
	f.mu.Lock()
	idx := f.callIdx
	f.callIdx++
	var gate chan struct{}
	if idx < len(f.gates) {
		gate = f.gates[idx]
	}
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}

	if idx < len(f.fetchErr) && f.fetchErr[idx] != nil {
		return nil, f.fetchErr[idx]
	}
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return nil, f.err
}

func testListing(t *testing.T, title string) *models.Listing {
	t.Helper()
	l, err := models.NewListing(
		"alice@iitd.ac.in",
		title, "",
		100,
		models.CategoryTextbooks,
		models.ConditionGood,
		"Alice",
		mustContact(t, "+919876543210"),
		"",
	)
	if err != nil {
		t.Fatalf("new listing: %v", err)
	}
	return l
}

func mustContact(t *testing.T, s string) models.Contact {
	t.Helper()
	c, err := models.NewContact(s)
	if err != nil {
		t.Fatalf("new contact: %v", err)
	}
	return c
}

func TestStore_LoadAndSnapshot(t *testing.T) {
	l := testListing(t, "Mechanics Vol 1")
	f := &blockingFetcher{results: [][]*models.Listing{{l}}}
	s := NewStore(campus.Key("iitd-ac-in"), f)

	if _, loaded := s.Snapshot(); loaded {
		t.Fatal("expected unloaded store before Load")
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	got, loaded := s.Snapshot()
	if !loaded {
		t.Fatal("expected loaded store after Load")
	}
	if len(got) != 1 || got[0].Title != "Mechanics Vol 1" {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
}

func TestStore_StaleLoadDiscarded(t *testing.T) {
	oldL := testListing(t, "old")
	newL := testListing(t, "new")
	gate := make(chan struct{})
	f := &blockingFetcher{
		results: [][]*models.Listing{{oldL}, {newL}},
		gates:   []chan struct{}{gate, nil},
	}
	s := NewStore(campus.Key("iitd-ac-in"), f)

	// First load blocks inside the fetcher.
	done := make(chan error)
	go func() { done <- s.Load(context.Background()) }()

	// Give the goroutine time to bump the generation and enter the fetch.
	time.Sleep(20 * time.Millisecond)

	// Second load completes first and must win.
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	// Release the first load; its result is now stale.
	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	got, _ := s.Snapshot()
	if len(got) != 1 || got[0].Title != "new" {
		t.Fatalf("stale load overwrote fresh snapshot: %+v", got)
	}
}

func TestStore_LoadErrorKeepsPreviousSnapshot(t *testing.T) {
	l := testListing(t, "keep me")
	f := &blockingFetcher{
		results:  [][]*models.Listing{{l}, nil},
		fetchErr: []error{nil, errors.New("db down")},
	}
	s := NewStore(campus.Key("iitd-ac-in"), f)

	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	if err := s.Load(context.Background()); err == nil {
		t.Fatal("expected error from second Load")
	}

	got, loaded := s.Snapshot()
	if !loaded || len(got) != 1 || got[0].Title != "keep me" {
		t.Fatalf("failed load should keep previous snapshot, got %+v (loaded=%v)", got, loaded)
	}
}

func TestStore_ClearInvalidatesInFlightLoad(t *testing.T) {
	l := testListing(t, "late arrival")
	gate := make(chan struct{})
	f := &blockingFetcher{
		results: [][]*models.Listing{{l}},
		gates:   []chan struct{}{gate},
	}
	s := NewStore(campus.Key("iitd-ac-in"), f)

	done := make(chan error)
	go func() { done <- s.Load(context.Background()) }()
	time.Sleep(20 * time.Millisecond)

	s.Clear()
	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	got, loaded := s.Snapshot()
	if loaded || len(got) != 0 {
		t.Fatalf("expected empty store after Clear, got %+v (loaded=%v)", got, loaded)
	}
}

func TestStore_PrependAndMarkSold(t *testing.T) {
	first := testListing(t, "first")
	f := &blockingFetcher{results: [][]*models.Listing{{first}}}
	s := NewStore(campus.Key("iitd-ac-in"), f)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	second := testListing(t, "second")
	s.Prepend(second)
	got, _ := s.Snapshot()
	if len(got) != 2 || got[0].Title != "second" {
		t.Fatalf("expected prepended listing first, got %+v", got)
	}

	s.MarkSold(first.ID, true)
	got, _ = s.Snapshot()
	for _, l := range got {
		if l.ID == first.ID && !l.Sold {
			t.Fatal("expected sold flag flipped")
		}
		if l.ID == second.ID && l.Sold {
			t.Fatal("unexpected sold flag on other listing")
		}
	}
}

func TestStore_PrependBeforeLoadIsNoop(t *testing.T) {
	f := &blockingFetcher{}
	s := NewStore(campus.Key("iitd-ac-in"), f)
	s.Prepend(testListing(t, "early"))
	got, loaded := s.Snapshot()
	if loaded || len(got) != 0 {
		t.Fatalf("expected empty unloaded store, got %+v (loaded=%v)", got, loaded)
	}
}
