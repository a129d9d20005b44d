package book

import "testing"

func TestSeed_IsIdempotent(t *testing.T) {
	repo := NewInMemoryRepository(nil)

	res, err := Seed(repo)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.Created != len(SampleBooks()) || res.Updated != 0 {
		t.Fatalf("first run: expected %d created, got %+v", len(SampleBooks()), res)
	}

	// running again refreshes rather than duplicating
	res, err = Seed(repo)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if res.Created != 0 || res.Updated != len(SampleBooks()) {
		t.Fatalf("second run: expected %d updated, got %+v", len(SampleBooks()), res)
	}
	if got := len(repo.List()); got != len(SampleBooks()) {
		t.Fatalf("expected %d books, got %d", len(SampleBooks()), got)
	}
}
