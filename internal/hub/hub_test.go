package hub

import (
	"testing"
	"time"
)

// stubEngine satisfies Engine with no behavior, for registry tests.
type stubEngine struct {
	id    string
	title string
}

func (s *stubEngine) ID() string        { return s.id }
func (s *stubEngine) Title() string     { return s.title }
func (s *stubEngine) Reset(time.Time)   {}
func (s *stubEngine) Start(time.Time)   {}
func (s *stubEngine) Stop(time.Time)    {}
func (s *stubEngine) Advance(time.Time) {}
func (s *stubEngine) Status() Status    { return Status{} }

// The registry is package-global, so every test registers under IDs
// of its own and filters List output down to them.
func TestRegisterAndCreate(t *testing.T) {
	Register("stub-create", func() Engine {
		return &stubEngine{id: "stub-create", title: "Stub"}
	})

	if !Exists("stub-create") {
		t.Fatal("Exists() = false for a registered engine")
	}

	e, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if e.ID() != "stub-create" {
		t.Errorf("ID() = %q, expected %q", e.ID(), "stub-create")
	}

	// Each Create must return a fresh instance
	e2, err := Create("stub-create")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if e == e2 {
		t.Error("Create() returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-engine"); err == nil {
		t.Error("Create() with unknown ID did not return an error")
	}
	if Exists("no-such-engine") {
		t.Error("Exists() = true for an unknown ID")
	}
}

func TestListSortedWithTitles(t *testing.T) {
	Register("stub-list-b", func() Engine {
		return &stubEngine{id: "stub-list-b", title: "Beta"}
	})
	Register("stub-list-a", func() Engine {
		return &stubEngine{id: "stub-list-a", title: "Alpha"}
	})

	var mine []Info
	for _, info := range List() {
		if info.ID == "stub-list-a" || info.ID == "stub-list-b" {
			mine = append(mine, info)
		}
	}

	if len(mine) != 2 {
		t.Fatalf("List() returned %d matching entries, expected 2", len(mine))
	}
	if mine[0].ID != "stub-list-a" || mine[1].ID != "stub-list-b" {
		t.Errorf("List() order = %q, %q, expected sorted by ID", mine[0].ID, mine[1].ID)
	}
	if mine[0].Title != "Alpha" || mine[1].Title != "Beta" {
		t.Errorf("List() titles = %q, %q, expected Alpha, Beta", mine[0].Title, mine[1].Title)
	}
}

func TestDuplicateRegisterPanics(t *testing.T) {
	Register("stub-dup", func() Engine {
		return &stubEngine{id: "stub-dup", title: "Dup"}
	})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("stub-dup", func() Engine {
		return &stubEngine{id: "stub-dup", title: "Dup"}
	})
}
