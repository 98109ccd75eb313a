package registry

import (
	"testing"

	"github.com/guyguy2/go-arcade/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (s *stubGame) ID() string    { return s.id }
func (s *stubGame) Title() string { return s.title }

func (s *stubGame) Reset(core.RuntimeConfig) {}

func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }

func (s *stubGame) Render(*core.Screen) {}

func (s *stubGame) State() core.GameState { return core.GameState{} }

func stubFactory(id, title string) Factory {
	return func() Game {
		return &stubGame{id: id, title: title}
	}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-alpha", stubFactory("test-alpha", "Alpha"))

	if !Exists("test-alpha") {
		t.Error("Registered game should exist")
	}
	if Exists("test-never-registered") {
		t.Error("Unregistered game should not exist")
	}

	g, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "test-alpha" || g.Title() != "Alpha" {
		t.Errorf("Created game should carry its identity, got %s/%s", g.ID(), g.Title())
	}

	// Each Create returns a fresh instance
	g2, err := Create("test-alpha")
	if err != nil {
		t.Fatalf("Second Create failed: %v", err)
	}
	if g == g2 {
		t.Error("Create should build a new instance per call")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("test-no-such-game")
	if err == nil {
		t.Error("Creating an unknown game should fail")
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	Register("test-dup", stubFactory("test-dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("Registering the same id twice should panic")
		}
	}()
	Register("test-dup", stubFactory("test-dup", "Dup"))
}

func TestListSortedWithTitles(t *testing.T) {
	Register("test-zeta", stubFactory("test-zeta", "Zeta"))
	Register("test-beta", stubFactory("test-beta", "Beta"))

	games := List()
	if len(games) < 2 {
		t.Fatalf("Expected at least 2 registered games, got %d", len(games))
	}

	byID := make(map[string]string, len(games))
	for i, info := range games {
		byID[info.ID] = info.Title
		if i > 0 && games[i-1].ID >= info.ID {
			t.Errorf("List should be sorted by id, got %q before %q", games[i-1].ID, info.ID)
		}
	}
	if byID["test-beta"] != "Beta" {
		t.Errorf("List should carry the cached title, got %q", byID["test-beta"])
	}
	if byID["test-zeta"] != "Zeta" {
		t.Errorf("List should carry the cached title, got %q", byID["test-zeta"])
	}
}
