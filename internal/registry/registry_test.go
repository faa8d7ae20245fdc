package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-shaft/internal/core"
)

type stubGame struct{ opts Options }

func (s *stubGame) ID() string                           { return "stub" }
func (s *stubGame) Title() string                        { return "Stub" }
func (s *stubGame) Reset(core.RuntimeConfig)             {}
func (s *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                  {}
func (s *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "test_stub", Title: "Stub"}, func(opts Options) (Game, error) {
		return &stubGame{opts: opts}, nil
	})

	if !Exists("test_stub") {
		t.Fatal("test_stub should exist after Register")
	}

	g, err := Create("test_stub", Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if got := g.(*stubGame).opts.Difficulty; got != "hard" {
		t.Errorf("options not passed through: got %q", got)
	}

	found := false
	for _, info := range List() {
		if info.ID == "test_stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List should include test_stub with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game", Options{}); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestCreateWrapsFactoryError(t *testing.T) {
	sentinel := errors.New("bad config")
	Register(GameInfo{ID: "test_broken", Title: "Broken"}, func(Options) (Game, error) {
		return nil, sentinel
	})

	_, err := Create("test_broken", Options{})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped sentinel, got %v", err)
	}
	if !strings.Contains(err.Error(), "test_broken") {
		t.Errorf("error should name the game: %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register(GameInfo{ID: "test_dup"}, func(Options) (Game, error) { return &stubGame{}, nil })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(GameInfo{ID: "test_dup"}, func(Options) (Game, error) { return &stubGame{}, nil })
}
