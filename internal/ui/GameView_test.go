package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/Mshel/gridsnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestGameModel(t *testing.T) GameViewModel {
	t.Helper()
	state, err := game.NewGameState(20, 20, game.DefaultCellSize, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return NewGameModel(state, 40, 21)
}

func update(t *testing.T, m GameViewModel, msg tea.Msg) (GameViewModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	gm, ok := updated.(GameViewModel)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return gm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestFramesAdvanceByElapsedTime(t *testing.T) {
	m := newTestGameModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	start := time.Unix(1000, 0)
	// The first frame only anchors the clock.
	m, cmd := update(t, m, FrameMsg{ID: m.frameID, At: start})
	if cmd == nil {
		t.Fatal("frame did not schedule the next frame")
	}
	if m.State().Head() != game.InitialHead {
		t.Fatalf("moved on first frame: %v", m.State().Head())
	}

	for i := 1; i <= 4; i++ {
		m, _ = update(t, m, FrameMsg{ID: m.frameID, At: start.Add(time.Duration(i) * FrameInterval)})
	}
	if m.State().Head() != game.InitialHead {
		t.Fatalf("moved before the move interval: %v", m.State().Head())
	}

	m, _ = update(t, m, FrameMsg{ID: m.frameID, At: start.Add(game.MoveInterval)})
	if m.State().Head() != (game.Cell{X: 11, Y: 10}) {
		t.Errorf("head = %v, want (11,10)", m.State().Head())
	}
}

func TestStaleFramesIgnored(t *testing.T) {
	m := newTestGameModel(t)
	m, _ = update(t, m, runeKey('s'))
	staleID := m.frameID
	m, _ = m.Resume()

	start := time.Unix(0, 0)
	m, cmd := update(t, m, FrameMsg{ID: staleID, At: start})
	m, _ = update(t, m, FrameMsg{ID: staleID, At: start.Add(time.Second)})
	if cmd != nil {
		t.Error("stale frame rescheduled itself")
	}
	if m.State().Head() != game.InitialHead {
		t.Errorf("stale frame advanced the game: %v", m.State().Head())
	}
}

func TestDirectionKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want game.Direction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, game.DirectionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, game.DirectionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, game.DirectionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, game.DirectionRight},
		{runeKey('w'), game.DirectionUp},
		{runeKey('s'), game.DirectionDown},
		{runeKey('a'), game.DirectionLeft},
		{runeKey('d'), game.DirectionRight},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			m := newTestGameModel(t)
			m, _ = update(t, m, tt.msg)
			if m.State().Heading() != tt.want {
				t.Errorf("heading = %v, want %v", m.State().Heading(), tt.want)
			}
		})
	}
}

func TestOtherKeysIgnored(t *testing.T) {
	m := newTestGameModel(t)
	m, _ = update(t, m, runeKey('x'))
	m, _ = update(t, m, runeKey('r'))
	if !m.State().Heading().IsNone() || m.State().IsOver() {
		t.Errorf("unexpected state change")
	}
}

func crash(t *testing.T, m GameViewModel) GameViewModel {
	t.Helper()
	start := time.Unix(0, 0)
	m, _ = update(t, m, FrameMsg{ID: m.frameID, At: start})
	// Grow to length 2 by walking into the food at (15,15), then reverse.
	now := start
	step := func(k tea.KeyMsg) {
		m, _ = update(t, m, k)
		now = now.Add(game.MoveInterval)
		m, _ = update(t, m, FrameMsg{ID: m.frameID, At: now})
	}
	for _i := 0; _i < 5; _i++ {
		step(tea.KeyMsg{Type: tea.KeyRight})
	}
	for _i := 0; _i < 5; _i++ {
		step(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.State().Score() != 1 {
		t.Fatalf("score = %d, want 1", m.State().Score())
	}
	step(tea.KeyMsg{Type: tea.KeyUp})
	if !m.State().IsOver() {
		t.Fatal("expected game over after reversing")
	}
	return m
}

func TestRestartOnlyAfterGameOver(t *testing.T) {
	m := crash(t, newTestGameModel(t))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().Heading() != game.DirectionUp {
		t.Errorf("steering accepted after game over")
	}

	m, _ = update(t, m, runeKey('r'))
	if m.State().IsOver() || m.State().Score() != 0 {
		t.Fatalf("restart did not reset: over=%v score=%d", m.State().IsOver(), m.State().Score())
	}
	if len(m.State().Snake()) != 1 || m.State().Head() != game.InitialHead {
		t.Errorf("snake = %v", m.State().Snake())
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.State().Heading() != game.DirectionLeft {
		t.Errorf("steering not re-enabled after restart")
	}
}

func TestViewShowsScoreAndOverlay(t *testing.T) {
	m := newTestGameModel(t)
	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Errorf("view missing score:\n%s", view)
	}
	if strings.Contains(view, gameOverMessage) {
		t.Errorf("overlay shown while playing")
	}

	m = crash(t, m)
	view = m.View()
	if !strings.Contains(view, "Score: 1") || !strings.Contains(view, gameOverMessage) {
		t.Errorf("view after crash:\n%s", view)
	}
}

func TestEscReturnsToIntro(t *testing.T) {
	m := newTestGameModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(BackToIntroMsg); !ok {
		t.Errorf("esc produced %T", cmd())
	}
}
