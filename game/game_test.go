package game

import (
	"context"
	"testing"

	"the-snake/config"
	"the-snake/game/types"
	"the-snake/input"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	op string
	p  types.Point
}

type recordingCanvas struct {
	calls  []call
	status string
}

func (c *recordingCanvas) DrawCell(p types.Point, _ types.Color) {
	c.calls = append(c.calls, call{op: "draw", p: p})
}
func (c *recordingCanvas) EraseCell(p types.Point) { c.calls = append(c.calls, call{op: "erase", p: p}) }
func (c *recordingCanvas) Clear()                  { c.calls = append(c.calls, call{op: "clear"}) }
func (c *recordingCanvas) Present()                { c.calls = append(c.calls, call{op: "present"}) }
func (c *recordingCanvas) SetStatus(text string)   { c.status = text }

func (c *recordingCanvas) count(op string) int {
	n := 0
	for _, cl := range c.calls {
		if cl.op == op {
			n++
		}
	}
	return n
}

// scriptedSource hands out one batch of events per poll, then nothing
type scriptedSource struct {
	batches [][]input.Event
	polls   int
}

func (s *scriptedSource) Poll() []input.Event {
	s.polls++
	if len(s.batches) == 0 {
		return nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b
}

type countingSound struct {
	eats, resets int
}

func (s *countingSound) PlayEat()   { s.eats++ }
func (s *countingSound) PlayReset() { s.resets++ }

func testConfig() config.Config {
	return config.Config{
		ScreenWidth:  640,
		ScreenHeight: 480,
		CellSize:     20,
		Speed:        20,
		MaxSpeed:     60,
		Seed:         1234,
		Backend:      config.BackendWindow,
		Title:        "Snake",
	}
}

func newTestGame(t *testing.T, batches ...[]input.Event) (*Game, *recordingCanvas, *scriptedSource, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	canvas := &recordingCanvas{}
	source := &scriptedSource{batches: batches}
	g, err := NewGame(testConfig(), canvas, source, logger)
	require.NoError(t, err)
	canvas.calls = nil
	return g, canvas, source, hook
}

func TestNewGameRejectsBadConfig(t *testing.T) {
	logger, _ := test.NewNullLogger()
	cfg := testConfig()
	cfg.CellSize = 7
	_, err := NewGame(cfg, &recordingCanvas{}, &scriptedSource{}, logger)
	require.Error(t, err)
}

func TestNewGameInitialState(t *testing.T) {
	g, canvas, _, hook := newTestGame(t)
	require.NotEmpty(t, g.UUID)
	require.Equal(t, []types.Point{{X: 320, Y: 240}}, g.GetSnake().Body)
	require.Equal(t, 1, g.GetSnake().Length)
	require.False(t, g.GetSnake().Occupies(g.GetFood().Position))
	require.Equal(t, "Snake | score 0 | best 0 | speed 20", canvas.status)
	require.Equal(t, g.UUID, hook.LastEntry().Data["game"])
}

func TestThreeTicksRight(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	g.GetSnake().Direction = types.RIGHT
	g.GetFood().Position = types.Point{X: 0, Y: 0}

	prev := g.GetSnake().GetHead()
	for i := 0; i < 3; i++ {
		require.True(t, g.Update())
		last, ok := g.GetSnake().LastVacated()
		require.True(t, ok)
		require.Equal(t, prev, last)
		prev = g.GetSnake().GetHead()
	}
	require.Equal(t, types.Point{X: 380, Y: 240}, g.GetSnake().GetHead())
	require.Len(t, g.GetSnake().Body, 1)
	require.Equal(t, 3, g.Steps)
}

func TestWrapAroundLeftEdge(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 0, Y: 240}, {X: 20, Y: 240}}
	s.Length = 2
	s.Direction = types.LEFT
	g.GetFood().Position = types.Point{X: 0, Y: 0}

	require.True(t, g.Update())
	require.Equal(t, types.Point{X: 620, Y: 240}, s.GetHead())
}

func TestTickDrawOrder(t *testing.T) {
	g, canvas, _, _ := newTestGame(t)
	g.GetSnake().Direction = types.RIGHT
	food := types.Point{X: 0, Y: 0}
	g.GetFood().Position = food

	require.True(t, g.Update())
	require.True(t, g.Update())
	require.Equal(t, []call{
		{op: "draw", p: types.Point{X: 320, Y: 240}},
		{op: "draw", p: food},
		{op: "present"},
		{op: "erase", p: types.Point{X: 320, Y: 240}},
		{op: "draw", p: types.Point{X: 340, Y: 240}},
		{op: "draw", p: food},
		{op: "present"},
	}, canvas.calls)
}

func TestDirectionInputIsBuffered(t *testing.T) {
	g, _, _, _ := newTestGame(t,
		[]input.Event{input.Press(input.KeyLeft)},
		[]input.Event{input.Press(input.KeyDown)},
	)
	g.GetSnake().Direction = types.RIGHT
	g.GetFood().Position = types.Point{X: 0, Y: 0}

	require.True(t, g.Update())
	require.Equal(t, types.RIGHT, g.GetSnake().Direction)
	require.Equal(t, types.Point{X: 340, Y: 240}, g.GetSnake().GetHead())

	require.True(t, g.Update())
	require.Equal(t, types.DOWN, g.GetSnake().Direction)
	require.Equal(t, types.Point{X: 340, Y: 260}, g.GetSnake().GetHead())
}

func TestEat(t *testing.T) {
	g, canvas, _, _ := newTestGame(t)
	s := g.GetSnake()
	s.Direction = types.UP
	g.GetFood().Position = types.Point{X: 320, Y: 220}
	sounds := &countingSound{}
	g.SetSound(sounds)

	require.True(t, g.Update())
	require.Equal(t, 1, sounds.eats)
	require.Equal(t, 2, s.Length)
	require.Equal(t, 1, g.GetState().GetScore())
	require.False(t, s.Occupies(g.GetFood().Position))
	require.Equal(t, "Snake | score 1 | best 1 | speed 20", canvas.status)

	require.True(t, g.Update())
	require.Len(t, s.Body, 2)
	require.False(t, s.Occupies(g.GetFood().Position))
}

func TestSelfCollisionResets(t *testing.T) {
	g, canvas, _, _ := newTestGame(t)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 100, Y: 100}, {X: 120, Y: 100}, {X: 120, Y: 120}, {X: 100, Y: 120}, {X: 80, Y: 120}}
	s.Length = 5
	s.Direction = types.DOWN
	g.GetFood().Position = types.Point{X: 0, Y: 0}
	g.GetState().AddPoint()
	sounds := &countingSound{}
	g.SetSound(sounds)

	require.True(t, g.Update())
	require.Equal(t, 1, sounds.resets)
	require.Zero(t, sounds.eats)
	require.Equal(t, 1, s.Length)
	require.Equal(t, []types.Point{{X: 320, Y: 240}}, s.Body)
	require.False(t, s.Occupies(g.GetFood().Position))
	require.Equal(t, 1, canvas.count("clear"))
	require.Equal(t, 1, g.GetState().GetRoundsPlayed())
	require.Equal(t, call{op: "present"}, canvas.calls[len(canvas.calls)-1])
	require.Contains(t, canvas.calls, call{op: "draw", p: types.Point{X: 320, Y: 240}},
		"the reset snake is on the presented frame")
	require.Equal(t, 0, g.GetState().GetScore())
	require.Equal(t, 1, g.GetState().GetHighScore())
}

func TestEatAndCollideOnSameTick(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	s := g.GetSnake()
	s.Body = []types.Point{{X: 100, Y: 100}, {X: 120, Y: 100}, {X: 120, Y: 120}, {X: 100, Y: 120}, {X: 80, Y: 120}}
	s.Length = 5
	s.Direction = types.DOWN
	g.GetFood().Position = types.Point{X: 100, Y: 120}
	sounds := &countingSound{}
	g.SetSound(sounds)

	require.True(t, g.Update())
	require.Equal(t, 1, sounds.eats)
	require.Equal(t, 1, sounds.resets)
	require.Equal(t, 1, s.Length)
	require.Equal(t, 1, g.GetState().GetHighScore())
	require.False(t, s.Occupies(g.GetFood().Position))
}

func TestQuitLogsSessionTotals(t *testing.T) {
	g, _, _, hook := newTestGame(t, nil, []input.Event{input.Quit()})
	g.GetFood().Position = types.Point{X: 0, Y: 0}
	require.True(t, g.Update())
	require.False(t, g.Update())

	entry := hook.LastEntry()
	require.Equal(t, "quit requested", entry.Message)
	require.Equal(t, 1, entry.Data["tick"])
	require.Equal(t, 0, entry.Data["rounds"])
	require.Equal(t, 0.0, entry.Data["average_score"])
	require.Contains(t, entry.Data, "elapsed")
}

func TestQuitStopsBeforeMoving(t *testing.T) {
	g, canvas, _, _ := newTestGame(t, []input.Event{input.Press(input.KeyUp), input.Quit()})
	head := g.GetSnake().GetHead()
	require.False(t, g.Update())
	require.Equal(t, head, g.GetSnake().GetHead())
	require.Zero(t, g.Steps)
	require.Empty(t, canvas.calls)

	g, _, _, _ = newTestGame(t, []input.Event{input.Press(input.KeyEscape)})
	require.False(t, g.Update())
}

func TestChangeSpeedClamps(t *testing.T) {
	g, canvas, _, _ := newTestGame(t,
		[]input.Event{input.Press(input.KeySpeedUp)},
	)
	g.GetFood().Position = types.Point{X: 0, Y: 0}
	require.True(t, g.Update())
	require.Equal(t, 21, g.Speed)
	assert.Equal(t, "Snake | score 0 | best 0 | speed 21", canvas.status)

	g.ChangeSpeed(-100)
	require.Equal(t, 1, g.Speed)
	g.ChangeSpeed(-1)
	require.Equal(t, 1, g.Speed)
	g.ChangeSpeed(1000)
	require.Equal(t, 60, g.Speed)
}

func TestInvariantsOverManyTicks(t *testing.T) {
	keys := []input.Key{input.KeyUp, input.KeyDown, input.KeyLeft, input.KeyRight}
	var batches [][]input.Event
	for i := 0; i < 3000; i++ {
		if i%3 == 0 {
			batches = append(batches, []input.Event{input.Press(keys[(i*7/3)%len(keys)])})
		} else {
			batches = append(batches, nil)
		}
	}
	g, _, _, _ := newTestGame(t, batches...)
	s := g.GetSnake()
	for i := 0; i < len(batches); i++ {
		length := s.Length
		require.True(t, g.Update())
		require.True(t, g.Grid.Contains(s.GetHead()))
		require.False(t, s.Occupies(g.GetFood().Position), "tick %d", i)
		require.True(t, s.Length == length || s.Length == length+1 || s.Length == 1)
	}
}

func TestRunUntilQuit(t *testing.T) {
	g, canvas, source, _ := newTestGame(t, nil, nil, []input.Event{input.Quit()})
	g.Speed = 60
	g.GetFood().Position = types.Point{X: 0, Y: 0}

	require.NoError(t, Run(context.Background(), g))
	require.Equal(t, 3, source.polls)
	require.Equal(t, 2, g.Steps)
	require.Equal(t, 2, canvas.count("present"))
}

func TestRunCancelled(t *testing.T) {
	g, _, source, hook := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, Run(ctx, g))
	require.Zero(t, source.polls)
	require.Equal(t, "game interrupted", hook.LastEntry().Message)
	require.Contains(t, hook.LastEntry().Data, "average_score")
}
