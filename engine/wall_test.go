package engine

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-wall/core"
)

type chatEntry struct {
	name, message, color string
}

type fakeChatLog struct {
	entries []chatEntry
}

func (f *fakeChatLog) AddEntry(name, message, color string) {
	f.entries = append(f.entries, chatEntry{name, message, color})
}

type fakeSound struct {
	cues []core.SoundCue
}

func (f *fakeSound) Play(cue core.SoundCue) {
	f.cues = append(f.cues, cue)
}

type wallFixture struct {
	wall  *Wall
	clock *MockTimeProvider
	chat  *fakeChatLog
	sound *fakeSound
	hook  *test.Hook
}

func newWallFixture() *wallFixture {
	clock := NewMockTimeProvider(testStart)
	chat := &fakeChatLog{}
	sound := &fakeSound{}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	w := NewWall(WallConfig{
		Layout:  core.DefaultLayout(),
		Clock:   clock,
		Noise:   constantField(0),
		ChatLog: chat,
		Sound:   sound,
		Logger:  logger,
	})
	return &wallFixture{wall: w, clock: clock, chat: chat, sound: sound, hook: hook}
}

func TestWallCommandScenario(t *testing.T) {
	f := newWallFixture()

	consumed := f.wall.OnMessage("Alice", "set 5,5 red", "#ff0000")
	require.True(t, consumed)

	cell := core.Cell{Col: 5, Row: 5}
	got, ok := f.wall.Board().Lookup(cell)
	require.True(t, ok)
	assert.Equal(t, core.ColorRed, got)

	require.Equal(t, 1, f.wall.Effects().Len())
	e := f.wall.Effects().Entries()[0]
	assert.Equal(t, "Alice", e.Text)
	assert.Equal(t, cell, e.Cell)
	assert.Equal(t, core.ColorRed, e.Color)
	assert.Equal(t, 0.0, e.Age(f.clock.Now()), "effects start at age zero")
	assert.Equal(t, core.DefaultLayout().HighlightRect(cell), e.Highlight)

	assert.Equal(t, []core.SoundCue{core.CueRed}, f.sound.cues)
	assert.Empty(t, f.chat.entries)

	require.NotNil(t, f.hook.LastEntry())
	assert.Equal(t, "cell set", f.hook.LastEntry().Message)
	assert.Equal(t, "5,5", f.hook.LastEntry().Data["cell"])
}

func TestWallPlainChatScenario(t *testing.T) {
	f := newWallFixture()

	consumed := f.wall.OnMessage("Bob", "hello there", "#00ff00")
	assert.False(t, consumed)

	assert.Equal(t, 0, f.wall.Board().Len())
	assert.Equal(t, 0, f.wall.Effects().Len())
	assert.Empty(t, f.sound.cues)
	assert.Equal(t, []chatEntry{{"Bob", "hello there", "#00ff00"}}, f.chat.entries)
}

func TestWallOutOfRangeScenario(t *testing.T) {
	f := newWallFixture()

	consumed := f.wall.OnMessage("Eve", "set 99 99 blue", "#0000ff")
	assert.False(t, consumed)

	assert.Equal(t, 0, f.wall.Board().Len())
	assert.Equal(t, 0, f.wall.Effects().Len())
	assert.Empty(t, f.sound.cues)
	assert.Equal(t, []chatEntry{{"Eve", "set 99 99 blue", "#0000ff"}}, f.chat.entries)
}

func TestWallToggleOffStillSpawnsEffect(t *testing.T) {
	f := newWallFixture()

	f.wall.OnMessage("Alice", "set 3 4 blue", "")
	f.wall.OnMessage("Alice", "set 3,4 blue", "")

	_, ok := f.wall.Board().Lookup(core.Cell{Col: 3, Row: 4})
	assert.False(t, ok, "second identical command clears the cell")
	assert.Equal(t, 2, f.wall.Effects().Len())
	assert.Equal(t, []core.SoundCue{core.CueBlue, core.CueBlue}, f.sound.cues)
}

func TestWallSenderColorFallback(t *testing.T) {
	f := newWallFixture()

	f.wall.OnMessage("Mallory", "set 1,1 green", "not a color")
	require.Equal(t, 1, f.wall.Effects().Len())
	assert.Equal(t, core.ColorWhite, f.wall.Effects().Entries()[0].Color)
	assert.Equal(t, []core.SoundCue{core.CuePress}, f.sound.cues)
}

func TestWallCueBuckets(t *testing.T) {
	f := newWallFixture()

	for _, text := range []string{
		"set 1,1 red", "set 1,2 white", "set 1,3 black",
		"set 1,4 yellow", "set 1,5 blue", "set 1,6 #123456",
	} {
		require.True(t, f.wall.OnMessage("v", text, ""), text)
	}
	assert.Equal(t, []core.SoundCue{
		core.CueRed, core.CueWhite, core.CueBlack, core.CueYellow, core.CueBlue, core.CuePress,
	}, f.sound.cues)
}

func TestWallFrameTiming(t *testing.T) {
	f := newWallFixture()

	f.clock.Advance(100 * time.Millisecond)
	fr := f.wall.Frame()
	assert.InDelta(t, 0.1, fr.Elapsed, 1e-9)
	assert.InDelta(t, 0.1, fr.Delta, 1e-9)

	f.clock.Advance(50 * time.Millisecond)
	fr = f.wall.Frame()
	assert.InDelta(t, 0.15, fr.Elapsed, 1e-9)
	assert.InDelta(t, 0.05, fr.Delta, 1e-9)

	// Clock going backwards never yields a negative delta
	f.clock.SetTime(testStart)
	fr = f.wall.Frame()
	assert.Equal(t, 0.0, fr.Delta)
}

func TestWallAdvancePrunesAfterLifetime(t *testing.T) {
	f := newWallFixture()
	f.wall.OnMessage("Alice", "set 5,5 red", "")

	for i := 0; i < 50; i++ {
		f.clock.Advance(100 * time.Millisecond)
		f.wall.Advance(f.wall.Frame())
	}
	assert.Equal(t, 1, f.wall.Effects().Len(), "alive at exactly five seconds")

	f.clock.Advance(100 * time.Millisecond)
	f.wall.Advance(f.wall.Frame())
	assert.Equal(t, 0, f.wall.Effects().Len())

	// Board state outlives the effect
	_, ok := f.wall.Board().Lookup(core.Cell{Col: 5, Row: 5})
	assert.True(t, ok)
}

func TestNewWallDefaults(t *testing.T) {
	w := NewWall(WallConfig{})
	assert.Equal(t, 32, w.Board().Size())
	assert.Equal(t, core.DefaultLayout(), w.Layout())

	// No-op collaborators accept traffic
	assert.False(t, w.OnMessage("a", "hi", ""))
	assert.True(t, w.OnMessage("a", "set 1,1 red", ""))
	w.Advance(w.Frame())
}
