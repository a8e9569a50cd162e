package engine

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pixel-wall/command"
	"github.com/lixenwraith/pixel-wall/components"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// ChatLog receives every message that is not a board command
type ChatLog interface {
	AddEntry(displayName, message, color string)
}

// SoundPlayer plays fire-and-forget notification cues
type SoundPlayer interface {
	Play(cue core.SoundCue)
}

// WallConfig wires a Wall to its collaborators
// Nil ChatLog, Sound and Logger are replaced by no-ops; nil Clock and Noise by real ones
type WallConfig struct {
	Layout  core.Layout
	Clock   TimeProvider
	Noise   vmath.NoiseField
	ChatLog ChatLog
	Sound   SoundPlayer
	Logger  logrus.FieldLogger
}

// Frame is the timing of one render tick
type Frame struct {
	Now     time.Time
	Elapsed float64 // Seconds since the wall started
	Delta   float64 // Seconds since the previous frame
}

// Wall is the single owned session instance: board, effects, clock and collaborators
// Not safe for concurrent use; messages and frames must be delivered serially
type Wall struct {
	layout  core.Layout
	board   *Board
	effects *EffectQueue
	clock   TimeProvider
	noise   vmath.NoiseField
	chatLog ChatLog
	sound   SoundPlayer
	log     logrus.FieldLogger

	startedAt time.Time
	lastFrame time.Time
}

// NewWall creates a wall with an empty board, started at the clock's current time
func NewWall(cfg WallConfig) *Wall {
	if cfg.Layout.Columns <= 0 {
		cfg.Layout = core.DefaultLayout()
	}
	if cfg.Clock == nil {
		cfg.Clock = NewMonotonicTimeProvider()
	}
	if cfg.Noise == nil {
		cfg.Noise = vmath.NewPerlinField(time.Now().UnixNano())
	}
	if cfg.ChatLog == nil {
		cfg.ChatLog = discardChatLog{}
	}
	if cfg.Sound == nil {
		cfg.Sound = silentPlayer{}
	}
	if cfg.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.Logger = l
	}

	now := cfg.Clock.Now()
	return &Wall{
		layout:    cfg.Layout,
		board:     NewBoard(cfg.Layout.Columns),
		effects:   NewEffectQueue(),
		clock:     cfg.Clock,
		noise:     cfg.Noise,
		chatLog:   cfg.ChatLog,
		sound:     cfg.Sound,
		log:       cfg.Logger,
		startedAt: now,
		lastFrame: now,
	}
}

// Board returns the board state
func (w *Wall) Board() *Board { return w.board }

// Effects returns the live effect queue
func (w *Wall) Effects() *EffectQueue { return w.effects }

// Layout returns the board geometry
func (w *Wall) Layout() core.Layout { return w.layout }

// OnMessage routes one chat message. Board commands set a cell, spawn a label effect
// and play a cue; everything else goes to the chat log unchanged
// Returns true when the message was consumed as a command
func (w *Wall) OnMessage(displayName, text, senderColor string) bool {
	cmd, ok := command.Parse(text, w.board.Size())
	if !ok {
		w.chatLog.AddEntry(displayName, text, senderColor)
		w.log.WithField("viewer", displayName).Debug("chat forwarded")
		return false
	}

	w.board.TrySetColor(cmd.Cell, cmd.Color)

	labelColor := core.ParseColorOr(senderColor, core.ColorWhite)
	effect := components.NewLabelEffect(w.layout, cmd.Cell, displayName, labelColor, w.clock.Now())
	w.effects.Push(effect)

	cue := core.CueForColor(cmd.Color)
	w.sound.Play(cue)

	w.log.WithFields(logrus.Fields{
		"viewer": displayName,
		"cell":   cmd.Cell.String(),
		"color":  cmd.Color.Hex(),
		"cue":    cue.String(),
		"effect": effect.ID.String(),
	}).Debug("cell set")
	return true
}

// Frame reads the clock for a new render tick and advances the frame baseline
func (w *Wall) Frame() Frame {
	now := w.clock.Now()
	delta := now.Sub(w.lastFrame).Seconds()
	if delta < 0 {
		delta = 0
	}
	w.lastFrame = now

	return Frame{
		Now:     now,
		Elapsed: now.Sub(w.startedAt).Seconds(),
		Delta:   delta,
	}
}

// Advance runs the post-draw passes of a frame: drift, then prune
func (w *Wall) Advance(f Frame) {
	w.effects.Advance(w.noise, f.Elapsed, f.Delta)
	if n := w.effects.Prune(f.Now); n > 0 {
		w.log.WithField("count", n).Debug("effects pruned")
	}
}

type discardChatLog struct{}

func (discardChatLog) AddEntry(string, string, string) {}

type silentPlayer struct{}

func (silentPlayer) Play(core.SoundCue) {}
