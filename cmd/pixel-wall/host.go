package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/pixel-wall/audio"
	"github.com/lixenwraith/pixel-wall/chat"
	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/engine"
	"github.com/lixenwraith/pixel-wall/input"
	"github.com/lixenwraith/pixel-wall/render"
	"github.com/lixenwraith/pixel-wall/render/renderers"
	"github.com/lixenwraith/pixel-wall/vmath"
)

const scriptDefaultName = "viewer"

// loadScript reads the replay file, nil when no script was requested
func loadScript(path string) ([]chat.Message, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	msgs, err := chat.ReadScript(f, scriptDefaultName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return msgs, nil
}

// startSound brings up audio; failure leaves a silent manager and is only logged
func startSound(opts *options, log logrus.FieldLogger) *audio.SoundManager {
	sm := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sm.Initialize(); err != nil {
		if errors.Is(err, audio.ErrAudioDisabled) {
			log.Info("audio disabled by configuration")
		} else {
			log.WithError(err).Warn("audio initialization failed, continuing without audio")
		}
	}
	sm.SetMuted(opts.mute)
	return sm
}

func run(opts *options) error {
	logger, logFile := setupLogging(opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	script, err := loadScript(opts.script)
	if err != nil {
		return err
	}

	localColor, ok := core.ParseColor(opts.color)
	if !ok {
		return fmt.Errorf("unknown color %q", opts.color)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sm := startSound(opts, logger)
	defer sm.Cleanup()

	layout := core.DefaultLayout()
	chatLog := chat.NewLog(constants.ChatLogCapacity, nil)

	wall := engine.NewWall(engine.WallConfig{
		Layout:  layout,
		Noise:   vmath.NewPerlinField(opts.seed),
		ChatLog: chatLog,
		Sound:   sm,
		Logger:  logger,
	})

	width, height := screen.Size()
	canvas := render.NewTerminalCanvas(render.NewBuffer(width, height), render.ProjectionFor(layout), screen)

	prompt := input.NewPrompt(constants.PromptMaxLength)
	chatPanel := renderers.NewChatLogRenderer(chatLog, layout)

	orchestrator := render.NewOrchestrator()

	type rendererDef struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}

	rendererList := []rendererDef{
		{renderers.NewGridRenderer(wall), render.PriorityGrid},
		{renderers.NewAxisLabelRenderer(wall), render.PriorityLabels},
		{renderers.NewEffectsRenderer(wall, rand.New(rand.NewSource(opts.seed))), render.PriorityEffects},
		{renderers.NewPromptRenderer(prompt, layout, opts.name, localColor), render.PriorityUI},
		{chatPanel, render.PriorityOverlay},
	}

	for _, def := range rendererList {
		orchestrator.Register(def.renderer, def.priority)
	}

	logger.WithFields(logrus.Fields{
		"seed":   opts.seed,
		"script": len(script),
		"width":  width,
		"height": height,
	}).Info("wall started")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	eventChan := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	scriptChan := make(chan chat.Message)
	if len(script) > 0 {
		go func() {
			if err := chat.Replay(ctx, script, opts.interval, scriptChan); err == nil {
				logger.Info("script replay finished")
			}
		}()
	}

	frameInterval := constants.FrameUpdateInterval
	if opts.fps > 0 {
		frameInterval = time.Second / time.Duration(opts.fps)
	}
	frameTicker := time.NewTicker(frameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			intent := prompt.Process(ev)
			switch intent.Type {
			case input.IntentQuit:
				logger.Info("quit requested")
				return nil
			case input.IntentSubmit:
				wall.OnMessage(opts.name, intent.Text, opts.color)
			case input.IntentToggleMute:
				logger.WithField("muted", sm.ToggleMute()).Debug("mute toggled")
			case input.IntentTogglePanel:
				chatPanel.Toggle()
			case input.IntentResize:
				w, h := screen.Size()
				canvas.Resize(w, h)
			}

		case msg := <-scriptChan:
			wall.OnMessage(msg.Name, msg.Text, msg.Color)

		case <-frameTicker.C:
			frame := wall.Frame()
			orchestrator.RenderFrame(render.NewContext(frame), canvas)
			wall.Advance(frame)
		}
	}
}
