package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/pixel-wall/constants"
)

// options holds the parsed command line
type options struct {
	debug    bool
	script   string
	interval time.Duration
	name     string
	color    string
	fps      int
	seed     int64
	mute     bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "pixel-wall",
		Short: "Shared 32x32 pixel wall painted from chat commands",
		Long: "pixel-wall renders a shared pixel board in the terminal.\n" +
			"Type \"set <col> <row> <color>\" to paint a cell, anything else goes to the chat panel.\n" +
			"Tab toggles the panel, Ctrl+S mutes, Ctrl+Q quits.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}
			return run(opts)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.debug, "debug", false, "write debug logs to "+logDir+"/"+logFileName)
	f.StringVar(&opts.script, "script", "", "replay chat lines from a file (name|color|message per line)")
	f.DurationVar(&opts.interval, "interval", constants.ScriptMessageInterval, "delay between replayed script lines")
	f.StringVar(&opts.name, "name", "you", "display name for messages typed at the prompt")
	f.StringVar(&opts.color, "color", "white", "label color for messages typed at the prompt")
	f.IntVar(&opts.fps, "fps", int(time.Second/constants.FrameUpdateInterval), "render frames per second")
	f.Int64Var(&opts.seed, "seed", 0, "seed for drift noise and highlight colors (0 picks one)")
	f.BoolVar(&opts.mute, "mute", false, "start with sound muted")

	return cmd
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPIXEL-WALL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Missing .env is not an error
	_ = godotenv.Load()

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
