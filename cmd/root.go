package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/gomemory/director/random"
	"github.com/they4kman/gomemory/director/recall"
	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/ui/terminal"
	"github.com/they4kman/gomemory/ui/window"
)

type frontEnd int

const (
	Window frontEnd = iota
	Terminal
)

type directorKind int

const (
	NoDirector directorKind = iota
	RandomDirector
	RecallDirector
)

type options struct {
	configPath       string
	pairIDs          []string
	revertDelay      time.Duration
	seed             int64
	columns          int
	ui               frontEnd
	director         directorKind
	directorInterval time.Duration
	logLevel         string
	logFile          string
}

var rootCmd = newRootCommand(&options{})

func newRootCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gomemory",
		Short: "Play manual or computer-driven Memory",
		Long: `gomemory is a game of Memory (matching pairs) which supports human- or
computer-driven playing, in a window or in the terminal.

Run with no arguments to play manually in a window
	gomemory

Play in the terminal instead
	gomemory --ui terminal

Use the director flag to make the computer play for you
	gomemory --director recall
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := opts.gameConfig(cmd.Flags())
			if err != nil {
				return err
			}

			logger, closeLog, err := opts.logger()
			if err != nil {
				return err
			}
			defer closeLog()
			config.Logger = logger

			logger.WithFields(logrus.Fields{
				"pairs":    len(config.PairIDs),
				"ui":       opts.ui.String(),
				"director": opts.director.String(),
			}).Info("starting")

			switch opts.ui {
			case Terminal:
				return terminal.Run(config)
			default:
				pixelgl.Run(func() {
					err = window.Run(config)
				})
				return err
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML file to read game settings from")
	flags.StringSliceVarP(&opts.pairIDs, "pairs", "p", nil, "Comma-separated pair ids; each is dealt twice")
	flags.DurationVar(&opts.revertDelay, "delay", game.DefaultRevertDelay, "How long a mismatched pair stays revealed")
	flags.Int64Var(&opts.seed, "seed", 0, "Shuffle seed (0 picks one from the clock)")
	flags.IntVar(&opts.columns, "columns", game.DefaultColumns, "Cards per row")
	flags.Var(newFrontEndValue(Window, &opts.ui), "ui", `Front end to play in.
window: an OpenGL window, played with the mouse
terminal: the current terminal, played with the mouse or keyboard`)
	flags.VarP(newDirectorValue(NoDirector, &opts.director), "director", "d", `Make the computer play.
none: play manually
random: select random hidden cards
recall: remember every revealed card and match pairs as soon as they are known`)
	flags.DurationVar(&opts.directorInterval, "director-interval", game.DefaultDirectorInterval, "Time between director selections")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level (panic, fatal, error, warn, info, debug, trace)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file; the terminal front end discards logs without one")

	return cmd
}

// gameConfig reads the config file, if any, and applies the flags that were
// set explicitly on top of it.
func (opts *options) gameConfig(flags *pflag.FlagSet) (game.GameConfig, error) {
	config := game.NewGameConfig()
	if opts.configPath != "" {
		var err error
		if config, err = game.LoadConfig(opts.configPath); err != nil {
			return game.GameConfig{}, err
		}
	}

	if flags.Changed("pairs") {
		config.PairIDs = opts.pairIDs
	}
	if flags.Changed("delay") {
		config.RevertDelay = opts.revertDelay
	}
	if flags.Changed("seed") {
		config.Seed = opts.seed
	}
	if flags.Changed("columns") {
		config.Columns = opts.columns
	}
	if flags.Changed("director-interval") {
		config.DirectorInterval = opts.directorInterval
	}

	if err := config.Validate(); err != nil {
		return game.GameConfig{}, err
	}

	switch opts.director {
	case RandomDirector:
		director := &random.Director{Seed: config.Seed}
		director.Interval = config.DirectorInterval
		config.Director = director
	case RecallDirector:
		director := &recall.Director{Seed: config.Seed}
		director.Interval = config.DirectorInterval
		config.Director = director
	}

	return config, nil
}

func (opts *options) logger() (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(level)

	closeLog := func() {}
	switch {
	case opts.logFile != "":
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, err
		}
		logger.SetOutput(file)
		closeLog = func() { file.Close() }
	case opts.ui == Terminal:
		logger.SetOutput(ioutil.Discard)
	}
	return logger, closeLog, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

type frontEndValue frontEnd

func newFrontEndValue(val frontEnd, p *frontEnd) *frontEndValue {
	*p = val
	return (*frontEndValue)(p)
}

var frontEnds = map[string]frontEnd{
	"window":   Window,
	"terminal": Terminal,
}

func (ui frontEnd) String() string {
	for name, value := range frontEnds {
		if value == ui {
			return name
		}
	}
	return fmt.Sprint(int(ui))
}

func (val *frontEndValue) String() string {
	return frontEnd(*val).String()
}

func (val *frontEndValue) Set(value string) error {
	if ui, isValid := frontEnds[value]; isValid {
		*val = frontEndValue(ui)
		return nil
	}
	return fmt.Errorf("invalid front end %q", value)
}

func (val *frontEndValue) Type() string {
	return "ui"
}

type directorValue directorKind

func newDirectorValue(val directorKind, p *directorKind) *directorValue {
	*p = val
	return (*directorValue)(p)
}

var directorKinds = map[string]directorKind{
	"none":   NoDirector,
	"random": RandomDirector,
	"recall": RecallDirector,
}

func (kind directorKind) String() string {
	for name, value := range directorKinds {
		if value == kind {
			return name
		}
	}
	return fmt.Sprint(int(kind))
}

func (val *directorValue) String() string {
	return directorKind(*val).String()
}

func (val *directorValue) Set(value string) error {
	if kind, isValid := directorKinds[value]; isValid {
		*val = directorValue(kind)
		return nil
	}
	return fmt.Errorf("invalid director %q", value)
}

func (val *directorValue) Type() string {
	return "director"
}
