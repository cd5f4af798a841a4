package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"the-snake/config"
	"the-snake/game"
	"the-snake/sound"
	"the-snake/ui"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	cfg      config.Config
	logLevel string
	logFile  string
	mute     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:          "snake",
		Short:        "snake plays the classic arcade game in a window or a terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.cfg.ScreenWidth, "width", opts.cfg.ScreenWidth, "board width in pixels")
	f.IntVar(&opts.cfg.ScreenHeight, "height", opts.cfg.ScreenHeight, "board height in pixels")
	f.IntVar(&opts.cfg.CellSize, "cell", opts.cfg.CellSize, "cell size in pixels")
	f.IntVar(&opts.cfg.Speed, "speed", opts.cfg.Speed, "initial speed in ticks per second")
	f.IntVar(&opts.cfg.MaxSpeed, "max-speed", opts.cfg.MaxSpeed, "highest speed reachable with the speed keys")
	f.Uint64Var(&opts.cfg.Seed, "seed", opts.cfg.Seed, "random seed, 0 for a time based one")
	f.StringVar(&opts.cfg.Backend, "backend", opts.cfg.Backend, "renderer: window or terminal")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&opts.mute, "mute", false, "disable sound")

	return cmd
}

func run(c *cobra.Command, opts *options) error {
	if err := opts.cfg.Validate(); err != nil {
		return err
	}
	closeLog, err := setupLogging(opts)
	if err != nil {
		return err
	}
	defer closeLog()

	backend, err := ui.Open(opts.cfg)
	if err != nil {
		return errors.Wrap(err, "opening display")
	}
	defer backend.Close()

	g, err := game.NewGame(opts.cfg, backend, backend, log.StandardLogger())
	if err != nil {
		return err
	}

	if !opts.mute {
		player := sound.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.WithError(err).Warn("sound disabled")
		} else {
			defer player.Close()
			g.SetSound(player)
		}
	}

	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return game.Run(ctx, g)
}

// setupLogging configures the standard logrus logger. The terminal backend
// owns the screen, so without a log file its logs are dropped.
func setupLogging(opts *options) (func(), error) {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	switch {
	case opts.logFile != "":
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrapf(err, "opening log file %s", opts.logFile)
		}
		log.SetOutput(f)
		return func() { f.Close() }, nil
	case opts.cfg.Backend == config.BackendTerminal:
		log.SetOutput(io.Discard)
	default:
		log.SetOutput(os.Stderr)
	}
	return func() {}, nil
}
