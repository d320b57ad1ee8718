package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/console"
	"github.com/vancomm/minesweeper-console/internal/logging"
)

// errShellDone ends the group once the player quits, so the watcher stops.
var errShellDone = errors.New("shell done")

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)

	err := run(ctx, os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig(args []string, stderr io.Writer) (cfg config.Config, exit bool, err error) {
	const usage = "config file path"

	var (
		configPath string
		seed       uint64
		styled     bool
	)
	fs := flag.NewFlagSet("minesweeper", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&configPath, "config", "", usage)
	fs.StringVar(&configPath, "c", "", usage+" (shorthand)")
	fs.Uint64Var(&seed, "seed", 0, "seed for mine placement (0 picks a random seed)")
	fs.BoolVar(&styled, "styled", false, "colour the board")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return cfg, true, nil
		}
		return cfg, false, err
	}

	cfg = config.Default()
	if configPath != "" {
		if err := config.Read(configPath, &cfg); err != nil {
			return cfg, false, fmt.Errorf("unable to read config %s: %w", configPath, err)
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, false, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "styled":
			cfg.Styled = styled
		}
	})

	return cfg, false, nil
}

func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cfg, exit, err := loadConfig(args, stderr)
	if err != nil || exit {
		return err
	}

	log, err := logging.New(cfg, stderr)
	if err != nil {
		return err
	}

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	shell := console.NewShell(
		stdin, stdout,
		createRand(cfg.Seed),
		console.NewRenderer(cfg.Styled),
		log,
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := shell.Run(gCtx); err != nil {
			return err
		}
		return errShellDone
	})
	g.Go(func() error {
		<-gCtx.Done()
		return shell.Close()
	})

	switch err = g.Wait(); {
	case errors.Is(err, errShellDone):
		log.Info("bye")
		return nil
	case ctx.Err() != nil:
		log.WithError(err).Info("interrupted")
		return nil
	default:
		log.Error("exit reason: ", err)
		return err
	}
}
