// Command fps-sandbox drives one first person entity from the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/fps-model/audio"
	"github.com/lixenwraith/fps-model/config"
	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/input"
	"github.com/lixenwraith/fps-model/logger"
)

var configPath = flag.String("config", "", "TOML file layered over the defaults (empty uses the built-in sandbox)")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fps-sandbox: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Sandbox()
	}
	return config.Load(path)
}

func run() error {
	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	log, closer, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	keys, err := input.NewKeyTable(cfg.Keys)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	defer recoverCrash(fini, log)

	sound := audio.NewSoundManager(audio.NewSettings(cfg.Audio), logrus.NewEntry(log))
	if err := sound.Initialize(); err != nil {
		return err
	}
	defer sound.Cleanup()

	hud := newScreenHUD(screen)
	sb, err := newSandbox(cfg, log, hud, sound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan tcell.Event, 64)

	sched := engine.NewScheduler(sb.world, cfg.Engine.TickInterval(), logrus.NewEntry(log))
	sched.BeforeTick = func(time.Duration) {
		for {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if !sb.press(keys.Lookup(ev)) {
						cancel()
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				sb.in.Expire(sb.world.Clock.Now())
				return
			}
		}
	}
	sched.AfterTick = func() {
		hud.draw(sb)
		sb.in.EndTick()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// PollEvent returns nil once the screen is finalized
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		defer fini()
		defer recoverCrash(fini, log)
		return sched.Run(gctx)
	})
	return g.Wait()
}

// recoverCrash restores the terminal before reporting a panic
func recoverCrash(fini func(), log *logrus.Logger) {
	if r := recover(); r != nil {
		fini()
		log.WithField("panic", r).Error("sandbox crashed")
		fmt.Fprintf(os.Stderr, "\nfps-sandbox crashed: %v\nStack Trace:\n%s\n", r, debug.Stack())
		os.Exit(1)
	}
}
