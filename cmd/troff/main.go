package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/troff/asset"
	"github.com/lixenwraith/troff/audio"
	"github.com/lixenwraith/troff/config"
	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/core"
	"github.com/lixenwraith/troff/engine"
	"github.com/lixenwraith/troff/events"
	"github.com/lixenwraith/troff/modes"
	"github.com/lixenwraith/troff/network"
	"github.com/lixenwraith/troff/render"
	"github.com/lixenwraith/troff/render/renderers"
	"github.com/lixenwraith/troff/systems"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write logs and the event trace to logs/troff.log")
	demoFlag     = flag.String("demo", "", "Attract mode script (TOML), overrides the config file")
	configFlag   = flag.String("config", "", "Config file (TOML)")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
	seedFlag     = flag.Uint64("seed", 0, "Random seed for item placement, 0 picks one from the clock")
	spectateFlag = flag.String("spectate", "", "Serve the spectator websocket feed on this address")
	envFlag      = flag.String("env", ".env", "File with TROFF_ setting overrides")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "troff: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	env, err := config.Environment(*envFlag)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(env); err != nil {
		return err
	}
	if *spectateFlag != "" {
		cfg.SpectateAddr = *spectateFlag
	}
	if *demoFlag != "" {
		cfg.DemoScript = *demoFlag
	}
	if *muteFlag {
		cfg.Mute = true
	}

	script, err := config.LoadDemoScript(cfg.DemoScript)
	if err != nil {
		log.Printf("%v, using the built-in demo", err)
		if script, err = config.LoadDemoScript(""); err != nil {
			return err
		}
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	core.SetCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

	screen.SetStyle(render.StyleBackground)
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	arena, err := engine.NewArena(cols, rows, cfg.GridUnit, cfg.StartInset)
	if err != nil {
		return err
	}
	ctx := engine.NewGameContext(arena, seed)
	log.Printf("arena %dx%d unit %d inset %d, seed %d", arena.Width, arena.Height, arena.Unit, arena.Inset, seed)

	sound := audio.NewSoundManager(seed)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(cfg.Mute)

	// Systems
	attract := systems.NewAttractSystem(ctx, script)
	attract.SetIdleTimeout(cfg.IdleTimeout)
	match, err := systems.NewMatchSystem(ctx, attract, asset.MatchFSMConfig, cfg.WinTarget)
	if err != nil {
		return err
	}
	background := systems.NewBackgroundSystem(ctx)
	ctx.Scheduler.Subscribe(background.Update)

	// Presentation handlers
	banner := renderers.NewBannerRenderer()
	router := events.NewRouter[*engine.GameContext](ctx.Events)
	router.Register(systems.NewAudioSystem(sound))
	router.Register(banner)
	if *debugFlag {
		router.Register(systems.NewEventLogSystem(log.Default()))
	}
	if cfg.SpectateAddr != "" {
		netCfg := network.DefaultConfig()
		netCfg.Address = cfg.SpectateAddr
		feed := network.NewTransport(netCfg, arena.Width, arena.Height)
		if err := feed.Start(); err != nil {
			return err
		}
		defer feed.Stop()
		router.Register(systems.NewSpectatorSystem(feed))
	}

	status := renderers.NewStatusRenderer(match, attract)
	status.Muted = sound.Muted

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderers.NewBackgroundRenderer(background), render.PriorityBackground)
	orchestrator.Register(renderers.NewArenaRenderer(), render.PriorityWall)
	orchestrator.Register(renderers.NewItemsRenderer(match, attract), render.PriorityItems)
	orchestrator.Register(renderers.NewCycleRenderer(match, attract), render.PriorityTrails)
	orchestrator.Register(renderers.NewCountdownRenderer(match), render.PriorityEffects)
	orchestrator.Register(renderers.NewAboutRenderer(attract), render.PriorityText)
	orchestrator.Register(renderers.NewWinsRenderer(match, attract), render.PriorityText)
	orchestrator.Register(status, render.PriorityUI)
	orchestrator.Register(banner, render.PriorityOverlay)

	input := modes.NewInputHandler(match, attract, sound)
	input.OnResize = orchestrator.Resize

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	attract.StartDemo()

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()
	clock := engine.NewFrameClock(engine.NewTimeProvider(), constants.MaxTickDelta)

	for {
		select {
		case ev := <-eventChan:
			if !input.HandleEvent(ev) {
				log.Printf("quit at tick %d", ctx.Scheduler.TickCount())
				return nil
			}

		case <-ticker.C:
			ctx.Scheduler.Tick(clock.Delta())
			router.DispatchAll(ctx)

			w, h := orchestrator.Size()
			rc := render.NewRenderContext(ctx, w, h)
			input.OffsetX, input.OffsetY = rc.OffsetX, rc.OffsetY
			orchestrator.RenderFrame(rc)
		}
	}
}
