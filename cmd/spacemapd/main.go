package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signalsfoundry/space-map/catalog"
	"github.com/signalsfoundry/space-map/core"
	"github.com/signalsfoundry/space-map/internal/api"
	"github.com/signalsfoundry/space-map/internal/logging"
	"github.com/signalsfoundry/space-map/internal/observability"
	"github.com/signalsfoundry/space-map/timectrl"
)

func main() {
	listen := flag.String("listen", ":8080", "control API listen address")
	scenarioPath := flag.String("scenario", "configs/viewer_scenario.json", "viewer scenario JSON")
	frameInterval := flag.Duration("frame-interval", timectrl.DefaultFrameInterval, "frame tick interval")
	accelerated := flag.Bool("accelerated", false, "advance simulation time faster than wall-clock")
	flag.Parse()

	log := logging.NewFromEnv()
	ctx := context.Background()

	shutdownTracing, err := observability.InitTracing(ctx, observability.TracingConfigFromEnv(), log)
	if err != nil {
		log.Error(ctx, "tracing init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	defer observability.ShutdownWithTimeout(ctx, shutdownTracing, log)

	// ==== Satellite catalog + ephemeris ====

	cat := catalog.New()
	ephemeris := core.NewSGP4Ephemeris()

	// Catalog changes (adds, TLE refreshes) rebuild the affected propagator.
	cat.Subscribe(func(ev catalog.Event) {
		if err := ephemeris.Load(ev.Satellite); err != nil {
			log.Warn(ctx, "ephemeris load failed",
				logging.String("satellite", ev.Satellite.Name),
				logging.String("error", err.Error()),
			)
		}
	})

	f, err := os.Open(*scenarioPath)
	if err != nil {
		log.Error(ctx, "open scenario failed", logging.String("path", *scenarioPath), logging.String("error", err.Error()))
		os.Exit(1)
	}
	scenario, err := core.LoadViewerScenario(cat, f)
	f.Close()
	if err != nil {
		log.Error(ctx, "load scenario failed", logging.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info(ctx, "scenario loaded",
		logging.Int("satellites", len(scenario.SatelliteNames)),
		logging.String("initial_scene", scenario.InitialScene.String()),
		logging.String("initial_quality", scenario.InitialQuality.String()),
	)

	// ==== View engine ====

	collector, err := observability.NewViewerCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Error(ctx, "metrics init failed", logging.String("error", err.Error()))
		os.Exit(1)
	}

	cameraCfg := core.DefaultCameraConfig()
	if scenario.PlanetRadiusKm > 0 {
		cameraCfg = core.CameraConfig{PlanetRadiusKm: scenario.PlanetRadiusKm}
	}
	camera := core.NewCamera(cameraCfg)
	selector := core.NewSceneSelector(ephemeris)
	engine := core.NewViewEngine(camera, selector, ephemeris, collector)

	engine.SetScene(scenario.InitialScene)
	engine.SetQuality(scenario.InitialQuality)
	if scenario.TrackedSatellite != "" {
		engine.SetTrackedSatellite(scenario.TrackedSatellite)
	}

	// ==== Frame clock ====

	mode := timectrl.RealTime
	if *accelerated {
		mode = timectrl.Accelerated
	}
	tc := timectrl.NewTimeController(time.Now().UTC(), *frameInterval, mode)

	var lastStepError string
	tc.AddListener(func(simTime time.Time) {
		if _, err := engine.Step(simTime); err != nil {
			// One warning per distinct failure, not one per frame.
			if msg := err.Error(); msg != lastStepError {
				lastStepError = msg
				log.Warn(ctx, "frame step failed", logging.String("error", msg))
			}
			return
		}
		lastStepError = ""
	})

	// ==== Control API ====

	server := api.NewServer(engine, cat, log, collector)
	go func() {
		log.Info(ctx, "control API listening", logging.String("addr", *listen))
		if err := server.Run(*listen); err != nil {
			log.Error(ctx, "control API stopped", logging.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	fmt.Printf("spacemapd: frame interval %s, scenario %s, listening on %s\n",
		*frameInterval, *scenarioPath, *listen)
	done := tc.Start(0)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info(ctx, "shutting down")
	tc.Stop()
	<-done
}
