// gesture-tracer decodes Android touch telemetry from adb into semantic
// gestures, with OpenTelemetry span integration.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/mrzor/gesture-tracer/internal/adb"
	"github.com/mrzor/gesture-tracer/internal/attributes"
	"github.com/mrzor/gesture-tracer/internal/config"
	"github.com/mrzor/gesture-tracer/internal/coordscale"
	"github.com/mrzor/gesture-tracer/internal/eventstream"
	"github.com/mrzor/gesture-tracer/internal/gesture"
	"github.com/mrzor/gesture-tracer/internal/otel"
	"github.com/mrzor/gesture-tracer/internal/output"
	"github.com/mrzor/gesture-tracer/internal/touchstate"
)

// Version information injected by GoReleaser at build time.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// setupOTEL initializes the provider and opens the run-level root span all
// gesture spans parent under. Returns the root context, a tracer and a
// cleanup function.
func setupOTEL(cfg *config.OTELConfig) (context.Context, trace.Tracer, func(), error) {
	tp, err := otel.InitProvider(cfg, fmt.Sprintf("%s (%s)", version, commit))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize OTEL provider: %w", err)
	}

	tracer := tp.Tracer("gesture-tracer")
	rootCtx, rootSpan := tracer.Start(context.Background(), "gesture-tracer.run")

	cleanup := func() {
		rootSpan.End()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := otel.ShutdownProvider(tp, shutdownCtx); err != nil {
			log.Printf("Error shutting down OTEL provider: %v", err)
		}
	}

	return rootCtx, tracer, cleanup, nil
}

// buildEmitters assembles the gesture fan-out: console, optional action
// log, optional broadcast bridge, optional span formatter.
func buildEmitters(
	cfg *config.Config,
	det *config.DetectorConfig,
	console *output.ConsoleFormatter,
	rootCtx context.Context,
	tracer trace.Tracer,
	evaluator *attributes.Evaluator,
) (output.Multi, func(), error) {
	handlers := output.Multi{console}
	cleanup := func() {}

	if cfg.ActionLogPath != "" {
		actionLog, err := output.OpenActionLog(cfg.ActionLogPath)
		if err != nil {
			return nil, nil, err
		}
		handlers = append(handlers, actionLog)
		cleanup = func() {
			if err := actionLog.Close(); err != nil {
				log.Printf("Error closing action log: %v", err)
			}
		}
	}

	if cfg.ServicePackage != "" {
		handlers = append(handlers, adb.New(det.ADBPath, cfg.ServicePackage))
	}

	if tracer != nil {
		handlers = append(handlers, output.NewOTELFormatter(rootCtx, tracer, evaluator))
	}

	return handlers, cleanup, nil
}

// openSource returns the raw line source: standard input or a live
// getevent stream from the debug bridge.
func openSource(ctx context.Context, cfg *config.Config, det *config.DetectorConfig) (io.Reader, *exec.Cmd, error) {
	if cfg.Stdin {
		return os.Stdin, nil, nil
	}

	bridge := adb.New(det.ADBPath, cfg.ServicePackage)
	return bridge.StartGetevent(ctx)
}

func run() error {
	cfg, err := config.ParseArgs(os.Args)
	if err != nil {
		return err
	}

	det, err := config.ParseDetectorConfig()
	if err != nil {
		return err
	}

	otelCfg, err := config.ParseOTELConfig()
	if err != nil {
		return err
	}

	// Compile custom attribute expressions up front so a bad one aborts
	// startup even when span export is disabled.
	var evaluator *attributes.Evaluator
	if len(cfg.CustomAttributes) > 0 {
		evaluator, err = attributes.NewEvaluator(cfg.CustomAttributes)
		if err != nil {
			return err
		}
	}

	log.Printf("Starting gesture-tracer %s (commit: %s)", version, commit)

	rootCtx := context.Background()
	var tracer trace.Tracer
	if !otelCfg.Disabled {
		var cleanupOTEL func()
		rootCtx, tracer, cleanupOTEL, err = setupOTEL(otelCfg)
		if err != nil {
			return err
		}
		defer cleanupOTEL()
	}

	console := output.NewConsoleFormatter(os.Stdout)
	emitters, cleanupEmitters, err := buildEmitters(cfg, det, console, rootCtx, tracer, evaluator)
	if err != nil {
		return err
	}
	defer cleanupEmitters()

	var scaler *coordscale.Scaler
	if det.ScalingEnabled() {
		scaler = coordscale.New(det.RawMaxX, det.RawMaxY, det.TargetX, det.TargetY)
	}

	classifier := gesture.NewClassifier(det.Thresholds(), emitters)
	tracker := touchstate.New(scaler, time.Now, classifier)
	tracker.OnSessionOpen(console.SessionOpened)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source, geteventCmd, err := openSource(ctx, cfg, det)
	if err != nil {
		return err
	}

	stream := eventstream.New(source, tracker)
	if err := stream.Start(ctx); err != nil {
		return err
	}

	if cfg.ServicePackage != "" {
		log.Printf("Broadcasting gestures to %s", cfg.ServicePackage)
	}
	log.Println("Decoding gestures, press Ctrl+C to stop")

	// Wait for a signal or for the source to end.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigCh:
		log.Println("Received signal, stopping...")
		if err := stream.Stop(); err != nil {
			log.Printf("Error stopping stream: %v", err)
		}
	case <-stream.Done():
	}

	if geteventCmd != nil {
		// Kill getevent if it is still running, then reap it.
		cancel()
		if err := geteventCmd.Wait(); err != nil {
			log.Printf("getevent exited: %v", err)
		}
	}

	return nil
}
