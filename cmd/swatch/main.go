package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mathlibrary/internal/config"
	"mathlibrary/internal/swatch"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to a .json or .yaml config file")
	outputDir := flag.String("out", "", "Output directory (default: swatch)")
	format := flag.String("format", "", "Output format: webp or tga (default: webp)")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersample factor (default: 2)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 8)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	debug := flag.Bool("debug", false, "Log every frame")

	flag.Parse()

	log, err := newLogger(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		cfg, err = config.Load(*configFile)
		if err != nil {
			log.Fatal("load config", zap.Error(err))
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		OutputDir:   *outputDir,
		Format:      *format,
		Size:        *size,
		Supersample: *supersample,
		Frames:      *frames,
		Workers:     *workers,
	})

	log.Info("rendering swatch",
		zap.Int("frames", cfg.Frames),
		zap.Int("size", cfg.Size),
		zap.Int("supersample", cfg.Supersample),
		zap.String("format", cfg.Format),
		zap.String("output", cfg.OutputDir),
		zap.Int("workers", cfg.Workers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	out, err := swatch.Run(ctx, cfg, log)
	if err != nil {
		log.Error("render failed", zap.Error(err))
		stop()
		log.Sync()
		os.Exit(1)
	}

	for _, f := range out {
		log.Info("frame",
			zap.Int("index", f.Index),
			zap.Float32("angle_deg", f.AngleDeg),
			zap.String("path", f.OutputPath),
			zap.String("digest", fmt.Sprintf("%016x", f.Digest)),
		)
	}
	log.Info("done", zap.Duration("elapsed", time.Since(start)))
}

func newLogger(debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	zcfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return zcfg.Build()
}
