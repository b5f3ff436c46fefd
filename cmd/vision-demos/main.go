package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/vision-demos/internal/config"
	"github.com/ironsheep/vision-demos/internal/detection"
	"github.com/ironsheep/vision-demos/internal/server"
	"github.com/ironsheep/vision-demos/internal/web"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func printUsage() {
	fmt.Println("vision-demos - face detection, image processing and sentiment demos")
	fmt.Println()
	fmt.Println("Usage: vision-demos [options] [mcp|web]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  mcp              Serve the demos as MCP tools over stdin/stdout (default)")
	fmt.Println("  web              Serve the demos as web pages")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --config FILE    Read settings from FILE (YAML)")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  VISION_DEMOS_LOG_LEVEL=debug        Enable debug logging")
	fmt.Println("  VISION_DEMOS_SERVER_PORT=8080       Web listen port")
	fmt.Println("  VISION_DEMOS_FACE_CASCADE_PATH=...  Face classifier file (default: embedded)")
	fmt.Println()
	fmt.Println("A .env file in the working directory is loaded first.")
}

func main() {
	command := "mcp"
	configFile := ""

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--version" || arg == "-v" || arg == "version":
			fmt.Printf("vision-demos %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case arg == "--help" || arg == "-h" || arg == "help":
			printUsage()
			return
		case arg == "--config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--config requires a file name")
				os.Exit(2)
			}
			i++
			configFile = args[i]
		case strings.HasPrefix(arg, "--config="):
			configFile = strings.TrimPrefix(arg, "--config=")
		case arg == "mcp" || arg == "web":
			command = arg
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n\n", arg)
			printUsage()
			os.Exit(2)
		}
	}

	// Logs go to stderr: stdout carries the MCP protocol.
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if command == "web" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		logger.Fatalf("Configuration error: %v", err)
	}
	level, _ := logrus.ParseLevel(cfg.Log.Level)
	logger.SetLevel(level)

	logger.Debugf("Vision demos v%s (built %s, commit %s)", Version, BuildTime, GitCommit)

	var detector detection.FaceDetector
	cascade, err := detection.NewCascadeDetector(cfg.Face.DetectorParams())
	if err != nil {
		logger.WithError(err).Warn("Face detection disabled")
	} else {
		defer cascade.Close()
		detector = cascade
	}

	switch command {
	case "web":
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		h := web.NewHandler(detector, cfg.Upload.MaxBytes)
		if err := web.ListenAndServe(ctx, cfg, h, logger); err != nil {
			logger.Fatalf("Web server error: %v", err)
		}
	default:
		srv := server.New(detector, logger, Version)
		if err := srv.Run(); err != nil {
			logger.Fatalf("Server error: %v", err)
		}
	}
}
