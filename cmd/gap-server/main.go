package main

import (
	"fmt"
	"log"
	"os"

	"github.com/slidekit/gapfinder/internal/config"
	"github.com/slidekit/gapfinder/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("gap-server %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("gap-server - slider captcha solving service")
			fmt.Println()
			fmt.Println("Usage: gap-server [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PORT                  HTTP listen port (default 8080)")
			fmt.Println("  GAP_LOG_LEVEL         Set to debug for startup details")
			fmt.Println("  GAP_MAX_BODY_BYTES    Request body cap (default 10 MiB)")
			fmt.Println("  GAP_EDGE_MARGIN       Scan window margin in columns (default 5)")
			fmt.Println("  GAP_DROP_THRESHOLD    Minimum scoring brightness drop (default 15)")
			fmt.Println("  GAP_OCR_LANGUAGE      Default Tesseract language (default eng)")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg := config.Load()
	if cfg.LogLevel == "debug" {
		log.Printf("gap-server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("scan tuning: margin=%d drop-threshold=%d", cfg.EdgeMargin, cfg.DropThreshold)
	}

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
