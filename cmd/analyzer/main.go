package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"customer-care-assistant/config"
	"customer-care-assistant/internal/gateway"
	"customer-care-assistant/internal/nlp"
	"customer-care-assistant/pkg/log"
)

const reportTemperature = 0.2

// analyzer is a one-shot CLI: it reads a call transcript from a file (or
// stdin with "-"), asks the model for a quality-analyst report and prints
// the report text.
func main() {
	transcriptPath := flag.String("transcript", "-", "path to transcript file, or - for stdin")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	transcript, err := readTranscript(*transcriptPath)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read transcript: %v", err)
	}
	if strings.TrimSpace(transcript) == "" {
		logger.Fatal(ctx, "Transcript is empty")
	}

	gw := gateway.New(logger, gateway.Config{
		APIKey:    cfg.Groq.APIKey,
		BaseURL:   cfg.Groq.BaseURL,
		Model:     cfg.Groq.Model,
		Timeout:   cfg.Groq.Timeout,
		CacheSize: cfg.Groq.CacheSize,
	})
	if !gw.Enabled() {
		logger.Fatal(ctx, "Model gateway disabled; set the API key and base URL")
	}

	report := gw.Complete(ctx, nlp.BuildCallReportPrompt(transcript), reportTemperature)
	if gateway.IsError(report) {
		logger.Fatalf(ctx, "Analysis failed: %s", report)
	}

	fmt.Println(report)
}

func readTranscript(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
