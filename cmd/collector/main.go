package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eprasetya/vlrscout/internal/app"
	"github.com/eprasetya/vlrscout/internal/collector"
	"github.com/eprasetya/vlrscout/internal/config"
	"github.com/eprasetya/vlrscout/internal/export"
	"github.com/eprasetya/vlrscout/internal/platform/logging"
)

func main() {
	eventID := flag.Int64("event", 0, "vlr.gg event id to collect (required)")
	matches := flag.Bool("matches", false, "collect the match list")
	eventStats := flag.Bool("event-stats", false, "collect aggregated player stats")
	mapsAgents := flag.Bool("maps-agents", false, "collect agent pick rates and map stats")
	details := flag.Bool("details", false, "collect per-match overview pages")
	economyStage := flag.Bool("economy", false, "collect per-match economy pages")
	performanceStage := flag.Bool("performance", false, "collect per-match performance pages")
	detailLimit := flag.Int("detail-limit", 0, "cap on completed matches to fetch per-match pages for (0 = all)")
	outPath := flag.String("out", "", "write the collected archive as a zip to this path")
	flag.Parse()

	if *eventID <= 0 {
		fmt.Fprintln(os.Stderr, "usage: collector -event <id> [stage flags] [-out file.zip]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if *detailLimit > 0 {
		cfg.DetailLimit = *detailLimit
	}

	logger := logging.NewJSON(logging.ParseLevel(cfg.LogLevel)).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
	)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	runCfg := collector.Config{
		Matches:     *matches,
		EventStats:  *eventStats,
		MapsAgents:  *mapsAgents,
		Details:     *details,
		Economy:     *economyStage,
		Performance: *performanceStage,
		DetailLimit: cfg.DetailLimit,
	}
	if !runCfg.Matches && !runCfg.EventStats && !runCfg.MapsAgents &&
		!runCfg.Details && !runCfg.Economy && !runCfg.Performance {
		runCfg = collector.Config{
			Matches: true, EventStats: true, MapsAgents: true,
			Details: true, Economy: true, Performance: true,
			DetailLimit: cfg.DetailLimit,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := app.NewCollector(cfg, logger, printProgress)
	res, err := c.Run(ctx, *eventID, runCfg)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		logger.Error("collection failed", "event_id", *eventID, "error", err)
		os.Exit(1)
	}

	for _, itemErr := range res.Errors {
		logger.Warn("item failed", "item", itemErr.Item, "error", itemErr.Err)
	}
	logger.Info("collection finished",
		"event_id", *eventID,
		"succeeded", len(res.Succeeded),
		"failed", len(res.Errors),
		"canceled", res.Canceled,
		"duration", res.FinishedAt.Sub(res.StartedAt).Round(time.Second).String())

	// Persist even when the run was cancelled mid-way.
	persistCtx := context.WithoutCancel(ctx)
	svcs, err := app.BuildServices(persistCtx, cfg, logger)
	if err != nil {
		logger.Error("build services", "error", err)
		os.Exit(1)
	}
	defer func() { _ = svcs.Close() }()

	if cfg.DBURL != "" {
		if err := svcs.Archive.SaveResult(persistCtx, res); err != nil {
			logger.Error("persist result", "event_id", *eventID, "error", err)
			os.Exit(1)
		}
	}

	if *outPath != "" {
		if err := writeArchive(persistCtx, svcs.Export, res, *outPath); err != nil {
			logger.Error("write archive", "path", *outPath, "error", err)
			os.Exit(1)
		}
		logger.Info("archive written", "path", *outPath)
	}

	if len(res.Errors) > 0 {
		os.Exit(1)
	}
}

func printProgress(p collector.Progress) {
	eta := ""
	if p.ETA > 0 {
		eta = " eta " + p.ETA.Round(time.Second).String()
	}
	fmt.Fprintf(os.Stderr, "\r[%d/%d] %s%s    ", p.Completed, p.Total, p.CurrentItem, eta)
}

func writeArchive(ctx context.Context, exporter *export.Exporter, res collector.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	bundle := export.Bundle{
		Event:        res.Event,
		Matches:      res.Matches,
		MapResults:   res.MapResults,
		MatchStats:   res.MatchStats,
		EventStats:   res.EventStats,
		AgentUsage:   res.AgentUsage,
		MapStats:     res.MapStats,
		Economies:    res.Economies,
		Performances: res.Performances,
	}
	if err := exporter.WriteZip(ctx, bundle, f); err != nil {
		return err
	}
	return f.Close()
}
