package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joseph-ayodele/rollcall-tracker/internal/common"
	"github.com/joseph-ayodele/rollcall-tracker/internal/layout"
	"github.com/joseph-ayodele/rollcall-tracker/internal/reader"
	"github.com/joseph-ayodele/rollcall-tracker/internal/writer"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file       = flag.String("file", "", "PDF file to process (required)")
		startPage  = flag.Int("start", 0, "first page to process (0-based, inclusive)")
		endPage    = flag.Int("end", 0, "page to stop before (exclusive, 0 = full document)")
		tuningPath = flag.String("config", "", "JSON tuning file (check_next, max_topic_range, flush_every, replacements)")
		mongoURI   = flag.String("mongo", "", "MongoDB URI for the keyed store (optional)")
		mongoDB    = flag.String("db", "", "MongoDB database name (defaults from env)")
		mongoColl  = flag.String("collection", "", "MongoDB collection name (defaults from env)")
		sqlitePath = flag.String("sqlite", "", "SQLite database file for the keyed store (optional)")
		xlsxPath   = flag.String("xlsx", "", "XLSX output file (optional)")
		sheet      = flag.String("sheet", "", "XLSX sheet name (defaults from env)")
		logPath    = flag.String("log", "", "log file path (default: derived from the input filename)")
		errPath    = flag.String("errlog", "", "error log file path (default: log path with .err extension)")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *mongoDB != "" {
		cfg.Mongo.Database = *mongoDB
	}
	if *mongoColl != "" {
		cfg.Mongo.Collection = *mongoColl
	}
	if *mongoURI != "" {
		cfg.Mongo.URI = *mongoURI
	}
	if *xlsxPath != "" {
		cfg.XLSX.Path = *xlsxPath
	}
	if *sheet != "" {
		cfg.XLSX.Sheet = *sheet
	}

	tuning := cfg.Tuning
	if *tuningPath != "" {
		loaded, err := common.LoadTuningFile(*tuningPath)
		if err != nil {
			logger.Error("invalid tuning file", "path", *tuningPath, "error", err)
			os.Exit(1)
		}
		tuning = loaded
	}

	var sinks []writer.Writer
	if cfg.Mongo.URI != "" {
		mw, err := writer.NewMongo(ctx, cfg.Mongo, logger)
		if err != nil {
			logger.Error("failed to connect keyed store", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, mw)
	}
	if *sqlitePath != "" {
		sw, err := writer.NewSQLite(*sqlitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite store", "error", err)
			os.Exit(1)
		}
		sinks = append(sinks, sw)
	}
	if cfg.XLSX.Path != "" {
		sinks = append(sinks, writer.NewXLSX(cfg.XLSX.Path, cfg.XLSX.Sheet, logger))
	}

	var sink writer.Writer
	switch len(sinks) {
	case 0:
		// records accumulate in the in-memory roster only
	case 1:
		sink = sinks[0]
	default:
		sink = writer.NewMulti(sinks...)
	}

	processor := reader.NewRollCallProcessor(sink, tuning)
	engine := reader.NewEngine(layout.NewPDFProvider(), processor, sink, reader.Options{
		StartPage:  *startPage,
		EndPage:    *endPage,
		FlushEvery: tuning.FlushEvery,
		LogPath:    *logPath,
		ErrPath:    *errPath,
	}, logger)

	if err := engine.Read(ctx, *file); err != nil {
		logger.Error("run aborted", "file", *file, "error", err)
		os.Exit(1)
	}

	fmt.Printf("%d roll call votes read from %s\n", processor.Count(), *file)
}
