package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/big"
	"os"
	"time"

	"github.com/dcao/tagtime/internal/config"
	"github.com/dcao/tagtime/internal/logging"
	"github.com/dcao/tagtime/lcg"
	"github.com/dcao/tagtime/ping"
)

var configPath = flag.String("config", "", "path to yaml config file (optional)")
var start = flag.Int64("start", 0, "start instant as unix milliseconds (0 = now)")
var gap = flag.Int64("gap", 0, "average gap between pings, in seconds")
var seed = flag.Int64("seed", 0, "generator seed override")
var count = flag.Int("count", 0, "how many pings to print")
var format = flag.String("format", "", "output format: ticks, millis or rfc3339")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatalf("load config: %v", err)
	}
	logging.Setup(cfg.Logging)

	if *start != 0 {
		cfg.Schedule.StartMillis = *start
	}
	if *gap != 0 {
		cfg.Schedule.GapSeconds = *gap
	}
	if *seed != 0 {
		cfg.Schedule.Seed = *seed
	}
	if *count != 0 {
		cfg.Output.Count = *count
	}
	if *format != "" {
		cfg.Output.Format = *format
	}
	if err := cfg.Validate(); err != nil {
		fatalf("invalid flag override: %v", err)
	}

	startMillis := cfg.Schedule.StartMillis
	if startMillis == 0 {
		startMillis = time.Now().UnixMilli()
	}

	gen := lcg.New(
		big.NewInt(cfg.Schedule.Multiplier),
		big.NewInt(cfg.Schedule.Modulus),
		big.NewInt(cfg.Schedule.Seed),
	)
	sched, err := ping.New(time.UnixMilli(startMillis), ping.Opts{
		Gap: big.NewInt(cfg.Schedule.GapSeconds),
		Gen: gen,
	})
	if err != nil {
		fatalf("build schedule: %v", err)
	}

	slog.Info("walking schedule",
		"start_millis", startMillis,
		"gap_seconds", cfg.Schedule.GapSeconds,
		"count", cfg.Output.Count,
		"format", cfg.Output.Format)

	for i := 0; i < cfg.Output.Count; i++ {
		next := sched.Next()
		switch cfg.Output.Format {
		case config.FormatMillis:
			fmt.Println(next.UnixMilli())
		case config.FormatRFC3339:
			fmt.Println(next.Format(time.RFC3339Nano))
		default:
			fmt.Println(next.UnixMilli() / 100)
		}
	}
}

func fatalf(msg string, args ...interface{}) {
	slog.Error(fmt.Sprintf(msg, args...))
	os.Exit(1)
}
