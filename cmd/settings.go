package cmd

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/salahbar/salahbar/common"
	"github.com/salahbar/salahbar/internal/geoip"
	"github.com/salahbar/salahbar/internal/timetable"
	"github.com/salahbar/salahbar/pkg/logger"
)

// loadEnv reads the optional dotenv file (~/.config/salahbar/salahbar.env).
// Variables already present in the environment win over the file; a missing
// file is the normal case.
func loadEnv() {
	path := filepath.Join(common.ConfigDir(), common.EnvFileName)
	if _, err := os.Stat(path); err != nil {
		return
	}
	_ = godotenv.Load(path)
}

func lockCommand() string {
	if cmd := os.Getenv(common.LockCommandEnv); cmd != "" {
		return cmd
	}
	return DefaultLockCommand
}

// calculationMethod returns the configured AlAdhan method id, or 0 to let
// the client apply its default.
func calculationMethod() int {
	if v := os.Getenv(common.MethodEnv); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// pollInterval returns the configured guard poll interval, or 0 to let the
// guard apply its default.
func pollInterval() time.Duration {
	if v := os.Getenv(common.PollIntervalEnv); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 0
}

// stderrLogger logs to stderr, keeping stdout clean for the waybar record.
func stderrLogger() *logger.StandardLogger {
	return logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
}

// newStore assembles the cache-backed timetable store every command reads
// through.
func newStore(log logger.Logger) *timetable.Store {
	return timetable.NewStore(
		afero.NewOsFs(),
		common.CacheFile(),
		geoip.NewClient(nil, ""),
		timetable.NewClient(nil, "", calculationMethod()),
		log,
	)
}
