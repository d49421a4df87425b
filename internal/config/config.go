package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig carries the process settings. Everything is optional: with an
// empty environment the game starts from the standard position with a
// clock-seeded roller.
type AppConfig struct {
	// Seed fixes the dice sequence; 0 means seed from the clock.
	Seed int64
	// StartFEN overrides the standard starting position.
	StartFEN string
	// MessagesDir points at YAML files overriding the embedded console text.
	MessagesDir string
	// SnapshotDir, when set, receives a PNG of the final board.
	SnapshotDir string
	// SnapshotEveryMove additionally writes a numbered PNG after each
	// applied move. Needs SnapshotDir.
	SnapshotEveryMove bool
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	if v := strings.TrimSpace(os.Getenv("DICECHESS_SEED")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("DICECHESS_SEED: %w", err)
		}
		cfg.Seed = n
	}
	cfg.StartFEN = strings.TrimSpace(os.Getenv("DICECHESS_FEN"))
	cfg.MessagesDir = strings.TrimSpace(os.Getenv("DICECHESS_MESSAGES_DIR"))
	cfg.SnapshotDir = strings.TrimSpace(os.Getenv("DICECHESS_SNAPSHOT_DIR"))
	cfg.SnapshotEveryMove = strings.EqualFold(strings.TrimSpace(os.Getenv("DICECHESS_SNAPSHOT_EVERY_MOVE")), "true")

	return cfg, nil
}
