// Command seed writes a starter snapshot (the demo stages and items)
// through the configured store so a fresh site has something to scan.
package main

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/FynnK/FestivalInventory/internal/config"
	"github.com/FynnK/FestivalInventory/internal/model"
	"github.com/FynnK/FestivalInventory/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var seedStages = []string{"Main Stage", "Techno Tent", "Acoustic Lounge", "Cosmic Meadow", "Warehouse"}

var seedItems = []model.Item{
	{
		ID: "84729103847", Name: "Screws (Box of 1000)",
		Total: 10, Remaining: 5,
		Usage:        model.Usage{"Main Stage": 3, "Techno Tent": 2},
		UnitQuantity: 1000, UnitType: "screws per box",
		Description: "Standard wood screws, 2.5cm length",
	},
	{
		ID: "98347502918", Name: "Gaffer Tape Roll (Black)",
		Total: 50, Remaining: 22,
		Usage:        model.Usage{"Main Stage": 10, "Techno Tent": 8, "Acoustic Lounge": 10},
		UnitQuantity: 50, UnitType: "meters per roll",
		Description: "Professional grade gaffer tape, 50mm width",
	},
	{
		ID: "19283740192", Name: "XLR Cable (10ft)",
		Total: 100, Remaining: 100,
		Usage:        model.Usage{},
		UnitQuantity: 1, UnitType: "cable",
		Description: "Professional XLR audio cable, 10 feet length",
	},
	{
		ID: "58473625198", Name: "Power Strip (6-outlet)",
		Total: 30, Remaining: 15,
		Usage:        model.Usage{"Warehouse": 15},
		UnitQuantity: 6, UnitType: "outlets per strip",
		Description: "Heavy duty power strip with surge protection",
	},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	st := store.NewFileStore(cfg.SnapshotPath)

	data, err := json.MarshalIndent(model.Snapshot{Inventory: seedItems, Stages: seedStages}, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal seed snapshot")
	}
	if err := st.Save(context.Background(), data); err != nil {
		log.Fatal().Err(err).Msg("failed to write seed snapshot")
	}
	log.Info().Str("path", cfg.SnapshotPath).
		Int("items", len(seedItems)).Int("stages", len(seedStages)).
		Msg("seed snapshot written")
}
