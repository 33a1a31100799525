package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
)

var errSeedArgCount = errors.New("expected exactly one argument: incidents JSON file")

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:      "seed",
		Usage:     "Load historical maintenance incidents into the corpus",
		ArgsUsage: "<incidents.json>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database path",
				Value: envOr("COPILOT_DB", "copilot.db"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errSeedArgCount, cmd.NArg())
			}

			data, err := os.ReadFile(cmd.Args().First())
			if err != nil {
				return fmt.Errorf("read incidents: %w", err)
			}
			var incidents []incident.Incident
			if err := json.Unmarshal(data, &incidents); err != nil {
				return fmt.Errorf("parse incidents: %w", err)
			}

			corpus, _, err := openStores(cmd.String("db"))
			if err != nil {
				return err
			}
			defer corpus.Close()

			inserted, err := corpus.InsertBatch(incidents)
			if err != nil {
				return fmt.Errorf("after %d inserts: %w", inserted, err)
			}

			total, err := corpus.Count()
			if err != nil {
				return err
			}
			log.Printf("[SEED] inserted %d incidents, corpus now holds %d", inserted, total)
			return nil
		},
	}
}
