package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/abdulmannaan502/thermal-copilot/internal/trend"
)

func trendCommand() *cli.Command {
	return &cli.Command{
		Name:  "trend",
		Usage: "Analyze the degradation trend of a session's stored history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database path",
				Value: envOr("COPILOT_DB", "copilot.db"),
			},
			&cli.StringFlag{
				Name:     "session",
				Usage:    "Equipment session identifier",
				Required: true,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			corpus, sessions, err := openStores(cmd.String("db"))
			if err != nil {
				return err
			}
			defer corpus.Close()

			observations, err := sessions.Session(cmd.String("session"))
			if err != nil {
				return err
			}

			return printJSON(struct {
				SessionID        string            `json:"sessionId"`
				ObservationCount int               `json:"observationCount"`
				Report           trend.TrendReport `json:"report"`
			}{
				SessionID:        cmd.String("session"),
				ObservationCount: len(observations),
				Report:           trend.AnalyzeTimed(observations),
			})
		},
	}
}
