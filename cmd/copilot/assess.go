package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/inference"
	"github.com/abdulmannaan502/thermal-copilot/internal/pipeline"
	"github.com/abdulmannaan502/thermal-copilot/internal/thermal"
)

var errNoInput = errors.New("either --image or --features is required")

func assessCommand() *cli.Command {
	return &cli.Command{
		Name:  "assess",
		Usage: "Run one assessment over a thermal image or extracted features",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database path",
				Value: envOr("COPILOT_DB", "copilot.db"),
			},
			&cli.StringFlag{
				Name:     "session",
				Usage:    "Equipment session identifier for trend tracking",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "image",
				Usage: "Thermal image file (PNG or JPEG)",
			},
			&cli.StringFlag{
				Name:  "features",
				Usage: "JSON file with pre-extracted anomaly features",
			},
			&cli.StringFlag{
				Name:  "sidecar",
				Usage: "Inference sidecar gRPC address",
				Value: envOr("SIDECAR_ADDR", "localhost:50051"),
			},
			&cli.StringFlag{
				Name:  "raw",
				Usage: "File with recorded model output; skips the sidecar",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			corpus, sessions, err := openStores(cmd.String("db"))
			if err != nil {
				return err
			}
			defer corpus.Close()

			retriever := incident.NewRetriever(corpus, incident.DefaultRetrieverConfig())

			if raw := cmd.String("raw"); raw != "" {
				return assessRecorded(cmd, corpus, sessions, retriever, raw)
			}

			client, err := inference.NewClient(cmd.String("sidecar"))
			if err != nil {
				return err
			}
			defer client.Close()

			pipe := pipeline.New(client, retriever, sessions).WithAudit(corpus.DB())

			if image := cmd.String("image"); image != "" {
				report, err := pipe.AssessImage(ctx, cmd.String("session"), image)
				if err != nil {
					return err
				}
				return printJSON(report)
			}

			features, err := loadFeatures(cmd.String("features"))
			if err != nil {
				return err
			}
			report, err := pipe.Assess(ctx, cmd.String("session"), features)
			if err != nil {
				return err
			}
			return printJSON(report)
		},
	}
}

// assessRecorded replays a saved model response through the guard layer,
// useful when the sidecar is down or for triaging a past assessment.
func assessRecorded(
	cmd *cli.Command,
	corpus *incident.Store,
	sessions pipeline.ObservationLog,
	retriever *incident.Retriever,
	rawPath string,
) error {
	text, err := os.ReadFile(rawPath)
	if err != nil {
		return fmt.Errorf("read raw model output: %w", err)
	}

	features, err := featuresFromFlags(cmd)
	if err != nil {
		return err
	}

	pipe := pipeline.New(nil, retriever, sessions).WithAudit(corpus.DB())
	report, err := pipe.AssessRecorded(cmd.String("session"), features, nil, string(text))
	if err != nil {
		return err
	}
	return printJSON(report)
}

// featuresFromFlags extracts features from --image when given, otherwise
// loads them from the --features JSON file.
func featuresFromFlags(cmd *cli.Command) (thermal.AnomalyFeatures, error) {
	if image := cmd.String("image"); image != "" {
		grid, err := thermal.LoadImage(image)
		if err != nil {
			return thermal.AnomalyFeatures{}, fmt.Errorf("load thermal image: %w", err)
		}
		return thermal.DetectAnomaly(grid, thermal.DefaultDetectorConfig()), nil
	}
	return loadFeatures(cmd.String("features"))
}

func loadFeatures(path string) (thermal.AnomalyFeatures, error) {
	if path == "" {
		return thermal.AnomalyFeatures{}, errNoInput
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return thermal.AnomalyFeatures{}, fmt.Errorf("read features: %w", err)
	}
	var features thermal.AnomalyFeatures
	if err := json.Unmarshal(data, &features); err != nil {
		return thermal.AnomalyFeatures{}, fmt.Errorf("parse features: %w", err)
	}
	return features, nil
}
