package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/abdulmannaan502/thermal-copilot/internal/replay"
)

var (
	errReplayArgCount = errors.New("expected exactly one argument: fixture JSON file")
	errReplayDrift    = errors.New("replay results drifted from recorded expectations")
)

func replayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "Re-run recorded model outputs through the guard layer",
		ArgsUsage: "<fixture.json>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.NArg() != 1 {
				return fmt.Errorf("%w: got %d", errReplayArgCount, cmd.NArg())
			}

			fixture, err := replay.LoadFixture(cmd.Args().First())
			if err != nil {
				return err
			}

			results := replay.Replay(fixture.ToCases(), replay.DefaultConfig())

			drifted := 0
			for i, r := range results {
				fmt.Printf("%-32s verdict=%-9s risk=%-8s score=%.2f escalate=%v\n",
					r.CaseID, r.Verdict, r.Risk.RiskLevel, r.Risk.RiskScore, r.Safety.EscalateToHuman)

				if i < len(fixture.ExpectedResults) {
					expected := fixture.ExpectedResults[i]
					if string(r.Verdict) != expected.Verdict || string(r.Risk.RiskLevel) != expected.RiskLevel {
						drifted++
						fmt.Printf("  DRIFT: expected verdict=%s risk=%s\n", expected.Verdict, expected.RiskLevel)
					}
				}
			}

			summary := replay.Summarize(results)
			fmt.Printf("\n%d cases: %d accept, %d monitor, %d escalate\n",
				summary.TotalCases, summary.Accepts, summary.Monitors, summary.Escalations)

			if drifted > 0 {
				return fmt.Errorf("%w: %d case(s)", errReplayDrift, drifted)
			}
			return nil
		},
	}
}
