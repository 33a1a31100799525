package main

import (
	"context"
	"log"
	"net/http"

	"github.com/urfave/cli/v3"

	"github.com/abdulmannaan502/thermal-copilot/internal/incident"
	"github.com/abdulmannaan502/thermal-copilot/internal/pipeline"
	"github.com/abdulmannaan502/thermal-copilot/internal/server"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the assessment API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "db",
				Usage: "SQLite database path",
				Value: envOr("COPILOT_DB", "copilot.db"),
			},
			&cli.StringFlag{
				Name:  "addr",
				Usage: "Listen address",
				Value: envOr("COPILOT_ADDR", ":8080"),
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			corpus, sessions, err := openStores(cmd.String("db"))
			if err != nil {
				return err
			}
			defer corpus.Close()

			retriever := incident.NewRetriever(corpus, incident.DefaultRetrieverConfig())

			// The API assesses recorded model text, so no sidecar is wired.
			pipe := pipeline.New(nil, retriever, sessions).WithAudit(corpus.DB())
			srv := server.New(pipe, sessions)

			log.Printf("[SERVE] listening on %s (db %s)", cmd.String("addr"), cmd.String("db"))
			return http.ListenAndServe(cmd.String("addr"), srv.Handler())
		},
	}
}
