package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"leadscout/internal/config"
	"leadscout/internal/pipeline"
)

func main() {
	app := &cli.App{
		Name:  "leadscout",
		Usage: "find and score LinkedIn job leads, then deliver a daily digest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: config.DefaultPath,
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "extract and score, but skip delivery and leave the seen cache untouched",
			},
			&cli.BoolFlag{
				Name:  "headed",
				Usage: "run the browser with a visible window",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	log.Printf("🔧 Config loaded. %d queries, %d personas.", len(cfg.Queries), len(cfg.Personas))

	if c.Bool("headed") {
		cfg.Headed = true
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	p := pipeline.New(cfg)
	p.DryRun = c.Bool("dry-run")
	return p.Run(ctx)
}
