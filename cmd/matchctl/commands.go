package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"agrimatch/config"
	"agrimatch/internal/domain/geo"
	"agrimatch/internal/domain/service"
	"agrimatch/internal/errors"
	logs "agrimatch/internal/infra/log"
	"agrimatch/internal/infra/metrics"
	"agrimatch/internal/infra/persistence/postgres"
	"agrimatch/internal/infra/pubsub"
	"agrimatch/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

var regionsCmd = &cli.Command{
	Name:  "regions",
	Usage: "List the regions known to the centroid table",
	Action: func(ctx *cli.Context) error {
		return printRegions(ctx.App.Writer, geo.Kenya())
	},
}

var distanceCmd = &cli.Command{
	Name:    "distance",
	Usage:   "Show the centroid distance and transport estimate between two regions",
	Aliases: []string{"d"},
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Required: true,
			Usage:    "origin region, e.g. Kiambu",
		},
		&cli.StringFlag{
			Name:     "to",
			Required: true,
			Usage:    "destination region, e.g. Nairobi City",
		},
		&cli.Float64Flag{
			Name:  "cost-per-km",
			Value: config.DefaultTransportCostPerKm,
			Usage: "transport cost per kilometre",
		},
	},
	Action: func(ctx *cli.Context) error {
		return printDistance(ctx.App.Writer, geo.Kenya(), ctx.String("from"), ctx.String("to"), ctx.Float64("cost-per-km"))
	},
}

var sweepCmd = &cli.Command{
	Name:  "sweep",
	Usage: "Delete expired non-terminal pairings",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "publish",
			Usage: "publish a sweep request for the worker instead of sweeping in process",
		},
		&cli.StringFlag{
			Name:  "requested-by",
			Value: "matchctl",
			Usage: "operator recorded on published sweep requests",
		},
	},
	Action: func(ctx *cli.Context) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}

		if ctx.Bool("publish") {
			return publishSweep(ctx, cfg, logger)
		}

		return sweepNow(ctx, cfg, logger)
	},
}

var migrateCmd = &cli.Command{
	Name:  "migrate",
	Usage: "Create or update the database schema",
	Action: func(ctx *cli.Context) error {
		cfg, logger, err := loadRuntime()
		if err != nil {
			return err
		}

		db, err := postgres.Open(cfg, logger)
		if err != nil {
			return err
		}

		if err := postgres.Migrate(ctx.Context, db); err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, "schema up to date")

		return nil
	},
}

func loadRuntime() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

func printRegions(w io.Writer, table *geo.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "REGION\tLAT\tLON")
	for _, region := range table.Regions() {
		point, _ := table.Lookup(region)
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\n", region, point.Lat(), point.Lon())
	}

	return errors.WithStack(tw.Flush())
}

func printDistance(w io.Writer, table *geo.Table, from, to string, costPerKm float64) error {
	km, ok := table.Distance(from, to)
	if !ok {
		return errors.Errorf("unknown region in %q -> %q, run `matchctl regions` for the list", from, to)
	}

	fromName, _ := table.Canonical(from)
	toName, _ := table.Canonical(to)
	fmt.Fprintf(w, "%s -> %s: %.2f km, estimated transport cost %.0f\n", fromName, toName, km, math.Round(km*costPerKm))

	return nil
}

func sweepNow(ctx *cli.Context, cfg *config.Config, logger *slog.Logger) error {
	db, err := postgres.Open(cfg, logger)
	if err != nil {
		return err
	}

	sweeper := impl.NewSweeperService(impl.SweeperServiceParams{
		PairingRepo: postgres.NewPairingRepository(db),
		Metrics:     metrics.NewRecorder(),
		Logger:      logger,
	})

	out, err := sweeper.CleanupExpired(ctx.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "deleted %d expired pairings at %s\n", out.Deleted, out.SweptAt.Format(time.RFC3339))

	return nil
}

func publishSweep(ctx *cli.Context, cfg *config.Config, logger *slog.Logger) error {
	publisher, err := pubsub.Open(ctx.Context, cfg.PubSub, logger)
	if err != nil {
		return err
	}
	defer publisher.Close()

	req := &service.SweepRequest{
		RequestID:   uuid.New().String(),
		RequestedBy: ctx.String("requested-by"),
	}
	if err := publisher.PublishSweepRequest(ctx.Context, req); err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "sweep request %s published\n", req.RequestID)

	return nil
}
