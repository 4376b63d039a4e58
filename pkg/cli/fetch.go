package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/zipdata/pkg/cli/config"
	"github.com/m-mizutani/zipdata/pkg/infra"
	"github.com/m-mizutani/zipdata/pkg/usecase"
	"github.com/m-mizutani/zipdata/pkg/utils/errutil"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
	"github.com/m-mizutani/zipdata/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func fetchCommand() *cli.Command {
	var (
		dataset config.Dataset
		storage config.Storage
		sentry  config.Sentry
	)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"get"},
		Usage:   "Download the dataset archive, extract it and remove the archive",
		Flags: slice.Flatten(
			dataset.Flags(),
			storage.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ds := dataset.Dataset()
			logging.From(ctx).Debug("starting fetch",
				slog.Any("Dataset", ds),
				slog.Any("Storage", &storage),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			src, err := ds.Source()
			if err != nil {
				return err
			}

			var options []infra.Option
			if src.Scheme == "gs" {
				client, err := storage.NewClient(ctx)
				if err != nil {
					return err
				}
				defer safe.Close(client)
				options = append(options, infra.WithObjectStorage(client))
			}

			_, ctx = logging.CtxRunID(ctx)
			uc := usecase.New(infra.New(options...))
			if _, err := uc.ProvisionDataset(ctx, ds); err != nil {
				errutil.HandleError(ctx, "failed to provision dataset", err)
				return err
			}

			return nil
		},
	}
}
