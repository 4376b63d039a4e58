package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/zipdata/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

// Storage configures the Cloud Storage client used for gs:// sources. Application default credentials are used when no credentials file is given.
type Storage struct {
	credentials string
	project     string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-credentials",
			Usage:       "Path to Google Cloud service account key file for gs:// source",
			Category:    "Cloud Storage",
			Sources:     cli.EnvVars("ZIPDATA_GCS_CREDENTIALS"),
			Destination: &x.credentials,
		},
		&cli.StringFlag{
			Name:        "gcs-project",
			Usage:       "Google Cloud project billed for requests (requester pays bucket)",
			Category:    "Cloud Storage",
			Sources:     cli.EnvVars("ZIPDATA_GCS_PROJECT"),
			Destination: &x.project,
		},
	}
}

func (x *Storage) ClientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if x.credentials != "" {
		opts = append(opts, option.WithCredentialsFile(x.credentials))
	}
	if x.project != "" {
		opts = append(opts, option.WithQuotaProject(x.project))
	}
	return opts
}

func (x *Storage) NewClient(ctx context.Context) (*gcs.Client, error) {
	return gcs.New(ctx, x.ClientOptions()...)
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Credentials", x.credentials),
		slog.Any("Project", x.project),
	)
}
