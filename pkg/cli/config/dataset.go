package config

import (
	"log/slog"

	"github.com/m-mizutani/zipdata/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

// Dataset holds archive source and destination. Defaults reproduce the pizza/steak/sushi tutorial dataset.
type Dataset struct {
	dataset model.Dataset
}

func (x *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Aliases:     []string{"u"},
			Usage:       "Archive URL [http|https|gs]",
			Value:       model.DefaultSourceURL,
			Sources:     cli.EnvVars("ZIPDATA_URL"),
			Destination: &x.dataset.SourceURL,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"d"},
			Usage:       "Data directory to store the archive and extracted files",
			Value:       model.DefaultDataDir,
			Sources:     cli.EnvVars("ZIPDATA_DATA_DIR"),
			Destination: &x.dataset.DataDir,
		},
		&cli.StringFlag{
			Name:        "name",
			Aliases:     []string{"n"},
			Usage:       "Dataset name, used as image directory and archive file name",
			Value:       model.DefaultName,
			Sources:     cli.EnvVars("ZIPDATA_NAME"),
			Destination: &x.dataset.Name,
		},
		&cli.BoolFlag{
			Name:        "strict-status",
			Usage:       "Fail on non-2xx HTTP response instead of writing its body as archive",
			Sources:     cli.EnvVars("ZIPDATA_STRICT_STATUS"),
			Destination: &x.dataset.StrictStatus,
		},
		&cli.BoolFlag{
			Name:        "safe-extract",
			Usage:       "Reject archive entries that resolve outside of the image directory",
			Sources:     cli.EnvVars("ZIPDATA_SAFE_EXTRACT"),
			Destination: &x.dataset.SafeExtract,
		},
	}
}

func (x *Dataset) Dataset() model.Dataset {
	return x.dataset
}

func (x *Dataset) LogValue() slog.Value {
	return x.dataset.LogValue()
}
