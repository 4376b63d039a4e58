package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipdata/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func TestDatasetFlagsDefault(t *testing.T) {
	var cfg config.Dataset
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), []string{"test"}))

	ds := cfg.Dataset()
	gt.V(t, ds.SourceURL).Equal("https://github.com/mrdbourke/pytorch-deep-learning/raw/main/data/pizza_steak_sushi.zip")
	gt.V(t, ds.DataDir).Equal("data")
	gt.V(t, ds.Name).Equal("pizza_steak_sushi")
	gt.False(t, ds.StrictStatus)
	gt.False(t, ds.SafeExtract)
}

func TestDatasetFlagsOverride(t *testing.T) {
	var cfg config.Dataset
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			return nil
		},
	}
	t.Setenv("ZIPDATA_NAME", "from_env")
	gt.NoError(t, cmd.Run(context.Background(), []string{
		"test",
		"--url", "gs://bucket/a.zip",
		"--data-dir", "/tmp/x",
		"--strict-status",
		"--safe-extract",
	}))

	ds := cfg.Dataset()
	gt.V(t, ds.SourceURL).Equal("gs://bucket/a.zip")
	gt.V(t, ds.DataDir).Equal("/tmp/x")
	gt.V(t, ds.Name).Equal("from_env")
	gt.True(t, ds.StrictStatus)
	gt.True(t, ds.SafeExtract)
}

func TestStorageClientOptions(t *testing.T) {
	t.Run("no options by default", func(t *testing.T) {
		var cfg config.Storage
		gt.V(t, len(cfg.ClientOptions())).Equal(0)
	})

	t.Run("credentials and project", func(t *testing.T) {
		var cfg config.Storage
		cmd := &cli.Command{
			Name:  "test",
			Flags: cfg.Flags(),
			Action: func(ctx context.Context, c *cli.Command) error {
				return nil
			},
		}
		gt.NoError(t, cmd.Run(context.Background(), []string{
			"test",
			"--gcs-credentials", "/path/to/key.json",
			"--gcs-project", "my-project",
		}))
		gt.V(t, len(cfg.ClientOptions())).Equal(2)
	})
}
