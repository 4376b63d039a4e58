package model

import (
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipdata/pkg/domain/types"
)

const (
	DefaultSourceURL = "https://github.com/mrdbourke/pytorch-deep-learning/raw/main/data/pizza_steak_sushi.zip"
	DefaultDataDir   = "data"
	DefaultName      = "pizza_steak_sushi"

	archiveExt = ".zip"
)

// Dataset describes where an archive comes from and where it is unpacked. The archive is stored as <DataDir>/<Name>.zip while downloading and extracted into <DataDir>/<Name>.
type Dataset struct {
	SourceURL string
	DataDir   string
	Name      string

	// StrictStatus makes a non-2xx response an error instead of writing the body as archive data.
	StrictStatus bool
	// SafeExtract rejects archive entries that resolve outside of the image directory.
	SafeExtract bool
}

// DefaultDataset returns the pizza/steak/sushi image dataset
func DefaultDataset() Dataset {
	return Dataset{
		SourceURL: DefaultSourceURL,
		DataDir:   DefaultDataDir,
		Name:      DefaultName,
	}
}

func (x *Dataset) Validate() error {
	if x.DataDir == "" {
		return goerr.Wrap(types.ErrInvalidOption, "data directory is empty")
	}
	if x.Name == "" || x.Name == "." || x.Name == ".." || strings.ContainsAny(x.Name, `/\`) {
		return goerr.Wrap(types.ErrInvalidOption, "dataset name must be a single path element", goerr.V("name", x.Name))
	}
	if _, err := x.Source(); err != nil {
		return err
	}

	return nil
}

// Source parses SourceURL. Only http, https and gs schemes are accepted.
func (x *Dataset) Source() (*url.URL, error) {
	if x.SourceURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "source URL is empty")
	}

	u, err := url.Parse(x.SourceURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to parse source URL", goerr.V("url", x.SourceURL), goerr.V("error", err))
	}

	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "source URL has no host", goerr.V("url", x.SourceURL))
		}
	case "gs":
		if u.Host == "" || strings.TrimPrefix(u.Path, "/") == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "gs URL must be gs://<bucket>/<object>", goerr.V("url", x.SourceURL))
		}
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported source URL scheme", goerr.V("url", x.SourceURL), goerr.V("scheme", u.Scheme))
	}

	return u, nil
}

// ImagePath returns the directory the archive is extracted into
func (x *Dataset) ImagePath() string {
	return filepath.Join(x.DataDir, x.Name)
}

// ArchivePath returns the transient location of the downloaded archive
func (x *Dataset) ArchivePath() string {
	return filepath.Join(x.DataDir, x.Name+archiveExt)
}

func (x Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("source_url", x.SourceURL),
		slog.String("data_dir", x.DataDir),
		slog.String("name", x.Name),
		slog.Bool("strict_status", x.StrictStatus),
		slog.Bool("safe_extract", x.SafeExtract),
	)
}
