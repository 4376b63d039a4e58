package usecase

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipdata/pkg/domain/model"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
)

// ProvisionDataset downloads the dataset archive, extracts it into the image directory and removes the archive.
// Steps run strictly in order and any failure aborts the run. Nothing written before the failure is cleaned up, so a failed extraction leaves the archive in the data directory.
func (x *UseCase) ProvisionDataset(ctx context.Context, dataset model.Dataset) (*model.ProvisionResult, error) {
	if err := dataset.Validate(); err != nil {
		return nil, err
	}

	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With("run_id", runID)
	ctx = logging.With(ctx, logger)

	imagePath := dataset.ImagePath()
	archivePath := dataset.ArchivePath()

	created, err := x.EnsureDirectory(ctx, imagePath)
	if err != nil {
		return nil, err
	}

	fetched, err := x.FetchArchive(ctx, &dataset)
	if err != nil {
		return nil, err
	}

	extracted, err := x.ExtractArchive(ctx, archivePath, imagePath, dataset.SafeExtract)
	if err != nil {
		return nil, err
	}

	if err := x.RemoveArchive(ctx, archivePath); err != nil {
		return nil, err
	}

	result := &model.ProvisionResult{
		RunID:       runID,
		ImagePath:   imagePath,
		Created:     created,
		Fetch:       *fetched,
		Extract:     *extracted,
		CompletedAt: logging.CtxTime(ctx),
	}

	logger.Info("Dataset is ready",
		"path", imagePath,
		"entries", len(extracted.Entries),
		"archive_size", fetched.Size,
		"extracted_size", extracted.Size,
	)

	return result, nil
}

// EnsureDirectory creates dir and its parents if dir is not an existing directory. It returns true when the directory was created.
func (x *UseCase) EnsureDirectory(ctx context.Context, dir string) (bool, error) {
	logger := logging.From(ctx)

	if stat, err := os.Stat(dir); err == nil && stat.IsDir() {
		logger.Info("Directory exists", "path", dir)
		return false, nil
	}

	logger.Info("Did not find directory, creating it", "path", dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, goerr.Wrap(err, "failed to create directory", goerr.V("path", dir))
	}

	return true, nil
}

// RemoveArchive deletes the downloaded archive
func (x *UseCase) RemoveArchive(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return goerr.Wrap(err, "failed to remove archive", goerr.V("path", path))
	}
	logging.From(ctx).Debug("Archive removed", "path", path)

	return nil
}
