package usecase

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipdata/pkg/domain/model"
	"github.com/m-mizutani/zipdata/pkg/domain/types"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
	"github.com/m-mizutani/zipdata/pkg/utils/safe"
)

// ExtractArchive extracts every entry of the zip file src into dst keeping the relative paths stored in the archive.
// Entry names are not validated unless safeExtract is set, in which case an entry resolving outside of dst is an error.
func (x *UseCase) ExtractArchive(ctx context.Context, src, dst string, safeExtract bool) (*model.ExtractResult, error) {
	zipFile, err := zip.OpenReader(src)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open zip file", goerr.V("file", src))
	}
	defer safe.Close(zipFile)

	logging.From(ctx).Info("Unzipping the downloaded data", "file", src, "dst", dst, "entries", len(zipFile.File))

	result := &model.ExtractResult{
		Entries: make([]string, 0, len(zipFile.File)),
	}
	for _, f := range zipFile.File {
		rel, err := extractEntry(f, dst, safeExtract)
		if err != nil {
			return nil, err
		}

		result.Entries = append(result.Entries, rel)
		result.Size += int64(f.UncompressedSize64)
	}

	return result, nil
}

func extractEntry(f *zip.File, dst string, safeExtract bool) (string, error) {
	rel := filepath.FromSlash(strings.TrimSuffix(f.Name, "/"))
	fpath := filepath.Join(dst, rel)

	if safeExtract && !isWithin(dst, fpath) {
		return "", goerr.Wrap(types.ErrIllegalArchivePath, "entry is outside of destination",
			goerr.V("entry", f.Name),
			goerr.V("path", fpath),
		)
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(fpath, 0755); err != nil {
			return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
		}
		return rel, nil
	}

	if err := os.MkdirAll(filepath.Dir(fpath), 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", filepath.Dir(fpath)))
	}

	perm := f.Mode().Perm()
	if perm == 0 {
		perm = 0644
	}

	// #nosec
	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file", goerr.V("path", fpath))
	}
	defer safe.Close(out)

	rc, err := f.Open()
	if err != nil {
		return "", goerr.Wrap(err, "failed to open zip entry", goerr.V("entry", f.Name))
	}
	defer safe.Close(rc)

	// #nosec
	if _, err := io.Copy(out, rc); err != nil {
		return "", goerr.Wrap(err, "failed to copy file content", goerr.V("entry", f.Name))
	}

	return rel, nil
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator)) && !filepath.IsAbs(rel)
}
