package usecase

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/zipdata/pkg/domain/model"
	"github.com/m-mizutani/zipdata/pkg/domain/types"
	"github.com/m-mizutani/zipdata/pkg/infra"
	"github.com/m-mizutani/zipdata/pkg/utils/logging"
	"github.com/m-mizutani/zipdata/pkg/utils/safe"
)

// filetype needs at most 261 bytes to match any known type
const sniffLength = 261

// FetchArchive writes the whole content of dataset's source to its archive path. The file is truncated before the request is sent.
// Without StrictStatus a non-2xx HTTP response body is written as if it were the archive.
func (x *UseCase) FetchArchive(ctx context.Context, dataset *model.Dataset) (*model.FetchResult, error) {
	src, err := dataset.Source()
	if err != nil {
		return nil, err
	}
	if src.Scheme == "gs" && x.clients.ObjectStorage() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Cloud Storage client is required for gs:// source", goerr.V("url", src))
	}

	dst := dataset.ArchivePath()
	logger := logging.From(ctx)

	fd, err := os.Create(filepath.Clean(dst))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create archive file", goerr.V("path", dst))
	}

	logger.Info("Downloading the data", "url", src.String(), "path", dst)

	result := &model.FetchResult{Path: dst}
	switch src.Scheme {
	case "gs":
		result.Size, err = downloadObject(ctx, x.clients, src, fd)
	default:
		result.StatusCode, result.Size, err = downloadHTTP(ctx, x.clients.HTTPClient(), src, fd, dataset.StrictStatus)
	}
	if err != nil {
		safe.Close(fd)
		return nil, err
	}
	if err := fd.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close archive file", goerr.V("path", dst))
	}

	var isArchive bool
	result.ContentType, isArchive = detectContentType(ctx, dst)
	if !isArchive {
		logger.Warn("Downloaded data does not look like a zip archive", "path", dst, "content_type", result.ContentType)
	}

	logger.Info("Successfully downloaded the data",
		"path", dst,
		"size", result.Size,
		"content_type", result.ContentType,
	)

	return result, nil
}

func downloadHTTP(ctx context.Context, httpClient infra.HTTPClient, src *url.URL, w io.Writer, strictStatus bool) (int, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.String(), nil)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to create request for archive", goerr.V("url", src))
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, 0, goerr.Wrap(err, "failed to download archive", goerr.V("url", src))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if strictStatus {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return resp.StatusCode, 0, goerr.Wrap(types.ErrUnexpectedStatus, "failed to download archive",
				goerr.V("url", src),
				goerr.V("status", resp.StatusCode),
				goerr.V("body", string(body)),
			)
		}

		logging.From(ctx).Warn("Archive server returned non-success status, writing the body anyway",
			"url", src.String(),
			"status", resp.StatusCode,
		)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return resp.StatusCode, n, goerr.Wrap(err, "failed to write archive",
			goerr.V("url", src),
			goerr.V("status", resp.StatusCode),
		)
	}

	return resp.StatusCode, n, nil
}

func downloadObject(ctx context.Context, clients *infra.Clients, src *url.URL, w io.Writer) (int64, error) {
	bucket := src.Host
	object := strings.TrimPrefix(src.Path, "/")

	r, err := clients.ObjectStorage().NewReader(ctx, bucket, object)
	if err != nil {
		return 0, err
	}
	defer safe.Close(r)

	n, err := io.Copy(w, r)
	if err != nil {
		return n, goerr.Wrap(err, "failed to write archive", goerr.V("bucket", bucket), goerr.V("object", object))
	}

	return n, nil
}

// detectContentType returns MIME type of the file by its magic number (empty if unknown) and whether it is an archive format
func detectContentType(ctx context.Context, path string) (string, bool) {
	fd, err := os.Open(filepath.Clean(path))
	if err != nil {
		logging.From(ctx).Warn("Failed to open archive for type detection", "path", path, "error", err)
		return "", false
	}
	defer safe.Close(fd)

	head := make([]byte, sniffLength)
	n, err := io.ReadFull(fd, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", false
	}
	head = head[:n]

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return "", false
	}

	return kind.MIME.Value, filetype.IsArchive(head)
}
