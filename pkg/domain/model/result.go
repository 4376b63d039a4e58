package model

import (
	"time"

	"github.com/m-mizutani/zipdata/pkg/domain/types"
)

// FetchResult describes the archive file written by a fetch
type FetchResult struct {
	Path        string
	StatusCode  int
	Size        int64
	ContentType string
}

// ExtractResult lists extracted entries as relative paths in archive order
type ExtractResult struct {
	Entries []string
	Size    int64
}

type ProvisionResult struct {
	RunID       types.RunID
	ImagePath   string
	Created     bool
	Fetch       FetchResult
	Extract     ExtractResult
	CompletedAt time.Time
}
