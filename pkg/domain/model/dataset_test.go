package model_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipdata/pkg/domain/model"
	"github.com/m-mizutani/zipdata/pkg/domain/types"
)

func TestDefaultDataset(t *testing.T) {
	ds := model.DefaultDataset()
	gt.NoError(t, ds.Validate())
	gt.V(t, ds.ImagePath()).Equal(filepath.Join("data", "pizza_steak_sushi"))
	gt.V(t, ds.ArchivePath()).Equal(filepath.Join("data", "pizza_steak_sushi.zip"))
	gt.False(t, ds.StrictStatus)
	gt.False(t, ds.SafeExtract)
}

func TestDatasetValidate(t *testing.T) {
	valid := func() model.Dataset {
		return model.Dataset{
			SourceURL: "https://example.com/data.zip",
			DataDir:   "data",
			Name:      "images",
		}
	}

	testCases := map[string]struct {
		modify func(ds *model.Dataset)
		isErr  bool
	}{
		"valid https source": {
			modify: func(ds *model.Dataset) {},
		},
		"valid http source": {
			modify: func(ds *model.Dataset) { ds.SourceURL = "http://127.0.0.1:8080/a.zip" },
		},
		"valid gs source": {
			modify: func(ds *model.Dataset) { ds.SourceURL = "gs://my-bucket/path/to/a.zip" },
		},
		"empty source": {
			modify: func(ds *model.Dataset) { ds.SourceURL = "" },
			isErr:  true,
		},
		"unsupported scheme": {
			modify: func(ds *model.Dataset) { ds.SourceURL = "ftp://example.com/a.zip" },
			isErr:  true,
		},
		"http without host": {
			modify: func(ds *model.Dataset) { ds.SourceURL = "https:///a.zip" },
			isErr:  true,
		},
		"gs without object": {
			modify: func(ds *model.Dataset) { ds.SourceURL = "gs://my-bucket/" },
			isErr:  true,
		},
		"empty data dir": {
			modify: func(ds *model.Dataset) { ds.DataDir = "" },
			isErr:  true,
		},
		"empty name": {
			modify: func(ds *model.Dataset) { ds.Name = "" },
			isErr:  true,
		},
		"nested name": {
			modify: func(ds *model.Dataset) { ds.Name = "a/b" },
			isErr:  true,
		},
		"parent name": {
			modify: func(ds *model.Dataset) { ds.Name = ".." },
			isErr:  true,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			ds := valid()
			tc.modify(&ds)
			err := ds.Validate()
			if tc.isErr {
				gt.Error(t, err)
				gt.True(t, errors.Is(err, types.ErrInvalidOption))
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestDatasetSource(t *testing.T) {
	ds := model.Dataset{SourceURL: "gs://bucket/dir/archive.zip"}
	u := gt.R1(ds.Source()).NoError(t)
	gt.V(t, u.Scheme).Equal("gs")
	gt.V(t, u.Host).Equal("bucket")
	gt.V(t, u.Path).Equal("/dir/archive.zip")
}
