package gcs_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/zipdata/pkg/infra/gcs"
	"github.com/m-mizutani/zipdata/pkg/utils/safe"
	"github.com/m-mizutani/zipdata/pkg/utils/testutil"
)

func TestClient(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_ZIPDATA_GCS_BUCKET")
	object := testutil.GetEnvOrSkip(t, "TEST_ZIPDATA_GCS_OBJECT")

	ctx := context.Background()
	client := gt.R1(gcs.New(ctx)).NoError(t)
	defer safe.Close(client)

	t.Run("read existing object", func(t *testing.T) {
		r := gt.R1(client.NewReader(ctx, bucket, object)).NoError(t)
		defer safe.Close(r)

		data := gt.R1(io.ReadAll(r)).NoError(t)
		gt.True(t, len(data) > 0)
	})

	t.Run("missing object", func(t *testing.T) {
		_, err := client.NewReader(ctx, bucket, object+".missing")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, gcs.ErrObjectNotFound))
	})
}
