package testutil

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/m-mizutani/gt"
)

// ZipEntry is a file or, if Name ends with "/", a directory entry of a test archive
type ZipEntry struct {
	Name    string
	Content string
}

// BuildZip returns a zip archive containing entries in the given order
func BuildZip(t *testing.T, entries ...ZipEntry) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		fw, err := zw.Create(e.Name)
		gt.NoError(t, err)
		if e.Content != "" {
			gt.R1(fw.Write([]byte(e.Content))).NoError(t)
		}
	}
	gt.NoError(t, zw.Close())
	return buf.Bytes()
}
