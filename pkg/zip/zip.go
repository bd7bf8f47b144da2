// Package zip bundles rendered wallpapers into a single archive.
package zip

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

type Entry struct {
	Name     string
	Data     []byte
	Modified time.Time
}

// Archive writes entries in order. Images are stored uncompressed since PNG
// data is already deflated.
func Archive(entries []Entry) ([]byte, error) {
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		method := zip.Deflate
		if bytes.HasPrefix(e.Data, []byte("\x89PNG")) {
			method = zip.Store
		}
		w, err := zw.CreateHeader(&zip.FileHeader{Name: e.Name, Method: method, Modified: e.Modified})
		if err != nil {
			return nil, fmt.Errorf("zip: add %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("zip: write %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip: close: %w", err)
	}
	return buf.Bytes(), nil
}
