// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package file

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// ErrNotExist is returned when opening a file that is not in the bucket.
var ErrNotExist = errors.New("file: file does not exist")

// IO reads and writes files in a Cloud Storage bucket.
type IO struct {
	storage *storage.Client
	bucket  string
}

func NewIO(storage *storage.Client, bucket string) *IO {
	return &IO{
		storage: storage,
		bucket:  bucket,
	}
}

// Open returns a reader for the file and its content type. The caller must
// close the reader.
func (f *IO) Open(ctx context.Context, path string) (io.ReadCloser, string, error) {
	r, err := f.storage.Bucket(f.bucket).Object(path).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, "", fmt.Errorf("%w: %s", ErrNotExist, path)
	}
	if err != nil {
		return nil, "", fmt.Errorf("file: opening file: %w", err)
	}
	return r, r.Attrs.ContentType, nil
}

func (f *IO) WriteFile(ctx context.Context, path string, contentType string, data []byte) (string, error) {
	wc := f.storage.Bucket(f.bucket).Object(path).NewWriter(ctx)
	wc.ContentType = contentType
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("file: writing file: %w", err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("file: closing file: %w", err)
	}
	return f.URL(path), nil
}

// URL returns the public URL of the file.
func (f *IO) URL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", f.bucket, path)
}
