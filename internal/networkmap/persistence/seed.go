/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package persistence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridsuite/network-map-go/internal/networkmap/logger"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/google/uuid"
)

// Writer is implemented by stores that accept whole network documents.
type Writer interface {
	PutNetwork(ctx context.Context, doc *snapshot.Document) error
	DeleteNetwork(ctx context.Context, id uuid.UUID) error
}

// SeedFromDirectory writes every *.json network document found in dir to w
// and returns how many were written. A missing directory writes nothing.
func SeedFromDirectory(ctx context.Context, w Writer, dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, err
	}
	written := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		doc, err := ReadDocumentFile(path)
		if err != nil {
			return written, err
		}
		if err := w.PutNetwork(ctx, doc); err != nil {
			return written, fmt.Errorf("%s: %w", path, err)
		}
		logger.LogDebug("seeded network snapshot", "network", doc.ID.String(), "path", path)
		written++
	}
	return written, nil
}

// ReadDocumentFile decodes the network document stored at path.
func ReadDocumentFile(path string) (*snapshot.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.LogError("NMSEED-READFILE-CLOSE failed to close snapshot file", closeErr, "path", path)
		}
	}()
	doc, err := snapshot.ReadDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
