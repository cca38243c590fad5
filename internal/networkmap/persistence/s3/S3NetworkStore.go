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

// Package s3 serves network documents stored as one JSON object per network
// in an S3 compatible bucket.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	nmerrors "github.com/gridsuite/network-map-go/internal/networkmap/errors"
	"github.com/gridsuite/network-map-go/internal/networkmap/logger"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence"
	"github.com/gridsuite/network-map-go/internal/networkmap/persistence/snapshot"
	"github.com/gridsuite/network-map-go/internal/networkmap/topology"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ObjectAPI is the subset of the S3 client used by the store.
type ObjectAPI interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
}

// Options locate the bucket. Empty credentials fall back to the default AWS
// credential chain.
type Options struct {
	Bucket          string
	Prefix          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// S3NetworkStore implements persistence.NetworkStore and persistence.Writer.
// Objects are always read whole, so both preloading strategies return a fully
// built graph.
type S3NetworkStore struct {
	client ObjectAPI
	bucket string
	prefix string
}

// NewS3NetworkStore builds an S3 client from opts.
func NewS3NetworkStore(ctx context.Context, opts Options) (*S3NetworkStore, error) {
	if opts.Bucket == "" {
		return nil, errors.New("NMS3-NEWSTORE-CONFIG bucket is required")
	}
	loadOpts := []func(*config.LoadOptions) error{}
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")))
	}
	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("NMS3-NEWSTORE-LOADCONFIG %w", err)
	}
	client := awss3.NewFromConfig(cfg, func(o *awss3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
	})
	return NewS3NetworkStoreFromClient(client, opts.Bucket, opts.Prefix), nil
}

// NewS3NetworkStoreFromClient wraps an existing client.
func NewS3NetworkStoreFromClient(client ObjectAPI, bucket string, prefix string) *S3NetworkStore {
	return &S3NetworkStore{client: client, bucket: bucket, prefix: prefix}
}

// Key returns the object key of a network.
func (s *S3NetworkStore) Key(id uuid.UUID) string {
	return s.prefix + id.String() + ".json"
}

// GetNetwork implements persistence.NetworkStore.
func (s *S3NetworkStore) GetNetwork(ctx context.Context, id uuid.UUID, _ persistence.PreloadingStrategy) (topology.Network, error) {
	out, err := s.client.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.Key(id)),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, persistence.NotFound(id)
		}
		return nil, unavailable("NMS3-GETNETWORK-GETOBJECT", err)
	}
	defer func() {
		if closeErr := out.Body.Close(); closeErr != nil {
			logger.LogError("NMS3-GETNETWORK-CLOSEBODY failed to close object body", closeErr, "network", id.String())
		}
	}()

	doc, err := snapshot.ReadDocument(out.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, persistence.Corrupt(id, fmt.Errorf("NMS3-GETNETWORK-DECODE %w", err))
	}
	if doc.ID != id {
		return nil, persistence.Corrupt(id, fmt.Errorf("NMS3-GETNETWORK-DECODE object holds network %s", doc.ID))
	}
	g, err := snapshot.BuildGraph(doc)
	if err != nil {
		return nil, persistence.Corrupt(id, err)
	}
	return g, nil
}

// PutNetwork implements persistence.Writer.
func (s *S3NetworkStore) PutNetwork(ctx context.Context, doc *snapshot.Document) error {
	if _, err := snapshot.BuildGraph(doc); err != nil {
		return persistence.Corrupt(doc.ID, err)
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("NMS3-PUTNETWORK-ENCODE %w", err)
	}
	_, err = s.client.PutObject(ctx, &awss3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.Key(doc.ID)),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return unavailable("NMS3-PUTNETWORK-PUTOBJECT", err)
	}
	return nil
}

// DeleteNetwork implements persistence.Writer. S3 deletes are idempotent, so
// the object is looked up first to report unknown networks.
func (s *S3NetworkStore) DeleteNetwork(ctx context.Context, id uuid.UUID) error {
	key := aws.String(s.Key(id))
	if _, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{Bucket: aws.String(s.bucket), Key: key}); err != nil {
		if isNotFound(err) {
			return persistence.NotFound(id)
		}
		return unavailable("NMS3-DELNETWORK-HEADOBJECT", err)
	}
	if _, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{Bucket: aws.String(s.bucket), Key: key}); err != nil {
		return unavailable("NMS3-DELNETWORK-DELETEOBJECT", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

// unavailable logs err under code and wraps it with ErrStoreUnavailable.
// Context cancellation is passed through unchanged.
func unavailable(code string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.LogError(code, err)
	return fmt.Errorf("%w: %s: %w", nmerrors.ErrStoreUnavailable, code, err)
}
