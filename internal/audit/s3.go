/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/nozzle/throttler"

	"sigs.k8s.io/promo-service/api/promotion"
)

// queryConcurrency bounds the parallel object fetches a Query performs.
const queryConcurrency = 10

// s3API is the S3 surface S3Log uses, extracted for tests.
type s3API interface {
	GetObject(
		ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)
	ListObjectsV2(
		ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options),
	) (*s3.ListObjectsV2Output, error)
}

type s3Uploader interface {
	Upload(
		ctx context.Context, in *s3.PutObjectInput, opts ...func(*manager.Uploader),
	) (*manager.UploadOutput, error)
}

// S3Log stores one JSON object per outcome under
// <prefix>/outcomes/YYYY/MM/DD/<id>.json. S3 objects are write-once here;
// nothing in this type overwrites or deletes keys.
type S3Log struct {
	bucket   string
	prefix   string
	client   s3API
	uploader s3Uploader
}

var _ Log = &S3Log{}

// NewS3Log builds an S3-backed audit log. Region and credentials come
// from the environment, as with the other AWS-backed tooling.
func NewS3Log(ctx context.Context, bucket, prefix string) (*S3Log, error) {
	if bucket == "" {
		return nil, fmt.Errorf("audit bucket must be specified")
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &S3Log{
		bucket:   bucket,
		prefix:   prefix,
		client:   client,
		uploader: manager.NewUploader(client),
	}, nil
}

// key builds the object key for an outcome, partitioned by day so the
// bucket stays listable as history grows.
func (l *S3Log) key(outcome *promotion.Outcome) string {
	ts := outcome.Created.UTC()
	return path.Join(
		l.prefix, "outcomes",
		fmt.Sprintf("%04d", ts.Year()),
		fmt.Sprintf("%02d", int(ts.Month())),
		fmt.Sprintf("%02d", ts.Day()),
		outcome.ID+".json",
	)
}

// Append uploads the outcome as a JSON object.
func (l *S3Log) Append(outcome *promotion.Outcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("encoding outcome %s: %w", outcome.ID, err)
	}

	_, err = l.uploader.Upload(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(l.bucket),
		Key:         aws.String(l.key(outcome)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("uploading outcome %s: %w", outcome.ID, err)
	}
	return nil
}

// Query lists the outcome prefix and fetches the matching objects with a
// bounded number of parallel requests.
func (l *S3Log) Query(filter Filter) ([]*promotion.Outcome, error) {
	ctx := context.Background()

	keys := []string{}
	prefix := path.Join(l.prefix, "outcomes") + "/"
	paginator := s3.NewListObjectsV2Paginator(l.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(l.bucket),
		Prefix: aws.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing audit objects: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, *obj.Key)
		}
	}

	var mu sync.Mutex
	outcomes := []*promotion.Outcome{}

	th := throttler.New(queryConcurrency, len(keys))
	for _, key := range keys {
		go func(key string) {
			outcome, err := l.fetch(ctx, key)
			if err == nil && filter.Matches(outcome) {
				mu.Lock()
				outcomes = append(outcomes, outcome)
				mu.Unlock()
			}
			th.Done(err)
		}(key)
		th.Throttle()
	}

	if th.Err() != nil {
		return nil, fmt.Errorf("fetching audit objects: %w", th.Err())
	}

	sortOutcomes(outcomes)
	return outcomes, nil
}

func (l *S3Log) fetch(ctx context.Context, key string) (*promotion.Outcome, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}

	outcome := &promotion.Outcome{}
	if err := json.Unmarshal(data, outcome); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return outcome, nil
}
