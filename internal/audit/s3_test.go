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
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/promo-service/api/promotion"
)

// fakeS3 is an in-memory object store implementing the slice of the S3
// API the audit log uses.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) Upload(
	_ context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader),
) (*manager.UploadOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.objects[*in.Key] = data
	f.mu.Unlock()
	return &manager.UploadOutput{}, nil
}

func (f *fakeS3) GetObject(
	_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options),
) (*s3.GetObjectOutput, error) {
	f.mu.Lock()
	data, ok := f.objects[*in.Key]
	f.mu.Unlock()
	if !ok {
		return nil, &s3types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(string(data))),
	}, nil
}

func (f *fakeS3) ListObjectsV2(
	_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options),
) (*s3.ListObjectsV2Output, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	contents := []s3types.Object{}
	for key := range f.objects {
		if strings.HasPrefix(key, *in.Prefix) {
			contents = append(contents, s3types.Object{Key: aws.String(key)})
		}
	}
	return &s3.ListObjectsV2Output{
		Contents:    contents,
		IsTruncated: aws.Bool(false),
	}, nil
}

func newTestS3Log(store *fakeS3) *S3Log {
	return &S3Log{
		bucket:   "audit-bucket",
		prefix:   "promo",
		client:   store,
		uploader: store,
	}
}

func TestS3LogKeyLayout(t *testing.T) {
	log := newTestS3Log(newFakeS3())
	outcome := testOutcome("9f2c", promotion.EnvironmentProduction, promotion.StatePromoted)
	outcome.Created = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "promo/outcomes/2026/08/29/9f2c.json", log.key(outcome))
}

func TestS3LogAppendAndQuery(t *testing.T) {
	store := newFakeS3()
	log := newTestS3Log(store)

	require.NoError(t, log.Append(
		testOutcome("a", promotion.EnvironmentStaging, promotion.StatePromoted),
	))
	require.NoError(t, log.Append(
		testOutcome("b", promotion.EnvironmentProduction, promotion.StateFailed),
	))

	all, err := log.Query(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	failed, err := log.Query(Filter{FinalState: promotion.StateFailed})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	require.Equal(t, "b", failed[0].ID)

	// The stored object is plain JSON of the outcome.
	var stored promotion.Outcome
	require.NoError(
		t, json.Unmarshal(store.objects[log.key(failed[0])], &stored),
	)
	require.Equal(t, "b", stored.ID)
}
