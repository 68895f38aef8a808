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

package registry

import (
	"context"
	"fmt"
	"sync"

	"sigs.k8s.io/promo-service/api/promotion"
)

// FakeClient is an in-memory registry for tests and dry runs. Tags map to
// digests per repository, mimicking the tag/digest model of a real
// registry.
type FakeClient struct {
	mu sync.Mutex
	// tags maps "registry/repository" -> tag -> digest.
	tags map[string]map[string]string

	// RetagErr, when set, is returned by every Retag call.
	RetagErr error
}

var _ Client = &FakeClient{}

// NewFakeClient returns an empty in-memory registry.
func NewFakeClient() *FakeClient {
	return &FakeClient{tags: map[string]map[string]string{}}
}

// SetTag seeds or updates a tag.
func (c *FakeClient) SetTag(ref promotion.ImageReference, digest string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	repo := ref.Registry + "/" + ref.Repository
	if c.tags[repo] == nil {
		c.tags[repo] = map[string]string{}
	}
	c.tags[repo][ref.Tag] = digest
}

// Exists reports whether the tag was seeded.
func (c *FakeClient) Exists(
	_ context.Context, ref promotion.ImageReference,
) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tags[ref.Registry+"/"+ref.Repository][ref.Tag]
	return ok, nil
}

// Digest resolves a seeded tag to its digest.
func (c *FakeClient) Digest(
	_ context.Context, ref promotion.ImageReference,
) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	digest, ok := c.tags[ref.Registry+"/"+ref.Repository][ref.Tag]
	if !ok {
		return "", fmt.Errorf("no digest for %s", ref.String())
	}
	return digest, nil
}

// Retag points newTag at the digest src resolves to. The source tag is
// left untouched.
func (c *FakeClient) Retag(
	_ context.Context, src promotion.ImageReference, newTag string,
) (*promotion.ImageReference, error) {
	if c.RetagErr != nil {
		return nil, c.RetagErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	repo := src.Registry + "/" + src.Repository
	digest, ok := c.tags[repo][src.Tag]
	if !ok {
		return nil, fmt.Errorf("source %s not found", src.String())
	}
	c.tags[repo][newTag] = digest

	return &promotion.ImageReference{
		Registry:   src.Registry,
		Repository: src.Repository,
		Tag:        newTag,
		Digest:     digest,
	}, nil
}
