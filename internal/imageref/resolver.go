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

package imageref

import (
	"context"
	"fmt"

	"github.com/google/go-containerregistry/pkg/name"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/registry"
)

// Resolver turns build SHAs and target tags into image references within
// a single configured repository.
type Resolver struct {
	repo   name.Repository
	client registry.Client
}

// NewResolver creates a Resolver for the given repository, e.g.
// "registry.example.com/demo/web".
func NewResolver(repository string, client registry.Client) (*Resolver, error) {
	repo, err := name.NewRepository(repository)
	if err != nil {
		return nil, fmt.Errorf("parsing repository %q: %w", repository, err)
	}
	return &Resolver{repo: repo, client: client}, nil
}

// Resolve queries the registry for the image tagged with the given git
// short-SHA and returns its reference, digest included. A missing image
// yields a NotFound promotion error.
func (r *Resolver) Resolve(
	ctx context.Context, sourceSHA string,
) (*promotion.ImageReference, error) {
	ref := promotion.ImageReference{
		Registry:   r.repo.RegistryStr(),
		Repository: r.repo.RepositoryStr(),
		Tag:        sourceSHA,
	}

	exists, err := r.client.Exists(ctx, ref)
	if err != nil {
		return nil, promotion.NewError(
			promotion.ReasonRegistryError,
			"checking for source image %s: %v", ref.String(), err,
		)
	}
	if !exists {
		return nil, promotion.NewError(
			promotion.ReasonNotFound,
			"no image tagged %q in %s", sourceSHA, r.repo.Name(),
		)
	}

	digest, err := r.client.Digest(ctx, ref)
	if err != nil {
		return nil, promotion.NewError(
			promotion.ReasonRegistryError,
			"resolving digest of %s: %v", ref.String(), err,
		)
	}
	ref.Digest = digest

	return &ref, nil
}

// Build constructs a reference for the target tag in the same repository.
// It performs no registry I/O.
func (r *Resolver) Build(targetTag string) (*promotion.ImageReference, error) {
	if _, err := name.NewTag(r.repo.Name() + ":" + targetTag); err != nil {
		return nil, promotion.NewError(
			promotion.ReasonPolicyViolation,
			"target tag %q is not a valid registry tag: %v", targetTag, err,
		)
	}
	return &promotion.ImageReference{
		Registry:   r.repo.RegistryStr(),
		Repository: r.repo.RepositoryStr(),
		Tag:        targetTag,
	}, nil
}
