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

	"sigs.k8s.io/promo-service/api/promotion"
)

// Client is the registry surface the promotion workflow needs. Retag is
// non-destructive: the source reference remains valid and pull-able after
// the call.
type Client interface {
	// Exists reports whether the reference is present in the registry.
	Exists(ctx context.Context, ref promotion.ImageReference) (bool, error)

	// Digest resolves the reference to its immutable content digest.
	Digest(ctx context.Context, ref promotion.ImageReference) (string, error)

	// Retag associates newTag with the image src points at, in the same
	// repository, and returns the resulting reference.
	Retag(
		ctx context.Context, src promotion.ImageReference, newTag string,
	) (*promotion.ImageReference, error)
}
