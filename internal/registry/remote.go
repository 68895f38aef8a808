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
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/go-containerregistry/pkg/authn"
	"github.com/google/go-containerregistry/pkg/authn/github"
	"github.com/google/go-containerregistry/pkg/name"
	"github.com/google/go-containerregistry/pkg/v1/google"
	"github.com/google/go-containerregistry/pkg/v1/remote"
	"github.com/google/go-containerregistry/pkg/v1/remote/transport"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"sigs.k8s.io/promo-service/api/promotion"
	"sigs.k8s.io/promo-service/internal/registry/ratelimit"
)

// keychain resolves credentials from the local docker config plus the
// cloud-specific helpers.
var keychain = authn.NewMultiKeychain(
	authn.DefaultKeychain,
	google.Keychain,
	github.Keychain,
)

const defaultRetryWindow = 2 * time.Minute

// remoteClient talks to a real registry through go-containerregistry.
type remoteClient struct {
	opts        []remote.Option
	retryWindow time.Duration
}

// NewClient returns a Client backed by the go-containerregistry remote
// package. All calls go through a rate-limited transport and transient
// failures are retried with exponential backoff.
func NewClient(limit rate.Limit) Client {
	if limit == 0 {
		limit = ratelimit.DefaultLimit
	}
	return &remoteClient{
		opts: []remote.Option{
			remote.WithAuthFromKeychain(keychain),
			remote.WithTransport(ratelimit.NewRoundTripper(limit)),
		},
		retryWindow: defaultRetryWindow,
	}
}

func (c *remoteClient) Exists(
	ctx context.Context, ref promotion.ImageReference,
) (bool, error) {
	parsed, err := name.ParseReference(ref.String())
	if err != nil {
		return false, fmt.Errorf("parsing reference %q: %w", ref.String(), err)
	}

	var found bool
	err = c.withRetries(ctx, func() error {
		_, err := remote.Head(parsed, append(c.opts, remote.WithContext(ctx))...)
		if isNotFound(err) {
			found = false
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("checking existence of %s: %w", ref.String(), err)
	}
	return found, nil
}

func (c *remoteClient) Digest(
	ctx context.Context, ref promotion.ImageReference,
) (string, error) {
	parsed, err := name.ParseReference(ref.String())
	if err != nil {
		return "", fmt.Errorf("parsing reference %q: %w", ref.String(), err)
	}

	var digest string
	err = c.withRetries(ctx, func() error {
		desc, err := remote.Head(parsed, append(c.opts, remote.WithContext(ctx))...)
		if err != nil {
			return err
		}
		digest = desc.Digest.String()
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("resolving digest of %s: %w", ref.String(), err)
	}
	return digest, nil
}

func (c *remoteClient) Retag(
	ctx context.Context, src promotion.ImageReference, newTag string,
) (*promotion.ImageReference, error) {
	srcRef, err := name.ParseReference(src.String())
	if err != nil {
		return nil, fmt.Errorf("parsing source reference %q: %w", src.String(), err)
	}

	dstRef, err := name.NewTag(
		fmt.Sprintf("%s/%s:%s", src.Registry, src.Repository, newTag),
	)
	if err != nil {
		return nil, fmt.Errorf("building target tag %q: %w", newTag, err)
	}

	result := &promotion.ImageReference{
		Registry:   src.Registry,
		Repository: src.Repository,
		Tag:        newTag,
	}
	err = c.withRetries(ctx, func() error {
		desc, err := remote.Get(srcRef, append(c.opts, remote.WithContext(ctx))...)
		if err != nil {
			return err
		}
		// Tagging the descriptor writes a new tag pointing at the
		// existing manifest. No blobs move, and the source tag stays
		// valid.
		if err := remote.Tag(
			dstRef, desc, append(c.opts, remote.WithContext(ctx))...,
		); err != nil {
			return err
		}
		result.Digest = desc.Digest.String()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(
			"retagging %s as %s: %w", src.String(), dstRef.String(), err,
		)
	}

	logrus.Infof("Retagged %s as %s", src.String(), result.String())
	return result, nil
}

// withRetries runs op, retrying transient registry failures with
// exponential backoff until the retry window closes.
func (c *remoteClient) withRetries(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = c.retryWindow
	return backoff.Retry(func() error {
		err := op()
		if err != nil && !isTransient(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(bo, ctx))
}

// isNotFound reports whether the registry definitively said the manifest
// does not exist.
func isNotFound(err error) bool {
	var terr *transport.Error
	if errors.As(err, &terr) {
		return terr.StatusCode == http.StatusNotFound
	}
	return false
}

// isTransient classifies registry failures that are worth retrying:
// rate limiting, server-side errors, and anything that never produced an
// HTTP status (network failures).
func isTransient(err error) bool {
	var terr *transport.Error
	if errors.As(err, &terr) {
		return terr.StatusCode == http.StatusTooManyRequests ||
			terr.StatusCode >= http.StatusInternalServerError
	}
	var perr *name.ErrBadName
	if errors.As(err, &perr) {
		return false
	}
	return true
}
