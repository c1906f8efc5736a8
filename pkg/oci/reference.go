// Copyright (c) 2025, The Schafer Family Cookbook Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package oci

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/schafer-family/cookbook/pkg/errors"
)

// URIScheme is the URI scheme for registry output (e.g., "oci://ghcr.io/family/cookbook:2025").
const URIScheme = "oci://"

// DefaultTag is applied when a reference names no tag.
const DefaultTag = "latest"

// Reference is a parsed registry destination.
type Reference struct {
	// Registry is the registry host, with port when given (e.g., "localhost:5000").
	Registry string
	// Repository is the repository path (e.g., "family/cookbook").
	Repository string
	// Tag is the image tag; empty when the URI had none.
	Tag string
}

// IsURI reports whether target uses the oci:// scheme.
func IsURI(target string) bool {
	return strings.HasPrefix(strings.TrimSpace(target), URIScheme)
}

// ParseReference parses an oci://registry/repository[:tag] URI. Digests are
// rejected since a push needs a tag.
func ParseReference(target string) (*Reference, error) {
	target = strings.TrimSpace(target)
	if !IsURI(target) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("OCI reference must start with %s", URIScheme))
	}

	ref, err := reference.ParseNormalizedNamed(strings.TrimPrefix(target, URIScheme))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "invalid OCI reference", err)
	}
	if _, ok := ref.(reference.Digested); ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference must use a tag, not a digest")
	}

	out := &Reference{
		Registry:   reference.Domain(ref),
		Repository: reference.Path(ref),
	}
	if tagged, ok := ref.(reference.Tagged); ok {
		out.Tag = tagged.Tag()
	}
	return out, nil
}

// String returns the oci:// form of the reference.
func (r *Reference) String() string {
	return URIScheme + r.ImageReference()
}

// ImageReference returns the registry reference without the scheme.
func (r *Reference) ImageReference() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with tag.
func (r *Reference) WithTag(tag string) *Reference {
	cp := *r
	cp.Tag = tag
	return &cp
}
