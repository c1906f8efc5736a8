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

package serializer

import (
	"context"
	"log/slog"
	"strconv"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/schafer-family/cookbook/pkg/oci"
)

// PushFunc pushes an artifact to a registry reference.
type PushFunc func(ctx context.Context, ref *oci.Reference, art oci.Artifact, opts oci.PushOptions) (*oci.PushResult, error)

// OCIWriter publishes the encoded catalog as a single-layer OCI artifact.
type OCIWriter struct {
	ref     *oci.Reference
	format  Format
	options oci.PushOptions
	push    PushFunc
}

// NewOCIWriter creates an OCIWriter for ref.
func NewOCIWriter(ref *oci.Reference, format Format) *OCIWriter {
	return &OCIWriter{
		ref:    ref,
		format: format,
		push:   oci.Push,
	}
}

// WithPushOptions sets the registry connection options.
func (w *OCIWriter) WithPushOptions(opts oci.PushOptions) *OCIWriter {
	w.options = opts
	return w
}

// WithPushFunc replaces the registry push.
func (w *OCIWriter) WithPushFunc(fn PushFunc) *OCIWriter {
	if fn != nil {
		w.push = fn
	}
	return w
}

// Serialize encodes v and pushes it.
func (w *OCIWriter) Serialize(ctx context.Context, v any) error {
	content, err := Marshal(w.format, v)
	if err != nil {
		return err
	}

	annotations := map[string]string{
		ociv1.AnnotationTitle: "Schafer Family Cookbook",
	}
	if recipes, ok := asRecipes(v); ok {
		annotations["cookbook.schafer-family.recipes"] = strconv.Itoa(len(recipes))
	}

	res, err := w.push(ctx, w.ref, oci.Artifact{
		Data:        content,
		MediaType:   w.format.MediaType(),
		FileName:    "recipes." + w.format.Extension(),
		Annotations: annotations,
	}, w.options)
	if err != nil {
		return err
	}

	slog.Info("catalog pushed", "reference", res.Reference, "digest", res.Digest)
	return nil
}
