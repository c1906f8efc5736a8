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
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/oci"
)

// Serializer writes a value to a destination in one step. Implementations
// encode fully before touching the destination, so a failed Serialize leaves
// nothing behind.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface for serializers holding resources.
type Closer interface {
	Close() error
}

// StdoutURI selects standard output explicitly.
const StdoutURI = "-"

// NewDestination returns the serializer for uri:
//   - "" or "-": stdout
//   - cm://namespace/name: Kubernetes ConfigMap
//   - oci://registry/repository[:tag]: OCI registry artifact
//   - anything else: a file, replaced atomically
//
// Malformed URIs are ErrCodeInvalidRequest.
func NewDestination(format Format, uri string) (Serializer, error) {
	return newDestination(format, uri, os.Stdout)
}

func newDestination(format Format, uri string, stdout io.Writer) (Serializer, error) {
	if format.IsUnknown() {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "unsupported output format: "+string(format))
	}

	trimmed := strings.TrimSpace(uri)
	switch {
	case trimmed == "" || trimmed == StdoutURI:
		return NewWriter(format, stdout), nil

	case strings.HasPrefix(trimmed, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid ConfigMap URI", err)
		}
		return NewConfigMapWriter(namespace, name, format), nil

	case oci.IsURI(trimmed):
		ref, err := oci.ParseReference(trimmed)
		if err != nil {
			return nil, err
		}
		return NewOCIWriter(ref, format), nil

	default:
		slog.Debug("writing to file", "path", trimmed, "format", format)
		return NewFileWriter(format, trimmed), nil
	}
}
