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
	"os"
	"strings"

	"github.com/schafer-family/cookbook/pkg/errors"
)

// SourceReader resolves input URIs to their content.
type SourceReader struct {
	stdin  io.Reader
	http   *HttpReader
	client ClientFunc
}

// SourceOption configures a SourceReader.
type SourceOption func(*SourceReader)

// WithStdin replaces standard input.
func WithStdin(r io.Reader) SourceOption {
	return func(s *SourceReader) {
		if r != nil {
			s.stdin = r
		}
	}
}

// WithHttpReader replaces the HTTP reader.
func WithHttpReader(r *HttpReader) SourceOption {
	return func(s *SourceReader) {
		if r != nil {
			s.http = r
		}
	}
}

// WithKubeClient replaces the Kubernetes client used for cm:// sources.
func WithKubeClient(fn ClientFunc) SourceOption {
	return func(s *SourceReader) {
		if fn != nil {
			s.client = fn
		}
	}
}

// NewSourceReader returns a SourceReader reading stdin, HTTP, ConfigMaps, and files.
func NewSourceReader(opts ...SourceOption) *SourceReader {
	s := &SourceReader{
		stdin:  os.Stdin,
		http:   NewHttpReader(),
		client: defaultClient,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the content behind uri:
//   - "-": standard input
//   - http:// or https://: fetched with the HTTP reader
//   - cm://namespace/name: the ConfigMapDocumentKey entry of the ConfigMap
//   - anything else: a local file
//
// Failures are ErrCodeReadFailed, except malformed URIs which are
// ErrCodeInvalidRequest.
func (s *SourceReader) Read(ctx context.Context, uri string) ([]byte, error) {
	trimmed := strings.TrimSpace(uri)
	switch {
	case trimmed == "":
		return nil, errors.New(errors.ErrCodeInvalidRequest, "input is empty")

	case trimmed == StdoutURI:
		data, err := io.ReadAll(s.stdin)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeReadFailed, "failed to read stdin", err)
		}
		return data, nil

	case strings.HasPrefix(trimmed, "http://"), strings.HasPrefix(trimmed, "https://"):
		return s.http.ReadWithContext(ctx, trimmed)

	case strings.HasPrefix(trimmed, ConfigMapURIScheme):
		namespace, name, err := parseConfigMapURI(trimmed)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "invalid ConfigMap URI", err)
		}
		return readConfigMapDocument(ctx, s.client, namespace, name)

	default:
		data, err := os.ReadFile(trimmed)
		if err != nil {
			code := errors.ErrCodeReadFailed
			if os.IsNotExist(err) {
				code = errors.ErrCodeNotFound
			}
			return nil, errors.WrapWithContext(code, "failed to read input file", err,
				map[string]any{"path": trimmed})
		}
		return data, nil
	}
}

// ReadSource reads uri with a default SourceReader.
func ReadSource(ctx context.Context, uri string) ([]byte, error) {
	return NewSourceReader().Read(ctx, uri)
}
