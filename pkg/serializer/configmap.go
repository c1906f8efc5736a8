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
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	accorev1 "k8s.io/client-go/applyconfigurations/core/v1"

	"github.com/schafer-family/cookbook/pkg/defaults"
	"github.com/schafer-family/cookbook/pkg/errors"
	"github.com/schafer-family/cookbook/pkg/k8s/client"
)

const (
	// ConfigMapURIScheme is the URI scheme for ConfigMap sources and destinations.
	ConfigMapURIScheme = "cm://"

	// ConfigMapDocumentKey holds the cookbook markdown in a source ConfigMap.
	ConfigMapDocumentKey = "cookbook.md"

	// configMapFieldManager owns the fields written by server-side apply.
	configMapFieldManager = "cookbook"

	// maxConfigMapBytes is the API server limit on ConfigMap data.
	maxConfigMapBytes = 1 << 20
)

// ClientFunc returns the Kubernetes client used for ConfigMap I/O.
type ClientFunc func() (client.Interface, error)

func defaultClient() (client.Interface, error) {
	c, cfg, err := client.GetKubeClient()
	if err != nil {
		return nil, err
	}
	slog.Debug("kubernetes client ready", "auth_method", client.AuthMethod(cfg))
	return c, nil
}

// ConfigMapWriter writes the encoded catalog to a ConfigMap, creating or
// updating it with server-side apply. The ConfigMap carries:
//   - data.recipes.{json|yaml|txt|jsonld}: the encoded catalog
//   - data.format: the format used
//   - data.count: the number of recipes, when v is a recipe list
//   - data.timestamp: RFC 3339 time of the write
type ConfigMapWriter struct {
	namespace string
	name      string
	format    Format
	client    ClientFunc
}

// NewConfigMapWriter creates a ConfigMapWriter for namespace/name.
func NewConfigMapWriter(namespace, name string, format Format) *ConfigMapWriter {
	return &ConfigMapWriter{
		namespace: namespace,
		name:      name,
		format:    format,
		client:    defaultClient,
	}
}

// WithClient replaces the Kubernetes client source.
func (w *ConfigMapWriter) WithClient(fn ClientFunc) *ConfigMapWriter {
	if fn != nil {
		w.client = fn
	}
	return w
}

// Serialize encodes v and applies the ConfigMap.
func (w *ConfigMapWriter) Serialize(ctx context.Context, v any) error {
	content, err := Marshal(w.format, v)
	if err != nil {
		return err
	}
	if len(content) > maxConfigMapBytes {
		return errors.NewWithContext(errors.ErrCodeWriteFailed, "catalog exceeds the ConfigMap size limit",
			map[string]any{"bytes": len(content), "limit": maxConfigMapBytes})
	}

	writeCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapWriteTimeout)
	defer cancel()

	cs, err := w.client()
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to get kubernetes client", err)
	}

	data := map[string]string{
		"recipes." + w.format.Extension(): string(content),
		"format":                          string(w.format),
		"timestamp":                       time.Now().UTC().Format(time.RFC3339),
	}
	if recipes, ok := asRecipes(v); ok {
		data["count"] = strconv.Itoa(len(recipes))
	}

	configMap := accorev1.ConfigMap(w.name, w.namespace).
		WithLabels(map[string]string{
			"app.kubernetes.io/name":      "cookbook",
			"app.kubernetes.io/component": "recipes",
		}).
		WithData(data)

	slog.Info("applying ConfigMap",
		"namespace", w.namespace,
		"name", w.name,
		"format", w.format)

	_, err = cs.CoreV1().ConfigMaps(w.namespace).Apply(writeCtx, configMap, metav1.ApplyOptions{
		FieldManager: configMapFieldManager,
		Force:        true,
	})
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, "failed to apply ConfigMap", err)
	}
	return nil
}

// readConfigMapDocument returns the cookbook document stored under
// ConfigMapDocumentKey.
func readConfigMapDocument(ctx context.Context, fn ClientFunc, namespace, name string) ([]byte, error) {
	readCtx, cancel := context.WithTimeout(ctx, defaults.ConfigMapReadTimeout)
	defer cancel()

	cs, err := fn()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeReadFailed, "failed to get kubernetes client", err)
	}

	cm, err := cs.CoreV1().ConfigMaps(namespace).Get(readCtx, name, metav1.GetOptions{})
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeReadFailed, "failed to get ConfigMap", err,
			map[string]any{"namespace": namespace, "name": name})
	}

	doc, ok := cm.Data[ConfigMapDocumentKey]
	if !ok {
		return nil, errors.NewWithContext(errors.ErrCodeReadFailed,
			fmt.Sprintf("ConfigMap %s/%s has no %s key", namespace, name, ConfigMapDocumentKey),
			map[string]any{"namespace": namespace, "name": name})
	}

	slog.Debug("read cookbook from ConfigMap",
		"namespace", namespace,
		"name", name,
		"size", len(doc))
	return []byte(doc), nil
}

// parseConfigMapURI parses a ConfigMap URI in the format cm://namespace/name.
func parseConfigMapURI(uri string) (namespace, name string, err error) {
	if !strings.HasPrefix(uri, ConfigMapURIScheme) {
		return "", "", fmt.Errorf("invalid ConfigMap URI: must start with %s", ConfigMapURIScheme)
	}

	parts := strings.SplitN(strings.TrimPrefix(uri, ConfigMapURIScheme), "/", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid ConfigMap URI format: expected %snamespace/name, got %s", ConfigMapURIScheme, uri)
	}

	namespace = strings.TrimSpace(parts[0])
	name = strings.TrimSpace(parts[1])

	if namespace == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: namespace cannot be empty")
	}
	if name == "" {
		return "", "", fmt.Errorf("invalid ConfigMap URI: name cannot be empty")
	}
	return namespace, name, nil
}
