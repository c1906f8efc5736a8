/*
Copyright © 2025 The Schafer Family Cookbook Authors
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"encoding/json"
	"testing"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"oras.land/oras-go/v2/content"
	"oras.land/oras-go/v2/content/memory"
)

func TestStripProtocol(t *testing.T) {
	tests := map[string]string{
		"https://ghcr.io":       "ghcr.io",
		"http://localhost:5000": "localhost:5000",
		"ghcr.io":               "ghcr.io",
	}
	for in, want := range tests {
		assert.Equal(t, want, stripProtocol(in), in)
	}
}

func TestPushTo_MemoryTarget(t *testing.T) {
	ctx := context.Background()
	dst := memory.New()
	ref := &Reference{Registry: "localhost:5000", Repository: "family/cookbook", Tag: "v1"}
	data := []byte(`[{"title":"Festive Apple Dip"}]`)

	res, err := pushTo(ctx, dst, ref, Artifact{
		Data:        data,
		MediaType:   "application/json",
		FileName:    "recipes.json",
		Annotations: map[string]string{ociv1.AnnotationVersion: "v1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000/family/cookbook:v1", res.Reference)
	assert.NotEmpty(t, res.Digest)

	desc, err := dst.Resolve(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, res.Digest, desc.Digest.String())

	raw, err := content.FetchAll(ctx, dst, desc)
	require.NoError(t, err)

	var manifest ociv1.Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	assert.Equal(t, ArtifactType, manifest.ArtifactType)
	assert.Equal(t, "v1", manifest.Annotations[ociv1.AnnotationVersion])
	require.Len(t, manifest.Layers, 1)

	layer := manifest.Layers[0]
	assert.Equal(t, "application/json", layer.MediaType)
	assert.Equal(t, "recipes.json", layer.Annotations[ociv1.AnnotationTitle])

	blob, err := content.FetchAll(ctx, dst, layer)
	require.NoError(t, err)
	assert.Equal(t, data, blob)
}

func TestPushTo_DefaultMediaType(t *testing.T) {
	ctx := context.Background()
	dst := memory.New()
	ref := &Reference{Registry: "localhost:5000", Repository: "family/cookbook", Tag: "latest"}

	_, err := pushTo(ctx, dst, ref, Artifact{Data: []byte("[]")})
	require.NoError(t, err)

	desc, err := dst.Resolve(ctx, "latest")
	require.NoError(t, err)
	raw, err := content.FetchAll(ctx, dst, desc)
	require.NoError(t, err)

	var manifest ociv1.Manifest
	require.NoError(t, json.Unmarshal(raw, &manifest))
	require.Len(t, manifest.Layers, 1)
	assert.Equal(t, "application/json", manifest.Layers[0].MediaType)
	assert.Empty(t, manifest.Layers[0].Annotations)
}

func TestPush_NilReference(t *testing.T) {
	_, err := Push(context.Background(), nil, Artifact{}, PushOptions{})
	require.Error(t, err)
}

func TestCreateAuthClient(t *testing.T) {
	c := createAuthClient(false, true)
	require.NotNil(t, c)
	require.NotNil(t, c.Client)
}
