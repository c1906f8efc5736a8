/*
Copyright © 2025 The Schafer Family Cookbook Authors
SPDX-License-Identifier: Apache-2.0
*/

package oci

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net/http"
	"strings"

	ociv1 "github.com/opencontainers/image-spec/specs-go/v1"
	oras "oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/memory"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/credentials"

	"github.com/schafer-family/cookbook/pkg/defaults"
	apperrors "github.com/schafer-family/cookbook/pkg/errors"
)

// ArtifactType is the artifact type of a pushed recipe catalog.
const ArtifactType = "application/vnd.schafer-family.cookbook.catalog.v1"

// Artifact is a single-file catalog to push.
type Artifact struct {
	// Data is the encoded catalog.
	Data []byte
	// MediaType is the layer media type (e.g., "application/json").
	MediaType string
	// FileName is recorded as the layer title so `oras pull` restores it.
	FileName string
	// Annotations are added to the manifest.
	Annotations map[string]string
}

// PushOptions configures the registry connection.
type PushOptions struct {
	// PlainHTTP uses HTTP instead of HTTPS for the registry connection.
	PlainHTTP bool
	// InsecureTLS skips TLS certificate verification.
	InsecureTLS bool
}

// PushResult contains the result of a successful push.
type PushResult struct {
	// Digest is the manifest digest.
	Digest string
	// Reference is the pushed image reference.
	Reference string
}

// Push packs the artifact into an OCI 1.1 manifest and pushes it to ref.
// A reference without a tag is pushed as DefaultTag.
func Push(ctx context.Context, ref *Reference, art Artifact, opts PushOptions) (*PushResult, error) {
	if ref == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "OCI reference is required")
	}
	if ref.Tag == "" {
		ref = ref.WithTag(DefaultTag)
	}

	ctx, cancel := context.WithTimeout(ctx, defaults.OCIPushTimeout)
	defer cancel()

	repo, err := remote.NewRepository(stripProtocol(ref.Registry) + "/" + ref.Repository)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to initialize remote repository", err)
	}
	repo.PlainHTTP = opts.PlainHTTP
	repo.Client = createAuthClient(opts.PlainHTTP, opts.InsecureTLS)

	slog.Info("pushing catalog to registry",
		"reference", ref.ImageReference(),
		"size", len(art.Data))

	return pushTo(ctx, repo, ref, art)
}

// pushTo packs art in memory and copies it to dst under ref.Tag.
func pushTo(ctx context.Context, dst oras.Target, ref *Reference, art Artifact) (*PushResult, error) {
	store := memory.New()

	manifest, err := pack(ctx, store, art)
	if err != nil {
		return nil, err
	}
	if err := store.Tag(ctx, manifest, ref.Tag); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to tag manifest in local store", err)
	}

	desc, err := oras.Copy(ctx, store, ref.Tag, dst, ref.Tag, oras.DefaultCopyOptions)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeWriteFailed, "failed to push artifact to registry", err)
	}

	return &PushResult{
		Digest:    desc.Digest.String(),
		Reference: ref.ImageReference(),
	}, nil
}

func pack(ctx context.Context, store *memory.Store, art Artifact) (ociv1.Descriptor, error) {
	mediaType := art.MediaType
	if mediaType == "" {
		mediaType = "application/json"
	}

	layer, err := oras.PushBytes(ctx, store, mediaType, art.Data)
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to stage catalog layer", err)
	}
	if art.FileName != "" {
		layer.Annotations = map[string]string{ociv1.AnnotationTitle: art.FileName}
	}

	manifest, err := oras.PackManifest(ctx, store, oras.PackManifestVersion1_1, ArtifactType,
		oras.PackManifestOptions{
			Layers:              []ociv1.Descriptor{layer},
			ManifestAnnotations: art.Annotations,
		})
	if err != nil {
		return ociv1.Descriptor{}, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to pack manifest", err)
	}
	return manifest, nil
}

// stripProtocol removes an http:// or https:// prefix from a registry host.
func stripProtocol(registry string) string {
	registry = strings.TrimPrefix(registry, "https://")
	return strings.TrimPrefix(registry, "http://")
}

// createAuthClient creates a registry client using Docker credentials when available.
func createAuthClient(plainHTTP, insecureTLS bool) *auth.Client {
	credStore, err := credentials.NewStoreFromDocker(credentials.StoreOptions{})
	if err != nil {
		slog.Debug("docker credential store unavailable", "error", err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !plainHTTP && insecureTLS {
		if transport.TLSClientConfig == nil {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec
		} else {
			transport.TLSClientConfig.InsecureSkipVerify = true //nolint:gosec
		}
	}

	client := &auth.Client{
		Client: &http.Client{Transport: transport},
		Cache:  auth.NewCache(),
	}
	if credStore != nil {
		client.Credential = credentials.Credential(credStore)
	}
	return client
}
