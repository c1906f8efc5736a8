// Package oci publishes converted recipe catalogs to OCI registries.
//
// A catalog is pushed as a single-layer OCI 1.1 artifact with artifact type
// ArtifactType. The layer carries the encoded catalog and its file name, so a
// plain `oras pull` restores recipes.json:
//
//	ref, err := oci.ParseReference("oci://ghcr.io/schafer/cookbook:2025")
//	if err != nil {
//	    return err
//	}
//	res, err := oci.Push(ctx, ref, oci.Artifact{
//	    Data:      data,
//	    MediaType: "application/json",
//	    FileName:  "recipes.json",
//	}, oci.PushOptions{})
//
// Registry credentials come from the Docker credential store (~/.docker/config.json).
// A reference without a tag is pushed as "latest".
package oci
