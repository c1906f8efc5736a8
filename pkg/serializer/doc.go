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

// Package serializer moves cookbook data in and out of the process.
//
// Output is encoded as JSON, YAML, a text table, or schema.org JSON-LD and
// written to one of several destinations, selected by URI:
//
//	-                      standard output (also the empty string)
//	cm://namespace/name    Kubernetes ConfigMap, server-side apply
//	oci://registry/repo:tag OCI artifact
//	path/to/file           local file, replaced atomically
//
// Every Serializer encodes the complete value before touching its
// destination, so a failed encode never leaves partial output.
//
// Input documents are resolved the same way by SourceReader: "-" reads
// stdin, http(s) URLs are fetched, cm:// URIs read the cookbook.md key of a
// ConfigMap, and anything else is a local file.
//
// Usage:
//
//	dst, err := serializer.NewDestination(serializer.FormatJSON, "recipes.json")
//	if err != nil {
//	    return err
//	}
//	if err := dst.Serialize(ctx, catalog.Recipes); err != nil {
//	    return err
//	}
//
// RespondJSON and RespondContent give HTTP handlers the same encode-first
// behavior.
package serializer
