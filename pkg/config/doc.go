// Package config loads the optional cookbook configuration file.
//
// The file is YAML; every key is optional and falls back to a built-in default:
//
//	defaults:
//	  contributor: unattributed
//	  image: https://images.unsplash.com/photo-1495195129352-aec325a55b65?auto=format&fit=crop&q=80&w=800
//	output:
//	  format: json        # json, yaml, table or jsonld
//	  path: recipes.json  # empty or "-" for stdout
//	server:
//	  port: 8080
//	  rateLimit: 100
//	  rateLimitBurst: 200
//	  watch: false
//
// Command-line flags and COOKBOOK_* environment variables take precedence over
// the file. Invalid files fail with an INVALID_REQUEST error before any input
// is read.
package config
