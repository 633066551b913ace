// Package figmatokens synchronizes design tokens from a Figma file into
// static output files: CSS custom properties, a Tailwind theme extension,
// SCSS variables, and a structured JSON token document.
//
// The sync is one-way and idempotent: the pipeline fetches the remote
// document and its published styles, normalizes style names into canonical
// token keys, serializes every requested format from one immutable snapshot,
// and only rewrites output files whose content actually changed.
//
// The CLI lives in cmd/figma-tokens; this root package exposes the same
// pipeline as a Go API so that callers can embed syncing in their own tools
// without shelling out.
//
// # Import
//
// The module path contains a hyphen but Go package names cannot, so the
// package is named figmatokens:
//
//	import "github.com/hellenic-development/figma-tokens" // package figmatokens
//
// # Quick start
//
//	result, err := figmatokens.Run(ctx, figmatokens.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/Design-System",
//	    OutputDir:   "design-tokens",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, out := range result.Outputs {
//	    log.Printf("%s: %s", out.Path, out.Status)
//	}
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
//
// # Change detection
//
// Each destination's content is fingerprinted; identical content is skipped
// and reported as unchanged. Pass a [sink.FingerprintCache] in
// [Options.Cache] to carry fingerprints across runs in a long-lived process.
package figmatokens
