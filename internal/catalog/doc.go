// Package catalog parses the model manager's listing output into
// structured entries and holds the result for the UI.
//
// # Listing Format
//
// `ollama list` prints a columnar table:
//
//	NAME                ID              SIZE      MODIFIED
//	phi3:3.8b           4f2222927938    2.2 GB    3 days ago
//	codegemma:2b        926331004170    1.6 GB    2 weeks ago
//
// ParseList skips the header, produces one Entry per well-formed row in
// original order, and reports malformed rows as warnings without aborting
// the refresh. "No models installed" on stderr means an empty catalog.
//
// # Size Units
//
// Sizes use 1024-based units (B/KB/MB/GB/TB). ParseSize and FormatSize
// share the rule, so a size survives a parse/format round trip.
//
// # Store
//
// Store is a mutex-guarded snapshot holder. Replace swaps the whole
// catalog atomically on a successful refresh and keeps the prior entries
// when a refresh fails. Lookup before the first refresh reports not
// found rather than erroring.
package catalog
