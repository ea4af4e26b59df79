// Package api holds the public contract types shared by the render
// registry, the built-in formats and the CLI.
package api

// ChainField is the root-node field carrying the colon-delimited
// category chain descriptor (e.g. "orgs:repos:collaborators").
// The upstream crawler writes it alongside the first category's array.
const ChainField = "category"

// Options tunes a single Transform call.
type Options struct {
	// Description tells renderers to include secondary descriptive
	// fields (e.g. an org's description) when present.
	Description bool `json:"description,omitempty"`
	// Format overrides the registry's active format for this call
	// only. Empty means use the active format.
	Format string `json:"format,omitempty"`
}
