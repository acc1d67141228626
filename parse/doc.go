// Package parse parses TOML text into the typed, order-preserving
// tree of package ast, retaining comment placement, numeric literal
// bases and string quoting styles for lossless re-serialization.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(data))
//	if err != nil {
//	    return err
//	}
//
//	// Grammar output only, before document assembly:
//	lines, err := parse.ParseLines([]byte(data))
//
// Parsing is a single synchronous pass; a parse either completes or
// fails deterministically with the first error, and no partial
// document is returned.
//
// # Related Packages
//
//   - github.com/signadot/toml-format/ast - typed tree
//   - github.com/signadot/toml-format/encode - tree back to text
//   - github.com/signadot/toml-format/token - tokenization
package parse
