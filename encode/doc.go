// Package encode serializes document tables back to text.
//
// # Usage
//
//	// Encode a parsed document
//	tbl, err := parse.Parse(input)
//	...
//	err = encode.Encode(tbl, os.Stdout)
//
//	// Encode with options
//	err = encode.Encode(tbl, os.Stdout, encode.EncodeComments(false))
//
// Scalars reproduce the formatting recorded at parse time: integer
// bases, float notation and string quoting styles survive a
// parse/encode round trip.
//
// # Related Packages
//
//   - github.com/signadot/toml-format/ast - document representation
//   - github.com/signadot/toml-format/parse - parse text to tables
package encode
