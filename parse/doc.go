// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "tags": [1, 2]}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err = parse.ParseString(`[1, 2, 3]`)
//
//	// Record where each node starts
//	positions := map[*ir.Node]*token.Pos{}
//	node, err = parse.Parse(data, parse.ParsePositions(positions))
//
// The grammar is strict JSON: numbers follow the RFC 8259 syntax and
// overflow to infinity is an error ([ErrNumberTooBig]), strings accept the
// escapes \" \\ \/ \b \f \n \r \t but not \u, and exactly one value may
// appear in the input, surrounded by optional whitespace.
//
// Errors are reported as *[ParseErr]; use errors.Is with the Err* values
// to tell them apart.
//
// # Related Packages
//
//   - github.com/dandelion-json/dandelion/ir - the value tree
//   - github.com/dandelion-json/dandelion/encode - encode nodes as text
//   - github.com/dandelion-json/dandelion/token - cursor and positions
package parse
