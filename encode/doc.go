// Package encode writes ir nodes as text.
//
// JSON output is indented by default; [EncodeWire] gives compact single
// line output. Object fields are always written in sorted key order, so
// encoding is deterministic. YAML output is produced with goccy/go-yaml.
//
//	encode.Encode(node, os.Stdout)
//	encode.Encode(node, os.Stdout, encode.EncodeWire(true))
//	encode.Encode(node, os.Stdout, encode.EncodeFormat(format.YAMLFormat))
//	encode.Encode(node, os.Stdout, encode.EncodeColors(encode.NewColors()))
//
// Strings never contain \u escapes except for control characters other
// than \b, \f, \n, \r and \t, which the parser cannot produce.
package encode
