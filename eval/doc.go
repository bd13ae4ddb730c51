// Package eval evaluates expr-lang expressions against dandelion trees.
//
// The tree being evaluated is available to expressions as doc, converted
// with ir.ToAny, so that
//
//	eval.Eval(node, `doc.a + 1`, nil)
//
// adds one to the number at field a. Results are converted back with
// ir.FromAny.
//
// Strings may also embed expressions: $[expr] is replaced by the text of
// the result and a string consisting only of .[expr] is replaced by the
// result itself. See ExpandString and ExpandIR.
//
// # Related Packages
//
//   - github.com/dandelion-json/dandelion/ir - the value tree
//   - github.com/expr-lang/expr - expression language
package eval
