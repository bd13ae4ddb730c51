// Package libdiff computes differences between dandelion trees.
//
// Diff gives structural changes addressed by JSON pointers, which ToPatch
// turns into an RFC 6902 patch and Reverse inverts. Text gives a line
// diff of the encoded trees for display.
//
// Both are built on github.com/sergi/go-diff: array elements are aligned
// by diffing sequences of per-element summaries.
package libdiff
