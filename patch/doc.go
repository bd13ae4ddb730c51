// Package patch applies JSON Patch (RFC 6902) and JSON Merge Patch
// (RFC 7386) documents to dandelion trees, using
// github.com/evanphx/json-patch.
//
// Inputs are never modified; each function returns a new tree.
package patch
