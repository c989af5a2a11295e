// Package debugassert implements spec.md §7's third error category:
// internal consistency checks for invariants that should be impossible
// to violate if every other component is correct (e.g. a battle result
// that isn't symmetrical between players). Check panics by default, so
// `go test ./...` and ordinary development builds exercise every
// invariant; building a release training binary with `-tags echofast`
// strips the checks from hot CFR/tree-generation loops, the way the
// teacher's benchmark files expect tight inner loops free of anything
// but the measured work.
package debugassert
