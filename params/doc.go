// Package params implements the parameter-dictionary discipline shared by
// every halopop model: a flat name→value dictionary whose key set is fixed
// at construction and re-validated, in both directions, on every update or
// per-call override.
//
// Models own their dictionaries. Accessors hand out clones; the only
// mutation path is a model's UpdateParams, which rejects any key set that
// differs from the one declared at construction (ErrInvalidKeys).
package params
