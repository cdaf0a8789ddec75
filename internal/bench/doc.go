// Package bench implements the pure numeric benchmark kernels.
//
// Every kernel is deterministic: fixed seeds, fixed formulas, no state
// shared between calls. All 32-bit arithmetic wraps on overflow, which
// the LCG and hash-mixing recurrences rely on.
package bench
