// Package tsvnorm converts tab-separated text between a denormalized
// form, where one cell may hold several colon-separated values, and a
// normalized form with exactly one value per cell.
//
// The central entry points are [Write], [Marshal], and [WriteFile],
// which accept a [Mode] constant selecting one of two pipelines.
//
// [Normalize] expands every row into the Cartesian product of its
// cells' value lists, one output row per combination:
//
//	a:b	c   →   a	c
//	            b	c
//
// [Group] is the inverse: it collapses 2-column key/value rows that
// share a key into one row with colon-joined values, keys emitted in
// first-appearance order:
//
//	k	v1
//	k	v2   →   k	v1:v2
//
// # Validation
//
// The whole input is checked before either pipeline runs: only tab and
// printable ASCII (0x20–0x7E) are accepted. The pipelines then enforce
// structural limits per line — see [MaxColumns], [MaxValuesPerCell],
// [MaxCellLength], [MaxKeyLength], [MaxValueLength], [MaxGroupRows],
// and [MaxValuesPerKey]. The first violation aborts the run.
//
// # Failure Atomicity
//
// A failed run produces no output. [Write] buffers internally and only
// touches the destination writer on full success; [WriteFile] writes
// to a temporary file and renames it into place as the last step.
//
// # Errors
//
// Every failure wraps a sentinel error ([ErrCharsetViolation],
// [ErrColumnCountMismatch], [ErrTooManyValues], ...) with the line,
// column, or key that triggered it:
//
//	out, err := tsvnorm.Marshal(tsvnorm.Normalize, input)
//	if errors.Is(err, tsvnorm.ErrTooManyValues) { ... }
//
// # Mode Selection
//
// Use [ParseMode] to convert a CLI argument into a [Mode]:
//
//	m, err := tsvnorm.ParseMode(os.Args[1])
//	err = tsvnorm.Write(os.Stdout, m, os.Stdin)
package tsvnorm
