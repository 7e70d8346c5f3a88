// Package matrix provides a small dense linear-algebra storage layer.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that
//     return errors instead of panicking.
//   - Row/column helpers (Row, RowView, SetRow, FromRows, ToRows) used by
//     polynomial-coefficient tables and by evaluation grids.
//   - Central validators (ValidateNotNil, ValidateSameShape, ValidateVecLen,
//     ValidateFinite) and AllClose for tolerance-based comparisons.
//
// Every error returned by this package wraps one of the sentinels declared
// in errors.go; match them with errors.Is.
//
// See the examples in this package and in hermite for usage patterns.
package matrix
