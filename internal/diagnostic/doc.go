// Package diagnostic provides structured errors, warnings and notes
// collected while checking merge schemas.
//
// Key capabilities:
//   - Unknown strategy and unresolved reference errors
//   - Conflict reports naming the mixin and member involved
//   - Suggestions for the usual fixes (merge vs mergeOver)
package diagnostic
