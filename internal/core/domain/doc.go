// Package domain defines the core value types shared by the key breakers.
//
// Everything here is an immutable value built per recovery call:
//
//   - Recovery: discriminated Found/NotFound outcome with run statistics
//   - Contains: the fragment predicate both breakers match with
//   - Errors: coded domain errors (invalid argument, alphabet violation,
//     search budget and cancellation)
//
// NotFound is a normal outcome and is never reported as an error.
package domain
