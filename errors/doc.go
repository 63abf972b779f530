// Package errors provides the coded error type used across seqkit.
//
// Every failure the library reports locally (empty input to Max, a reused
// Builder, malformed JSON, a wrong element type) is an *AppError carrying a
// machine-readable ErrorCode, a human-readable message and optional details.
//
//	if _, err := seq.Max(seq.Nil[int]()); errors.IsCode(err, errors.ErrCodeEmptySequence) {
//	    // handle empty input
//	}
package errors
