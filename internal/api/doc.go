// Package api contains the HTTP adapter for the payment-gateway backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract (see the Client interface) covering the
//     gateway surface: account lookup/creation, invoice creation, listing
//     with filters, and single-invoice lookup.
//  2. A concrete net/http implementation (see HTTPClient) that joins
//     endpoints onto a configured base URL, merges a JSON content type with
//     caller headers, injects the X-API-Key credential when one is set, and
//     decodes JSON bodies into the caller's types.
//
// # Error Handling
//
// Responses outside [200,300) fail with *Error carrying the numeric status
// and status text. Transport-level failures are wrapped without a status.
// Common conditions are additionally matchable with errors.Is:
// ErrUnauthorized, ErrNotFound, ErrUnavailable. The adapter never retries;
// the caller decides recovery.
//
// # Concurrency
//
// HTTPClient is safe for concurrent use; the credential is guarded by a
// mutex and everything else is immutable after construction.
package api
