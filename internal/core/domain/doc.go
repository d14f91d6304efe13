// Package domain contains the core business entities for Cogitate:
// the Thought record, the validation rules that gate its construction,
// and the session-scoped Ledger that stores admitted thoughts.
//
// The domain has no dependencies on adapters or infrastructure.
package domain
