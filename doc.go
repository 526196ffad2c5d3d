// Package goodmoney implements a local-first personal-finance ledger.
//
// The ledger holds a user's transactions, budgets, savings goals, a
// mortgage, a superannuation account and insurance policies entirely
// on-device. A [Store] is the single authoritative in-memory snapshot of
// all of them: it is loaded once from a [kv.Store] at startup, mutated
// through typed operations that persist asynchronously, and queried
// synchronously for monthly aggregates and long-range projections.
//
// Durability is best-effort by design: a mutation applies to memory first
// and a failed write is logged, never surfaced. Within a session the
// in-memory snapshot is the source of truth.
package goodmoney
