// Package vitals owns a bounded hit-point pool shared between game
// subsystems.
//
// The pool is split into two surfaces with different reach:
//
//   - Grant, the restricted capability, carries every read and write
//     operation. The composing owner calls New once at startup and hands
//     the Grant only to the subsystems allowed to touch the pool.
//   - *Vitals, the record itself, exposes a single method to everyone:
//     DumpDiagnostics. Code without a Grant can inspect the pool for
//     debugging but has no way to mutate it.
//
// The split is enforced by export rules alone. There is no runtime
// check, no error path, and no registry of who holds a Grant; a caller
// either has the capability value or the mutators do not compile.
//
// Every write clamps rather than fails. The pool invariant
// 0 <= current <= maximum holds after any sequence of calls, including
// concurrent ones: all operations take the record's lock.
package vitals
