// Package pgerrors holds the sentinel error catalogue shared across the
// pulsegen module.
//
// Error policy:
//   - Only sentinel variables are exported; callers branch with errors.Is.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     callers attach context with fmt.Errorf("...: %w", ErrX) at the
//     boundary that detects the problem.
//   - Validation failures (bad requests) return sentinels; they never panic.
//     Panics are reserved for genuine programmer errors inside layout node
//     state-machine transitions (see layout.Node), which are bugs, not
//     malformed input.
package pgerrors
