// Package builder is a fluent helper for assembling a schedule.Request by
// hand: named channels, named shapes ("rect"/"hann"/"triangle" pre-
// registered exactly as the original request builder pre-registers them),
// and small sugar constructors for every schedule.Element variant so test
// fixtures and examples don't have to spell out schedule.DefaultCommon()
// at every leaf.
//
// A Request accumulates channels and shapes; the schedule tree itself is
// built separately (with this package's sugar constructors, or schedule's
// own struct literals) and handed to Build.
package builder
