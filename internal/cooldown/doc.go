// Package cooldown implements the adaptive trigger rate limit.
//
// Every admitted trigger is remembered for a sliding window. The cooldown
// between two admitted triggers grows linearly with the number of triggers
// still inside the window and is capped, so bursts throttle harder without
// ever blocking indefinitely.
package cooldown
