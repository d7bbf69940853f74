// Package eyes is the eye animation engine: per-eye geometry state, a
// tick-driven animation controller for blink/look/mood/curious commands, and
// a deterministic frame renderer.
//
// The engine is single-threaded and cooperative. An external driver calls
// Tick with the elapsed time at its own cadence, then renders; the engine has
// no internal timers and never blocks.
package eyes
