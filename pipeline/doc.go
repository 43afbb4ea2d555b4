// Package pipeline connects several Intcode machines, each forked from the
// same program, into amplifier stages.
//
// In a chain, each stage runs once with its phase setting and the previous
// stage's output. In a feedback loop, the last stage's output is fed back
// to the first, and the stages are driven round-robin from a single
// goroutine until the last stage halts.
package pipeline
