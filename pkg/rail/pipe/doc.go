// Package pipe contains channel plumbing for stringing channel-lifted
// operations into pipelines: feeding values in, pumping them through
// one-shot stages strictly in order, and collecting them out. It
// defines no outcome logic of its own; the outcome, maybe and result
// packages supply the stages.
//
// The pumps honor context cancellation as their stop signal. The
// stages they drive never interpret cancellation themselves; traversal
// stays strictly sequential because short-circuiting on first failure
// requires it.
package pipe
