// Package edit is the editing engine for a segment font: a Session owns one
// document, one selection and one clipboard, and applies every operation as a
// single atomic step.
//
// Each operation computes the next (document, selection) pair from the
// current one and commits it with one assignment. An operation whose
// destinations fall outside the table is rejected as a whole and leaves the
// session untouched; the rejection is reported as a false result, never as an
// error. Slot indices that the caller passes directly must be in range;
// anything else panics.
//
// A Session is not safe for concurrent use. It is meant to be driven by a
// single event loop.
package edit
