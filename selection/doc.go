// Package selection implements the anchor-based multi-selection over font
// slots.
//
// A Selection is an immutable value: every transition returns a new
// Selection and leaves the receiver untouched. The selected set keeps
// insertion order, which decides the anchor fallback of a ctrl-click that
// deselects the anchor.
package selection
