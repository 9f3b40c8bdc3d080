// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, grids, clipping)
//
// Not allowed here:
// - key handling, editor state, catalog knowledge, or breakpoint policy
package widgets
