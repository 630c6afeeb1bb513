// Package assembly turns a stick inventory, a layer count and a fixed base
// pattern into the placement problem of the interlocking-stick puzzle, and
// reads a solved assignment back into a per-position layout.
//
// Layers hold 3 sticks each and stack crosswise: the stick at column c of a
// layer crosses the stick at position t of the layer below at touch point
// (c, t), where the upper stick's bottom groove t must interlock with the
// lower stick's top groove c. At every touch point of every interface
// exactly one of the two adjoining surfaces presents a groove; the fixed
// base stands in for the layer below the first one, and the top face of the
// last layer must come out smooth. The objective seats as many sticks as
// the inventory allows, so an imperfect inventory yields a best partial
// assembly instead of an outright failure.
package assembly
