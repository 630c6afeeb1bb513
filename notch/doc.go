// Package notch encodes, orients and classifies the groove patterns of
// puzzle sticks.
//
// A stick carries 6 grooves, laid out as two rows of 3: slots 0 to 2 form
// the bottom row, exposed to the layer below, and slots 3 to 5 the top row,
// exposed to the layer above. A pattern is stored compactly as an integer in
// [0, 63], slot i being bit i.
//
// A stick can be seated in 4 physically allowed ways: as-is, mirrored
// left-right, mirrored top-bottom, or given a half turn. These placements
// form the symmetry group of a rectangle, so two patterns describe the same
// physical stick exactly when some orientation maps one onto the other. The
// smallest encoding among the 4 oriented views is the pattern's canonical
// form; there are 24 canonical forms for 6-groove sticks.
package notch
