// Package cursor keeps a cursor path valid against a changing forest.
//
// A path addresses a position: path[0] picks a top level node and each
// further index picks a child of a list or, as the last index, a
// character of an atom.  An index equal to the length of the node it
// indexes is the append slot and is always valid.
//
// After an edit the path the editor holds may no longer be valid.  Repair
// corrects it and reports the Mode the cursor is in: Structural when it
// sits among the children of a list (or among the top level nodes) and
// Edit when it sits among the characters of an atom.
package cursor
