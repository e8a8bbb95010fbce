// Package association reconciles the travellers attached to adapter services
// with the shared traveller table of a CRS booking.
//
// A CRS service row references table rows through its traveller association:
// a single 1-based index ("3"), a dash range ("1-4") or a comma list
// ("1,3,4"). Readers accept both separators and only look at the first and
// the last index. Writers choose the separator per service kind, and legacy
// CRS front ends depend on that choice, so it is passed explicitly.
//
// Assign is the forward direction (adapter -> CRS), Travellers the inverse.
// Assign only ever appends to or overwrites rows of the table; the table
// never shrinks during a reduce pass. CleanUpTravellers trims placeholder rows
// left over from earlier edits and runs before a pass starts.
package association
