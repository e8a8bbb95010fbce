// Package reducer writes canonical adapter bookings back into CRS bookings.
//
// A reduce pass works on one CrsBooking in place. Services are processed in
// input order; every service appends or overwrites exactly one primary row,
// followed immediately by any synthetic rows it produces:
//
//   - car: an extra row carrying a distinct drop-off time, and a hotel-location
//     row when a pick-up or drop-off hotel is named
//   - camper: one extra or insurance row per booked extra
//
// Before the pass, rows that are marked or unfinished placeholders are
// removed since the adapter booking replaces them. Marked car and camper
// services hand their marker to their synthetic rows, so these go too.
//
// Hotel and round trip services then look for a surviving row to update in
// place: round trips by booking id, hotels by destination and dates. Car,
// camper and raw services always append, so setting an unmarked one twice
// writes it twice.
//
// A pass is not safe for concurrent use on the same CrsBooking.
package reducer
