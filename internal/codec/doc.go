// Package codec encodes and decodes the coded fields of CRS service rows.
//
// Vehicle codes come in three textual schemes, tried in this order:
//
//   - SIPP, fixed width 16: "PPPPPDDDDDSSSSRR" (pick-up, drop-off, SIPP class,
//     last two characters of the renter code)
//   - legacy: "RENTER VEHICLE/PICKUP-DROPOFF", every part optional
//   - locations only: "PICKUP[-DROPOFF]", 3 to 5 alphanumerics each
//
// A locations-only code is what an agent types before a vehicle is chosen, so
// rows carrying one count as unfinished placeholders.
//
// The package also owns the per-kind "marked" rules that mappers, reducers
// and the reduce orchestrator share.
package codec
