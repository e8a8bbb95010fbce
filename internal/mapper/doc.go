// Package mapper converts CRS bookings into canonical adapter bookings.
//
// Each service row is dispatched on the canonical kind its CRS type resolves
// to through the data definition. Rows of an unknown type are passed through
// as RawService and reported, never dropped.
//
// Dates and times are re-rendered in the agent-facing formats
// (meta.AgentDateFormat, meta.AgentTimeFormat). A value that does not parse is
// kept verbatim.
package mapper
