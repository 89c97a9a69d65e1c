// Package steps turns textual pipeline descriptions into sequence adaptors.
//
// A pipeline is a "|" separated list of calls, each a step name optionally
// followed by ":" and comma separated arguments:
//
//	filter:even|transform:square|take:3
//
// Steps map int sequences to int sequences and are chained left to right.
// Groupers (chunk:N, sliding:N, equal, ...) end a pipeline by turning the
// ints into groups.
package steps
