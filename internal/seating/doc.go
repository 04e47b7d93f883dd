// Package seating assigns event participants to networking tables.
//
// The engine is a single greedy pass over the participant pool:
//
//  1. Participants are ordered VIP first, then by descending interest-tag
//     count. Ties keep their input order.
//  2. Each unseated participant is resolved into a unit: the participant
//     alone, or the participant plus an unseated companion.
//  3. Existing tables are scanned in ascending number. A table is skipped
//     when the unit would overflow it, or when VIP spread is on and the
//     table would end up with more than VIPSpreadCap VIPs. The remaining
//     table with the most occupants sharing an interest with the unit's
//     primary participant wins; the lowest table number wins ties.
//  4. When no table admits the unit a new table is opened with the next
//     sequential number.
//
// The package holds no global state. Every call to Assign builds its own
// working set, so concurrent calls are safe as long as callers do not
// mutate the slices they pass in while a call is running.
package seating
