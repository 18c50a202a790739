// Package schedule computes bookable time windows from weekly working hours and
// enumerates the time slot labels offered by the booking wizard and the admin panel.
//
// Every function here is pure: no I/O, no shared state, safe for concurrent use.
package schedule
