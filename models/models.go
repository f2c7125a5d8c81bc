/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import "time"

// TimestampLayout is the wire format for absolute slot start times, e.g.
// "26-Oct-2017 09:00". Downstream consumers re-parse this exact layout to
// recover the instant, so any change here breaks the round trip.
const TimestampLayout = "02-Jan-2006 15:04"

// ParseTimestamp recovers a slot start instant from its wire form, anchored
// in loc. A nil loc means UTC.
func ParseTimestamp(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	return time.ParseInLocation(TimestampLayout, value, loc)
}

// Slot is one bookable time block in one venue. Slots are immutable once
// built; Index is their permanent position in the built sequence and the
// only addressing scheme the constraint maps use.
type Slot struct {
	ID        string `json:"id"`
	Index     int    `json:"index"`
	Venue     string `json:"venue"`
	StartsAt  string `json:"starts_at"` // TimestampLayout, seconds discarded
	Duration  int    `json:"duration"`  // minutes
	Session   string `json:"session"`   // "<YYYY-MM-DD> <session name>"
	Capacity  int    `json:"capacity"`
	EventType string `json:"event_type"`
}

// Event is one schedulable talk or session. Demand stays nil here; the
// computation engine fills it in later.
type Event struct {
	ID        string   `json:"id"`
	Index     int      `json:"index"`
	Title     string   `json:"title"`
	Duration  int      `json:"duration"` // minutes
	Demand    *int     `json:"demand,omitempty"`
	Tags      []string `json:"tags"`
	Person    string   `json:"person"`
	EventType string   `json:"event_type"`
}
