/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package models

import "time"

// SlotSpec describes one bookable time block within a session.
type SlotSpec struct {
	EventType string `yaml:"event_type" json:"event_type"`
	StartsAt  int    `yaml:"starts_at" json:"starts_at"` // seconds after midnight of the day
	Duration  int    `yaml:"duration" json:"duration"`   // minutes
	Capacity  int    `yaml:"capacity" json:"capacity"`
}

// SessionDefinition groups the slot specs of one named session.
type SessionDefinition struct {
	Name  string     `yaml:"name" json:"name"`
	Slots []SlotSpec `yaml:"slots" json:"slots"`
}

// DayDefinition groups the sessions held on one calendar day. Only the
// year/month/day of Date is significant.
type DayDefinition struct {
	Date     time.Time           `yaml:"date" json:"date"`
	Sessions []SessionDefinition `yaml:"sessions" json:"sessions"`
}

// VenueDefinition is the top of the venue -> day -> session -> slot nesting.
// Definitions are ordered sequences rather than maps so that the flattened
// slot sequence preserves author order and rebuilds are deterministic.
type VenueDefinition struct {
	Name string          `yaml:"name" json:"name"`
	Days []DayDefinition `yaml:"days" json:"days"`
}

// EventSpec describes one talk or session to be scheduled.
type EventSpec struct {
	Title     string   `yaml:"title" json:"title"`
	Duration  int      `yaml:"duration" json:"duration"` // minutes
	Tags      []string `yaml:"tags" json:"tags"`
	Person    string   `yaml:"person" json:"person"`
	EventType string   `yaml:"event_type" json:"event_type"`
}

// UnavailabilityPeriod is a closed interval during which a person cannot be
// scheduled. Both bounds are inclusive.
type UnavailabilityPeriod struct {
	From  time.Time `yaml:"unavailable_from" json:"unavailable_from"`
	Until time.Time `yaml:"unavailable_until" json:"unavailable_until"`
}
