/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package denorm

import (
	"fmt"
	"time"

	"github.com/friendsincode/confsched/models"
	"github.com/friendsincode/confsched/telemetry"
)

// BuildSlots flattens the venue -> day -> session -> slot nesting into the
// ordered slot sequence. Iteration order of the definitions is preserved and
// a slot's index in the result is its permanent identity. Structurally
// identical specs are not deduplicated; they yield distinct records.
func (d *Denormalizer) BuildSlots(venues []models.VenueDefinition) ([]models.Slot, error) {
	var slots []models.Slot
	for _, venue := range venues {
		for _, day := range venue.Days {
			dayLabel := day.Date.Format("2006-01-02")
			midnight := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), 0, 0, 0, 0, d.loc)
			for _, session := range day.Sessions {
				for i, spec := range session.Slots {
					if err := validateSlotSpec(spec); err != nil {
						return nil, fmt.Errorf("venue %q day %s session %q slot %d: %w",
							venue.Name, dayLabel, session.Name, i, err)
					}
					index := len(slots)
					startsAt := midnight.Add(time.Duration(spec.StartsAt) * time.Second)
					slots = append(slots, models.Slot{
						ID:        slotID(index),
						Index:     index,
						Venue:     venue.Name,
						StartsAt:  startsAt.Format(models.TimestampLayout),
						Duration:  spec.Duration,
						Session:   dayLabel + " " + session.Name,
						Capacity:  spec.Capacity,
						EventType: spec.EventType,
					})
				}
			}
		}
	}

	telemetry.SlotsBuiltTotal.Add(float64(len(slots)))
	d.logger.Debug().Int("slots", len(slots)).Msg("venue definitions flattened")
	return slots, nil
}

func validateSlotSpec(spec models.SlotSpec) error {
	switch {
	case spec.EventType == "":
		return fmt.Errorf("%w: missing event_type", ErrMalformedSpec)
	case spec.StartsAt < 0:
		return fmt.Errorf("%w: negative starts_at", ErrMalformedSpec)
	case spec.Duration <= 0:
		return fmt.Errorf("%w: non-positive duration", ErrMalformedSpec)
	case spec.Capacity <= 0:
		return fmt.Errorf("%w: non-positive capacity", ErrMalformedSpec)
	}
	return nil
}
