/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package denorm

import (
	"fmt"
	"time"

	"github.com/friendsincode/confsched/models"
)

type slotWindow struct {
	start time.Time
	end   time.Time
}

// Unavailability maps each event index to the slot indices the event must
// not occupy because its owner is unavailable. A slot is excluded when its
// whole window [start, start+duration] lies inside a declared period, both
// bounds inclusive. Slot starts are recovered by re-parsing the wire-format
// timestamp, which is the same path downstream consumers take.
//
// Persons absent from defs contribute no entries; persons in defs with no
// owned events are a no-op. Owners may own several events. Indices
// accumulate across periods and are not collapsed when periods overlap.
func (d *Denormalizer) Unavailability(events []models.Event, slots []models.Slot, defs map[string][]models.UnavailabilityPeriod) (map[int][]int, error) {
	windows := make([]slotWindow, len(slots))
	for i, slot := range slots {
		start, err := models.ParseTimestamp(slot.StartsAt, d.loc)
		if err != nil {
			return nil, fmt.Errorf("slot %d starts_at %q: %w", i, slot.StartsAt, err)
		}
		windows[i] = slotWindow{
			start: start,
			end:   start.Add(time.Duration(slot.Duration) * time.Minute),
		}
	}

	restricted := make(map[int][]int)
	for person, periods := range defs {
		for _, event := range events {
			if event.Person != person {
				continue
			}
			if restricted[event.Index] == nil {
				restricted[event.Index] = []int{}
			}
			for _, period := range periods {
				for i, w := range windows {
					if !w.start.Before(period.From) && !w.end.After(period.Until) {
						restricted[event.Index] = append(restricted[event.Index], i)
					}
				}
			}
		}
	}
	return restricted, nil
}
