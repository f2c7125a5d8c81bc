/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package denorm

import (
	"fmt"

	"github.com/friendsincode/confsched/models"
	"github.com/friendsincode/confsched/telemetry"
)

// BuildEvents flattens the event definition sequence into the ordered event
// sequence, in input order. Demand stays nil for the engine to fill in.
// Person identifiers are not checked against any registry.
func (d *Denormalizer) BuildEvents(defs []models.EventSpec) ([]models.Event, error) {
	events := make([]models.Event, 0, len(defs))
	for i, spec := range defs {
		if err := validateEventSpec(spec); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, models.Event{
			ID:        eventID(i),
			Index:     i,
			Title:     spec.Title,
			Duration:  spec.Duration,
			Tags:      append([]string(nil), spec.Tags...),
			Person:    spec.Person,
			EventType: spec.EventType,
		})
	}

	telemetry.EventsBuiltTotal.Add(float64(len(events)))
	d.logger.Debug().Int("events", len(events)).Msg("event definitions flattened")
	return events, nil
}

func validateEventSpec(spec models.EventSpec) error {
	switch {
	case spec.Title == "":
		return fmt.Errorf("%w: missing title", ErrMalformedSpec)
	case spec.Person == "":
		return fmt.Errorf("%w: missing person", ErrMalformedSpec)
	case spec.EventType == "":
		return fmt.Errorf("%w: missing event_type", ErrMalformedSpec)
	case spec.Duration <= 0:
		return fmt.Errorf("%w: non-positive duration", ErrMalformedSpec)
	}
	return nil
}
