/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

package denorm

import (
	"slices"

	"github.com/friendsincode/confsched/models"
	"github.com/friendsincode/confsched/telemetry"
)

// NormalizeClashes returns a normalized copy of the person -> clashing-people
// relation: every person owning at least one event has an entry, and every
// entry lists the person themself, so nobody can be double-booked even when
// the supplied relation omits them. The caller's map and its lists are never
// mutated.
//
// The returned count is the number of self-clash injections performed, of
// both kinds: entries inserted for omitted owners and selves appended to
// existing entries. It is a diagnostic of how incomplete the relation was.
func NormalizeClashes(defs map[string][]string, events []models.Event) (map[string][]string, int) {
	normalized := make(map[string][]string, len(defs))
	for person, people := range defs {
		normalized[person] = append([]string(nil), people...)
	}

	injected := 0
	for _, event := range events {
		if _, ok := normalized[event.Person]; !ok {
			normalized[event.Person] = []string{event.Person}
			injected++
		}
	}
	for person, people := range normalized {
		if !slices.Contains(people, person) {
			normalized[person] = append(people, person)
			injected++
		}
	}
	return normalized, injected
}

// Clashes maps each event index to the indices of the other events it must
// not share a slot or session with, derived from the normalized relation.
//
// The relation is deliberately not symmetrized beyond self-injection: if A
// lists B but B does not list A, A's events avoid B's events and not the
// other way around. Entries naming persons with no owned events are no-ops.
func (d *Denormalizer) Clashes(events []models.Event, defs map[string][]string) (map[int][]int, int) {
	normalized, injected := NormalizeClashes(defs, events)

	clashes := make(map[int][]int)
	for person, clashingPeople := range normalized {
		for _, event := range events {
			if event.Person != person {
				continue
			}
			clashing := []int{}
			for _, other := range clashingPeople {
				for _, candidate := range events {
					if candidate.Person == other && candidate.Index != event.Index {
						clashing = append(clashing, candidate.Index)
					}
				}
			}
			clashes[event.Index] = clashing
		}
	}

	telemetry.SelfClashInjectionsTotal.Add(float64(injected))
	if injected > 0 {
		d.logger.Debug().Int("injected", injected).Msg("self-clash entries injected during normalisation")
	}
	return clashes, injected
}
