/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package denorm translates the nested, human-authored conference
// definitions into the flat, index-addressed structures the scheduling
// computation engine consumes.
package denorm

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/friendsincode/confsched/models"
	"github.com/friendsincode/confsched/telemetry"
)

// ErrMalformedSpec marks a slot or event specification missing a required
// attribute. Builders fail fast on the first malformed spec.
var ErrMalformedSpec = errors.New("malformed specification")

// Denormalizer flattens definitions into engine inputs. It is stateless and
// safe to reuse across runs.
type Denormalizer struct {
	logger zerolog.Logger
	loc    *time.Location
}

// Option adjusts a Denormalizer.
type Option func(*Denormalizer)

// WithLocation anchors midnight-of-day computations in loc instead of UTC.
func WithLocation(loc *time.Location) Option {
	return func(d *Denormalizer) {
		d.loc = loc
	}
}

// New constructs a Denormalizer.
func New(logger zerolog.Logger, opts ...Option) *Denormalizer {
	d := &Denormalizer{
		logger: logger.With().Str("component", "denorm").Logger(),
		loc:    time.UTC,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.loc == nil {
		d.loc = time.UTC
	}
	return d
}

// Input collects the already-materialized definition structures supplied by
// the configuration loader.
type Input struct {
	Venues         []models.VenueDefinition
	Events         []models.EventSpec
	Unavailability map[string][]models.UnavailabilityPeriod
	Clashes        map[string][]string
}

// Output is everything the computation engine needs: the two ordered
// sequences and the three constraint maps keyed by event index, plus the
// count of self-clash entries injected while normalising the clash relation.
type Output struct {
	Slots               []models.Slot
	Events              []models.Event
	Unavailability      map[int][]int
	Clashes             map[int][]int
	Unsuitability       map[int][]int
	SelfClashInjections int
}

// Denormalize runs the builders and the three resolvers in one shot. The
// individual operations stay callable on their own; the resolvers only
// depend on the built sequences, not on each other.
func (d *Denormalizer) Denormalize(in Input) (*Output, error) {
	started := time.Now()

	slots, err := d.BuildSlots(in.Venues)
	if err != nil {
		telemetry.DenormErrorsTotal.WithLabelValues("slots").Inc()
		return nil, err
	}
	events, err := d.BuildEvents(in.Events)
	if err != nil {
		telemetry.DenormErrorsTotal.WithLabelValues("events").Inc()
		return nil, err
	}

	unavailability, err := d.Unavailability(events, slots, in.Unavailability)
	if err != nil {
		telemetry.DenormErrorsTotal.WithLabelValues("unavailability").Inc()
		return nil, err
	}
	clashes, injected := d.Clashes(events, in.Clashes)
	unsuitability := d.Unsuitability(slots, events)

	telemetry.DenormRunsTotal.Inc()
	telemetry.DenormDuration.Observe(time.Since(started).Seconds())
	d.logger.Info().
		Int("slots", len(slots)).
		Int("events", len(events)).
		Int("self_clash_injections", injected).
		Msg("definitions denormalised")

	return &Output{
		Slots:               slots,
		Events:              events,
		Unavailability:      unavailability,
		Clashes:             clashes,
		Unsuitability:       unsuitability,
		SelfClashInjections: injected,
	}, nil
}
