package denorm

import "github.com/friendsincode/confsched/models"

// Unsuitability maps each event index to the slot indices whose event type
// differs from the event's required type. Plain string equality; there is no
// partial matching or type hierarchy. Every event gets an entry, possibly
// empty.
func (d *Denormalizer) Unsuitability(slots []models.Slot, events []models.Event) map[int][]int {
	out := make(map[int][]int, len(events))
	for _, event := range events {
		unsuitable := []int{}
		for _, slot := range slots {
			if slot.EventType != event.EventType {
				unsuitable = append(unsuitable, slot.Index)
			}
		}
		out[event.Index] = unsuitable
	}
	return out
}
