// Package events holds the fixed list of sample events shown in the table
// and the formatting and threshold rules used to display them.
package events

import (
	"fmt"
	"time"
)

// Event is a single sample record. Values are never mutated after the
// fixture is built.
type Event struct {
	Name     string
	Duration time.Duration
	Price    float32
	Rating   float32
}

// Minutes returns the duration in whole minutes.
func (e Event) Minutes() int {
	return int(e.Duration / time.Minute)
}

// IsFree reports whether the event costs nothing.
func (e Event) IsFree() bool {
	return e.Price <= 0
}

// TimeText formats the duration, e.g. "45 min".
func (e Event) TimeText() string {
	return fmt.Sprintf("%d min", e.Minutes())
}

// PriceText formats the price, e.g. "$9.99", or "Free".
func (e Event) PriceText() string {
	if e.IsFree() {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", e.Price)
}

// RatingText formats the rating with two decimals.
func (e Event) RatingText() string {
	return fmt.Sprintf("%.2f", e.Rating)
}

// Fixture returns a fresh copy of the sample events.
func Fixture() []Event {
	out := make([]Event, len(fixture))
	copy(out, fixture)
	return out
}

var fixture = []Event{
	{"Get lost in a hacker bookstore", 2 * time.Hour, 0, 4.9},
	{"Buy vintage synth at Noisebridge flea market", time.Hour, 150, 4.8},
	{"Eat a questionable hot dog at 2AM", 20 * time.Minute, 5, 1.7},
	{"Ride the MUNI for the story", 60 * time.Minute, 3, 4.1},
	{"Scream into the void from Twin Peaks", 40 * time.Minute, 0, 4.9},
	{"Buy overpriced coffee and feel things", 25 * time.Minute, 6.5, 4.5},
	{"Attend an underground robot poetry slam", time.Hour, 12, 4.8},
	{"Browse cursed tech at a retro computer fair", 2 * time.Hour, 10, 4.7},
	{"Try to order at a secret ramen place with no sign", 50 * time.Minute, 14, 4.6},
	{"Join a spontaneous rooftop drone rave", 3 * time.Hour, 0, 4.9},
	{"Sketch a stranger at Dolores Park", 45 * time.Minute, 0, 4.4},
	{"Visit the Museum of Obsolete APIs", time.Hour, 9.99, 4.2},
	{"Chase the last working payphone", 35 * time.Minute, 0.25, 4.0},
	{"Trade zines with a punk on BART", 30 * time.Minute, 3.5, 4.7},
	{"Get a tattoo of the Git logo", time.Hour, 200, 4.6},
}
