package events

import (
	"testing"
	"time"
)

func TestFixture(t *testing.T) {
	list := Fixture()
	if len(list) != 15 {
		t.Fatalf("len(Fixture()) = %d, want 15", len(list))
	}

	list[0].Name = "changed"
	if Fixture()[0].Name == "changed" {
		t.Error("Fixture() should return an independent copy")
	}
}

func TestEvent_Text(t *testing.T) {
	tests := []struct {
		name   string
		event  Event
		time   string
		price  string
		rating string
	}{
		{"free", Event{Duration: 2 * time.Hour, Price: 0, Rating: 4.9}, "120 min", "Free", "4.90"},
		{"cents", Event{Duration: 35 * time.Minute, Price: 0.25, Rating: 4}, "35 min", "$0.25", "4.00"},
		{"pricey", Event{Duration: time.Hour, Price: 200, Rating: 4.6}, "60 min", "$200.00", "4.60"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.TimeText(); got != tt.time {
				t.Errorf("TimeText() = %q, want %q", got, tt.time)
			}
			if got := tt.event.PriceText(); got != tt.price {
				t.Errorf("PriceText() = %q, want %q", got, tt.price)
			}
			if got := tt.event.RatingText(); got != tt.rating {
				t.Errorf("RatingText() = %q, want %q", got, tt.rating)
			}
		})
	}
}

func TestEvent_Tones(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		duration Tone
		price    Tone
		rating   Tone
	}{
		{"long free top", Event{Duration: 91 * time.Minute, Price: 0, Rating: 4.9}, ToneWarning, ToneSuccess, ToneSuccess},
		{"boundary", Event{Duration: 90 * time.Minute, Price: 100, Rating: 4.7}, ToneDefault, ToneDefault, ToneDefault},
		{"expensive poor", Event{Duration: time.Hour, Price: 150, Rating: 1.7}, ToneDefault, ToneWarning, ToneDanger},
		{"low edge", Event{Duration: time.Minute, Price: 1, Rating: 2.0}, ToneDefault, ToneDefault, ToneDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.event.DurationTone(); got != tt.duration {
				t.Errorf("DurationTone() = %v, want %v", got, tt.duration)
			}
			if got := tt.event.PriceTone(); got != tt.price {
				t.Errorf("PriceTone() = %v, want %v", got, tt.price)
			}
			if got := tt.event.RatingTone(); got != tt.rating {
				t.Errorf("RatingTone() = %v, want %v", got, tt.rating)
			}
		})
	}
}

func TestTone_String(t *testing.T) {
	tests := []struct {
		tone Tone
		want string
	}{
		{ToneDefault, "default"},
		{ToneWarning, "warning"},
		{ToneSuccess, "success"},
		{ToneDanger, "danger"},
		{Tone(42), "default"},
	}
	for _, tt := range tests {
		if got := tt.tone.String(); got != tt.want {
			t.Errorf("Tone(%d).String() = %q, want %q", tt.tone, got, tt.want)
		}
	}
}
