package events

// Tone classifies how a cell should be emphasised.
type Tone int

const (
	ToneDefault Tone = iota
	ToneWarning
	ToneSuccess
	ToneDanger
)

// Thresholds that flag a cell.
const (
	LongDurationMinutes = 90
	HighPrice           = 100
	HighRating          = 4.7
	LowRating           = 2.0
)

// String returns the lowercase tone name, also used as a CSS class suffix.
func (t Tone) String() string {
	switch t {
	case ToneWarning:
		return "warning"
	case ToneSuccess:
		return "success"
	case ToneDanger:
		return "danger"
	default:
		return "default"
	}
}

// DurationTone flags events longer than an hour and a half.
func (e Event) DurationTone() Tone {
	if e.Minutes() > LongDurationMinutes {
		return ToneWarning
	}
	return ToneDefault
}

// PriceTone flags expensive events and marks free ones.
func (e Event) PriceTone() Tone {
	switch {
	case e.IsFree():
		return ToneSuccess
	case e.Price > HighPrice:
		return ToneWarning
	default:
		return ToneDefault
	}
}

// RatingTone marks outstanding and poor ratings.
func (e Event) RatingTone() Tone {
	switch {
	case e.Rating > HighRating:
		return ToneSuccess
	case e.Rating < LowRating:
		return ToneDanger
	default:
		return ToneDefault
	}
}
