package table

// Msg is a message understood by Table.Update.
type Msg interface {
	tableMsg()
}

// PaddingChanged sets both padding values.
type PaddingChanged struct{ Value Pair }

// SeparatorChanged sets both separator values.
type SeparatorChanged struct{ Value Pair }

// ShowDetails opens the details view for Row.
type ShowDetails struct{ Row int }

// HideDetails closes the details view.
type HideDetails struct{}

// HideContext closes the context menu.
type HideContext struct{}

// Pointer carries a structured pointer event from the window layer.
type Pointer struct{ Event PointerEvent }

// Description carries a textual event dump, parsed best-effort.
type Description struct{ Text string }

func (PaddingChanged) tableMsg()   {}
func (SeparatorChanged) tableMsg() {}
func (ShowDetails) tableMsg()      {}
func (HideDetails) tableMsg()      {}
func (HideContext) tableMsg()      {}
func (Pointer) tableMsg()          {}
func (Description) tableMsg()      {}
