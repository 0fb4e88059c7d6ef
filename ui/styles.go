package ui

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// Theme-aware styles; colours follow the tone of each cell.
const appCSS = `
/* Event grid */
.event-table {
    margin: 6px 12px;
}

.table-header {
    font-weight: 700;
    border-bottom: 1px solid alpha(currentColor, 0.15);
}

/* Keeps the details button inside a 36px row band */
button.row-button {
    min-height: 0;
    padding: 0 6px;
}

/* Cell tones */
.tone-warning {
    color: #e5a50a;
}

.tone-success {
    color: #2ec27e;
}

.tone-danger {
    color: #e01b24;
}

/* Row context menu */
.context-menu {
    border-radius: 8px;
    padding: 6px;
    border: 1px solid alpha(currentColor, 0.15);
    background-color: alpha(currentColor, 0.05);
}

/* Slider controls */
.controls {
    border-top: 1px solid alpha(currentColor, 0.15);
    padding-top: 6px;
}

.slider-label {
    font-family: monospace;
}

/* Details and exit confirmation */
.backdrop {
    background-color: alpha(black, 0.25);
}

.dialog-card {
    border-radius: 12px;
    padding: 16px;
    border: 1px solid alpha(currentColor, 0.15);
    background-color: @window_bg_color;
}

/* Preferences */
.preferences-card {
    border-radius: 12px;
}

.settings-title {
    font-weight: 600;
}

/* Flat button */
button.flat {
    background-color: transparent;
}

button.flat:hover {
    background-color: alpha(currentColor, 0.1);
}
`

// LoadStyles loads the custom CSS styles for the application.
// Should be called during application startup.
func LoadStyles() {
	display := gdk.DisplayGetDefault()
	if display == nil {
		return
	}

	provider := gtk.NewCSSProvider()
	provider.LoadFromString(appCSS)

	gtk.StyleContextAddProviderForDisplay(
		display,
		provider,
		gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
	)
}
