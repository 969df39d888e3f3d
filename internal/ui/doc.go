// Package ui provides the visual components of the launchpad TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	├───┬─────────────────────────────────────────────┬───┤
//	│   │  ┌────┐  ┌────┐  ┌────┐  ┌────┐  ┌────┐     │   │
//	│ ‹ │  │ A  │  │ B  │  │ C  │  │ D  │  │ E  │     │ › │
//	│   │  └────┘  └────┘  └────┘  └────┘  └────┘     │   │
//	│   │            icon grid (one page)             │   │
//	├───┴─────────────────────────────────────────────┴───┤
//	│                     ● ○ ○                           │
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// # Components
//
// ViewContext keeps every size calculation in one place. The grid band is
// the terminal width minus an ArrowGutter on each side.
//
// IconGrid is the grid controller's Layout. It stores the cells of each
// layout pass and composites the visible ones with an ultraviolet screen
// buffer, so cells sliding between pages are clipped at the frame edges.
// HitTest and ArrowAt map mouse positions back to entries and paging.
//
// Pager draws the page dots, Header the selection and page counters, and
// Footer the key help or a transient flash message.
//
// Detail and Confirm are overlays: the first shows the selected entry as
// highlighted JSON, the second a huh confirmation before launching.
//
// # Themes
//
// SetTheme swaps the palette and rebuilds every style in styles.go.
package ui
