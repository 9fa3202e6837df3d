// Package ui provides the visual components of the medsum TUI.
//
// # Overview
//
// The ui package draws the summarize form using Lipgloss. It holds no form
// state of its own: internal/app owns the Bubble Tea model and passes the
// values to render into the panel structs here.
//
// # Layout System
//
// Wide terminals put the two panels side by side:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	│            Medical Text Summarizer                  │
//	│        tagline                                      │
//	├──────────────────────────┬──────────────────────────┤
//	│ Medical Notes            │ Summary                  │
//	│ (textarea)               │ (viewport)               │
//	│           N characters   │                          │
//	│ [ Generate Summary ]     │ Generated 3:04PM         │
//	├──────────────────────────┴──────────────────────────┤
//	│ Fast Processing   Accurate Results   Secure & Private│
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below WideLayoutMinWidth the result panel is stacked under the input panel.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
// All size calculations should go through ViewContext to ensure consistency.
//
// Header: Application name and the summary source on a gradient background.
//
// Footer: Context-aware keyboard shortcuts, replaced by a flash message
// (copy result, errors) until it expires.
//
// InputPanel / ResultPanel: The two halves of the form.
//
// Settings: The huh form behind "medsum config".
//
// # Styles
//
// Styles live in styles.go and are rebuilt from the active Theme by
// SetTheme. Four themes are built in: clinic (default), nord, dracula, light.
package ui
