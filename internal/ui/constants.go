package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// HeroHeight is the title, the tagline and a blank line under them
	HeroHeight = 3

	// FeaturesHeight is the feature highlight row above the footer
	FeaturesHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelPaddingWidth is the horizontal padding inside a panel (Padding(0, 1))
	PanelPaddingWidth = 2

	// InputChromeHeight is the input panel's title, character count and button rows
	InputChromeHeight = 3

	// ResultChromeHeight is the result panel's heading and metadata rows
	ResultChromeHeight = 2

	// ColumnGap is the space between the two panels in the wide layout
	ColumnGap = 2

	// WideLayoutMinWidth is the narrowest terminal that puts the panels side by side
	WideLayoutMinWidth = 100

	// MinTextareaHeight keeps the input usable on short terminals
	MinTextareaHeight = 3

	// MinTerminalWidth and MinTerminalHeight clamp layout math
	MinTerminalWidth  = 40
	MinTerminalHeight = 16

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80
)

// Form copy
const (
	AppTitle   = "Medical Text Summarizer"
	AppTagline = "Transform complex medical notes into clear, concise summaries"

	InputLabel       = "Medical Notes"
	InputPlaceholder = "Paste your medical notes here... Include patient symptoms, diagnosis, treatment plans, or any clinical documentation that needs summarization."

	ButtonText        = "Generate Summary"
	ButtonLoadingText = "Analyzing & Summarizing..."

	ResultLabel            = "Summary"
	ResultHeading          = "Summary Complete"
	ResultPlaceholderTitle = "Your summary will appear here"
	ResultPlaceholderHint  = "Enter medical notes and press ctrl+s to begin"
	ResultLoadingHint      = "Analyzing your notes..."
	ResultCopyHint         = "ctrl+y to copy"
)
