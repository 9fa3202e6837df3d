package ui

import (
	"sync"

	"github.com/medsum/medsum/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int

	// Wide is true when the input and result panels sit side by side.
	Wide bool

	InputPanelWidth   int
	InputPanelHeight  int
	ResultPanelWidth  int
	ResultPanelHeight int

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		ctx.UpdateTerminalSize(DefaultWrapWidth, MinTerminalHeight*2)
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// It must be called from the event loop on every tea.WindowSizeMsg.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	width = max(width, MinTerminalWidth)
	height = max(height, MinTerminalHeight)

	v.TerminalWidth = width
	v.TerminalHeight = height
	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	body := v.ContentHeight - HeroHeight - FeaturesHeight
	v.Wide = width >= WideLayoutMinWidth
	if v.Wide {
		v.InputPanelWidth = (width - ColumnGap) / 2
		v.ResultPanelWidth = width - ColumnGap - v.InputPanelWidth
		v.InputPanelHeight = body
		v.ResultPanelHeight = body
	} else {
		v.InputPanelWidth = width
		v.ResultPanelWidth = width
		v.InputPanelHeight = body - body/2
		v.ResultPanelHeight = body / 2
	}

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"wide", v.Wide,
		"inputPanel", [2]int{v.InputPanelWidth, v.InputPanelHeight},
		"resultPanel", [2]int{v.ResultPanelWidth, v.ResultPanelHeight},
	)
}

// InnerWidth returns the usable width inside a bordered, padded panel
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return max(panelWidth-BorderSize-PanelPaddingWidth, 1)
}

// InnerHeight returns the usable height inside a bordered panel
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return max(panelHeight-BorderSize, 1)
}

// TextareaSize returns the dimensions for the input textarea.
func (v *ViewContext) TextareaSize() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	width = v.InnerWidth(v.InputPanelWidth)
	height = max(v.InnerHeight(v.InputPanelHeight)-InputChromeHeight, MinTextareaHeight)
	return width, height
}

// ResultViewportSize returns the dimensions for the summary viewport.
func (v *ViewContext) ResultViewportSize() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	width = v.InnerWidth(v.ResultPanelWidth)
	height = max(v.InnerHeight(v.ResultPanelHeight)-ResultChromeHeight, 1)
	return width, height
}
