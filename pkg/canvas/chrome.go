package canvas

// ChromeState is a snapshot of every UI panel that occludes the
// canvas. It is owned by one Engine per canvas session and mutated
// only through UpdateChrome/UpdateViewport. The host shell is trusted
// to supply sane values: no range validation happens here, and
// out-of-range numbers are only clamped downstream by the
// available-area floors.
type ChromeState struct {
	// ScreenWidth is the current viewport width in pixels
	ScreenWidth float64 `json:"screen_width" yaml:"screen_width"`
	// ScreenHeight is the current viewport height in pixels
	ScreenHeight float64 `json:"screen_height" yaml:"screen_height"`
	// TopBarHeight is the fixed header offset
	TopBarHeight float64 `json:"top_bar_height" yaml:"top_bar_height"`
	// LeftRail is the collapsible navigation rail on the left edge
	LeftRail LeftRailState `json:"left_rail" yaml:"left_rail"`
	// RightRail is the fixed-width rail on the right edge
	RightRail RightRailState `json:"right_rail" yaml:"right_rail"`
	// AssistantPanel is the chat assistant overlay on the right edge
	AssistantPanel AssistantPanelState `json:"assistant_panel" yaml:"assistant_panel"`
	// HistoryPanel is the execution history overlay on the bottom edge
	HistoryPanel HistoryPanelState `json:"history_panel" yaml:"history_panel"`
	// SplitPosition is the percentage (0-100) of remaining width
	// given to the primary canvas of a split view
	SplitPosition float64 `json:"split_position" yaml:"split_position"`
	// SecondaryVisible reports whether the secondary canvas is shown.
	// When false the primary canvas claims the full remaining width.
	SecondaryVisible bool `json:"secondary_visible" yaml:"secondary_visible"`
}

// LeftRailState describes the left navigation rail.
type LeftRailState struct {
	Visible       bool    `json:"visible" yaml:"visible"`
	Expanded      bool    `json:"expanded" yaml:"expanded"`
	BaseWidth     float64 `json:"base_width" yaml:"base_width"`
	ExpandedWidth float64 `json:"expanded_width" yaml:"expanded_width"`
}

// Width returns the rail's current occluding width.
func (r LeftRailState) Width() float64 {
	if !r.Visible {
		return 0
	}
	if r.Expanded {
		return r.ExpandedWidth
	}
	return r.BaseWidth
}

// RightRailState describes the right tool rail.
type RightRailState struct {
	Visible bool    `json:"visible" yaml:"visible"`
	Width   float64 `json:"width" yaml:"width"`
}

// AssistantPanelState describes the assistant overlay. It claims
// space from the right edge regardless of rail state, with an
// independent width when collapsed to its icon strip.
type AssistantPanelState struct {
	Visible        bool    `json:"visible" yaml:"visible"`
	Collapsed      bool    `json:"collapsed" yaml:"collapsed"`
	Width          float64 `json:"width" yaml:"width"`
	CollapsedWidth float64 `json:"collapsed_width" yaml:"collapsed_width"`
}

// CurrentWidth returns the panel's occluding width for its state.
func (p AssistantPanelState) CurrentWidth() float64 {
	if !p.Visible {
		return 0
	}
	if p.Collapsed {
		return p.CollapsedWidth
	}
	return p.Width
}

// HistoryPanelState describes the bottom history overlay.
type HistoryPanelState struct {
	Visible bool    `json:"visible" yaml:"visible"`
	Height  float64 `json:"height" yaml:"height"`
}

// ChromeUpdate is a partial chrome state. Nil fields are left
// untouched; non-nil fields replace the corresponding top-level key
// wholesale (shallow merge).
type ChromeUpdate struct {
	ScreenWidth      *float64
	ScreenHeight     *float64
	TopBarHeight     *float64
	LeftRail         *LeftRailState
	RightRail        *RightRailState
	AssistantPanel   *AssistantPanelState
	HistoryPanel     *HistoryPanelState
	SplitPosition    *float64
	SecondaryVisible *bool
}

// DefaultChrome returns the chrome state of a freshly opened builder
// session: expanded-capable left rail collapsed to its icon strip,
// assistant collapsed, history hidden, no split.
func DefaultChrome() ChromeState {
	return ChromeState{
		ScreenWidth:  1440,
		ScreenHeight: 900,
		TopBarHeight: 48,
		LeftRail: LeftRailState{
			Visible:       true,
			Expanded:      false,
			BaseWidth:     56,
			ExpandedWidth: 224,
		},
		RightRail: RightRailState{
			Visible: false,
			Width:   48,
		},
		AssistantPanel: AssistantPanelState{
			Visible:        true,
			Collapsed:      true,
			Width:          360,
			CollapsedWidth: 48,
		},
		HistoryPanel: HistoryPanelState{
			Visible: false,
			Height:  240,
		},
		SplitPosition:    50,
		SecondaryVisible: false,
	}
}
