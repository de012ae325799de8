package gui

// Spacing constants for consistent layout.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// Style defines the visual appearance of UI elements.
// It is the host's configuration object; per-pass behavior toggles
// such as DebugGrid live here rather than in process-wide state.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32

	// Panel colors
	PanelColor         uint32
	PanelBorderColor   uint32
	PanelHeaderBgColor uint32

	// Button colors
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Selection colors
	SelectedBgColor uint32
	HoveredBgColor  uint32

	// Separator
	SeparatorColor uint32

	// Scrollbar
	ScrollbarBgColor     uint32
	ScrollbarGrabColor   uint32
	ScrollbarGrabHovered uint32

	// Grid debug overlay
	GridLineColor uint32

	// Sizing
	FontScale   float32
	CharWidth   float32
	CharHeight  float32
	ItemSpacing Vec2 // Additive margin applied to every grid item extent

	PanelPadding  float32
	ButtonPadding float32

	// Border
	BorderSize float32

	// Scrollbar
	ScrollbarSize float32

	// DebugGrid draws outline rectangles around grid regions and every
	// cell boundary. Diagnostic only; geometry is unaffected.
	DebugGrid bool
}

// DefaultStyle returns the default style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		SelectedBgColor: RGBA(50, 100, 150, 255),
		HoveredBgColor:  RGBA(60, 60, 60, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),

		ScrollbarBgColor:     RGBA(30, 30, 30, 255),
		ScrollbarGrabColor:   RGBA(80, 80, 80, 255),
		ScrollbarGrabHovered: RGBA(100, 100, 100, 255),

		GridLineColor: RGBA(0, 200, 120, 255),

		FontScale:   1.0,
		CharWidth:   8,
		CharHeight:  8,
		ItemSpacing: Vec2{X: 4, Y: 4},

		PanelPadding:  8,
		ButtonPadding: 6,

		BorderSize: 1,

		ScrollbarSize: 12,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.PanelHeaderBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)
	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.ScrollbarBgColor = RGBA(240, 240, 240, 255)
	s.ScrollbarGrabColor = RGBA(180, 180, 180, 255)
	s.ScrollbarGrabHovered = RGBA(160, 160, 160, 255)
	s.GridLineColor = RGBA(200, 60, 60, 255)
	return s
}
