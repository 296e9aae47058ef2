package m3ui

// Spacing scale shared by widgets and the layout helpers.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
	Space2XL  float32 = 24
)

// ColorScheme holds the Material color roles widgets draw with.
type ColorScheme struct {
	Primary              Color
	OnPrimary            Color
	PrimaryContainer     Color
	OnPrimaryContainer   Color
	SecondaryContainer   Color
	OnSecondaryContainer Color

	Surface                 Color
	OnSurface               Color
	SurfaceVariant          Color
	OnSurfaceVariant        Color
	SurfaceContainerLow     Color
	SurfaceContainer        Color
	SurfaceContainerHigh    Color
	SurfaceContainerHighest Color

	Outline        Color
	OutlineVariant Color

	Error   Color
	OnError Color

	InverseSurface   Color
	InverseOnSurface Color
	Scrim            Color
	Shadow           Color
}

// LightScheme returns the baseline light scheme.
func LightScheme() ColorScheme {
	return ColorScheme{
		Primary:              Hex(0x6750A4),
		OnPrimary:            Hex(0xFFFFFF),
		PrimaryContainer:     Hex(0xEADDFF),
		OnPrimaryContainer:   Hex(0x21005D),
		SecondaryContainer:   Hex(0xE8DEF8),
		OnSecondaryContainer: Hex(0x1D192B),

		Surface:                 Hex(0xFEF7FF),
		OnSurface:               Hex(0x1D1B20),
		SurfaceVariant:          Hex(0xE7E0EC),
		OnSurfaceVariant:        Hex(0x49454F),
		SurfaceContainerLow:     Hex(0xF7F2FA),
		SurfaceContainer:        Hex(0xF3EDF7),
		SurfaceContainerHigh:    Hex(0xECE6F0),
		SurfaceContainerHighest: Hex(0xE6E0E9),

		Outline:        Hex(0x79747E),
		OutlineVariant: Hex(0xCAC4D0),

		Error:   Hex(0xB3261E),
		OnError: Hex(0xFFFFFF),

		InverseSurface:   Hex(0x322F35),
		InverseOnSurface: Hex(0xF5EFF7),
		Scrim:            Hex(0x000000),
		Shadow:           Hex(0x000000),
	}
}

// DarkScheme returns the baseline dark scheme.
func DarkScheme() ColorScheme {
	return ColorScheme{
		Primary:              Hex(0xD0BCFF),
		OnPrimary:            Hex(0x381E72),
		PrimaryContainer:     Hex(0x4F378B),
		OnPrimaryContainer:   Hex(0xEADDFF),
		SecondaryContainer:   Hex(0x4A4458),
		OnSecondaryContainer: Hex(0xE8DEF8),

		Surface:                 Hex(0x141218),
		OnSurface:               Hex(0xE6E0E9),
		SurfaceVariant:          Hex(0x49454F),
		OnSurfaceVariant:        Hex(0xCAC4D0),
		SurfaceContainerLow:     Hex(0x1D1B20),
		SurfaceContainer:        Hex(0x211F26),
		SurfaceContainerHigh:    Hex(0x2B2930),
		SurfaceContainerHighest: Hex(0x36343B),

		Outline:        Hex(0x938F99),
		OutlineVariant: Hex(0x49454F),

		Error:   Hex(0xF2B8B5),
		OnError: Hex(0x601410),

		InverseSurface:   Hex(0xE6E0E9),
		InverseOnSurface: Hex(0x322F35),
		Scrim:            Hex(0x000000),
		Shadow:           Hex(0x000000),
	}
}

// Typography is the type scale in pixels.
type Typography struct {
	Title float32
	Body  float32
	Label float32
	Small float32
}

// Shape holds corner radii.
type Shape struct {
	Small  float32 // chips, text fields
	Medium float32 // cards
	Large  float32 // dialogs
	Full   float32 // buttons, slider handles
}

// Theme bundles everything widgets read for visuals.
type Theme struct {
	Dark   bool
	Colors ColorScheme
	Type   Typography
	Shape  Shape

	ScrollbarSize float32
	ScrollStep    float32 // pixels per wheel notch
}

func baseTheme() Theme {
	return Theme{
		Type:          Typography{Title: 20, Body: 14, Label: 14, Small: 12},
		Shape:         Shape{Small: 4, Medium: 12, Large: 28, Full: 1000},
		ScrollbarSize: 6,
		ScrollStep:    40,
	}
}

// LightTheme returns the default light theme.
func LightTheme() Theme {
	t := baseTheme()
	t.Colors = LightScheme()
	return t
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	t := baseTheme()
	t.Dark = true
	t.Colors = DarkScheme()
	return t
}

// Theme returns the active theme.
func (ctx *Context) Theme() *Theme {
	return &ctx.theme
}

// Colors returns the active color scheme.
func (ctx *Context) Colors() *ColorScheme {
	return &ctx.theme.Colors
}
