package m3ui

// ButtonVariant is the Material button style.
type ButtonVariant int

const (
	ButtonText ButtonVariant = iota
	ButtonFilled
	ButtonOutlined
	ButtonTonal
	ButtonElevated
)

// CardVariant is the Material card style.
type CardVariant int

const (
	CardElevated CardVariant = iota
	CardFilled
	CardOutlined
)

// TextFieldVariant is the Material text field style.
type TextFieldVariant int

const (
	TextFieldFilled TextFieldVariant = iota
	TextFieldOutlined
)

// VariantColors are the resolved colors for one {variant, state} pair.
// An unset Background or Outline is not drawn.
type VariantColors struct {
	Background Color
	Text       Color
	Outline    Color
}

// Material state-layer opacities.
const (
	hoverOpacity    = 0.08
	pressOpacity    = 0.12
	focusOpacity    = 0.10
	disabledContent = 0.38
	disabledFill    = 0.12
)

type colorRole int

const (
	roleNone colorRole = iota
	rolePrimary
	roleOnPrimary
	roleSecondaryContainer
	roleOnSecondaryContainer
	roleSurface
	roleOnSurface
	roleOnSurfaceVariant
	roleSurfaceContainerLow
	roleSurfaceContainerHighest
	roleOutline
	roleOutlineVariant
)

func (c *ColorScheme) role(r colorRole) Color {
	switch r {
	case rolePrimary:
		return c.Primary
	case roleOnPrimary:
		return c.OnPrimary
	case roleSecondaryContainer:
		return c.SecondaryContainer
	case roleOnSecondaryContainer:
		return c.OnSecondaryContainer
	case roleSurface:
		return c.Surface
	case roleOnSurface:
		return c.OnSurface
	case roleOnSurfaceVariant:
		return c.OnSurfaceVariant
	case roleSurfaceContainerLow:
		return c.SurfaceContainerLow
	case roleSurfaceContainerHighest:
		return c.SurfaceContainerHighest
	case roleOutline:
		return c.Outline
	case roleOutlineVariant:
		return c.OutlineVariant
	}
	return ColorTransparent
}

// variantRoles names the scheme roles a variant draws with at rest.
type variantRoles struct {
	bg, text, outline colorRole
	filled            bool // keeps a tinted fill when disabled
}

var buttonRoles = [...]variantRoles{
	ButtonText:     {text: rolePrimary},
	ButtonFilled:   {bg: rolePrimary, text: roleOnPrimary, filled: true},
	ButtonOutlined: {text: rolePrimary, outline: roleOutline},
	ButtonTonal:    {bg: roleSecondaryContainer, text: roleOnSecondaryContainer, filled: true},
	ButtonElevated: {bg: roleSurfaceContainerLow, text: rolePrimary, filled: true},
}

var cardRoles = [...]variantRoles{
	CardElevated: {bg: roleSurfaceContainerLow, text: roleOnSurface, filled: true},
	CardFilled:   {bg: roleSurfaceContainerHighest, text: roleOnSurface, filled: true},
	CardOutlined: {bg: roleSurface, text: roleOnSurface, outline: roleOutlineVariant, filled: true},
}

var textFieldRoles = [...]variantRoles{
	TextFieldFilled:   {bg: roleSurfaceContainerHighest, text: roleOnSurface, outline: roleOnSurfaceVariant, filled: true},
	TextFieldOutlined: {text: roleOnSurface, outline: roleOutline},
}

// resolve applies the state layer for s to the resting roles.
func (vr variantRoles) resolve(c *ColorScheme, s ComponentState) VariantColors {
	out := VariantColors{
		Background: c.role(vr.bg),
		Text:       c.role(vr.text),
		Outline:    c.role(vr.outline),
	}
	overlay := func(opacity float32) {
		if out.Background.IsUnset() {
			out.Background = out.Text.WithAlpha(opacity)
		} else {
			out.Background = out.Background.Blend(out.Text, opacity)
		}
	}
	switch s {
	case StateHovered:
		overlay(hoverOpacity)
	case StatePressed:
		overlay(pressOpacity)
	case StateFocused:
		overlay(focusOpacity)
		if !out.Outline.IsUnset() {
			out.Outline = c.Primary
		}
	case StateDisabled:
		out.Text = c.OnSurface.WithAlpha(disabledContent)
		if vr.filled {
			out.Background = c.OnSurface.WithAlpha(disabledFill)
		}
		if !out.Outline.IsUnset() {
			out.Outline = c.OnSurface.WithAlpha(disabledFill)
		}
	}
	return out
}

// ButtonColors returns the colors for a button variant in state s.
func (t *Theme) ButtonColors(v ButtonVariant, s ComponentState) VariantColors {
	if v < 0 || int(v) >= len(buttonRoles) {
		v = ButtonFilled
	}
	return buttonRoles[v].resolve(&t.Colors, s)
}

// CardColors returns the colors for a card variant in state s.
func (t *Theme) CardColors(v CardVariant, s ComponentState) VariantColors {
	if v < 0 || int(v) >= len(cardRoles) {
		v = CardElevated
	}
	return cardRoles[v].resolve(&t.Colors, s)
}

// TextFieldColors returns the colors for a text field variant in state s.
func (t *Theme) TextFieldColors(v TextFieldVariant, s ComponentState) VariantColors {
	if v < 0 || int(v) >= len(textFieldRoles) {
		v = TextFieldFilled
	}
	return textFieldRoles[v].resolve(&t.Colors, s)
}
