package sched

// ThemeController holds the active visual-variant id for the session.
// Update sets unconditionally: templates own their theme sets and the
// presentation layer only ever offers ids it knows, so the controller
// does not re-validate against a registry.
type ThemeController struct {
	theme    string
	fallback string
}

// NewThemeController starts at the configured default theme.
func NewThemeController(def string) *ThemeController {
	return &ThemeController{theme: def, fallback: def}
}

// Current returns the active theme id.
func (t *ThemeController) Current() string { return t.theme }

// Update switches the active theme.
func (t *ThemeController) Update(id string) { t.theme = id }

// Reset restores the configured default.
func (t *ThemeController) Reset() { t.theme = t.fallback }
