package mdtty

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	osc8            bool
	keepFrontMatter bool
}

// WithOSC8 enables or disables OSC 8 hyperlinks on rendered links.
func WithOSC8(enabled bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.osc8 = enabled
	}
}

// WithFrontMatter renders leading front matter literally instead of
// suppressing it.
func WithFrontMatter(keep bool) RenderOption {
	return func(cfg *renderConfig) {
		cfg.keepFrontMatter = keep
	}
}
