package tui

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithConfirm asks the renderer to show a summary of collected values and
// require confirmation before producing output.
func WithConfirm() Option {
	return func(r *Renderer) {
		r.confirm = true
	}
}
