// Package render provides markdown rendering for terminal output.
package render

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style is a glamour style name: "dark", "light", "dracula",
	// "notty", "ascii", or "auto"
	Style string

	// EnableEmoji converts :emoji: to unicode characters
	EnableEmoji bool

	// PreserveNewLines preserves original line breaks
	PreserveNewLines bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		EnableEmoji:      true,
		PreserveNewLines: true,
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// Markdown renders markdown content for terminal display.
// Uses a pooled renderer: glamour's TermRenderer is not safe for
// concurrent Render() calls, so renderers are reused but never shared.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// MarkdownWithWidth is a convenience function for rendering with a
// specific width and default options otherwise.
func MarkdownWithWidth(content string, width int) (string, error) {
	return Markdown(content, DefaultOptions().WithWidth(width))
}

// AvailableStyles returns the style names the renderer accepts.
func AvailableStyles() []string {
	return []string{"dark", "light", "dracula", "notty", "ascii"}
}

// IsValidStyle reports whether name is a known style.
func IsValidStyle(name string) bool {
	for _, s := range AvailableStyles() {
		if s == name {
			return true
		}
	}
	return false
}
