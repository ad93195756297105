package buffer

// Option configures a Buffer at creation.
type Option func(*Buffer)

// WithLineEnding sets the style every inserted line ending is converted to.
func WithLineEnding(le LineEnding) Option {
	return func(b *Buffer) {
		b.lineEnding = le
	}
}

// WithTabWidth sets the tab width. Non-positive widths are ignored.
func WithTabWidth(width int) Option {
	return func(b *Buffer) {
		if width > 0 {
			b.tabWidth = width
		}
	}
}
