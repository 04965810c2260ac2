package impose

import "github.com/lvillar/pocketmod"

// Option is a functional option for configuring a conversion.
type Option func(*config)

type config struct {
	layout pocketmod.Layout
	mode   pocketmod.Mode
	guides bool
}

func newConfig(opts []Option) config {
	cfg := config{
		layout: pocketmod.LayoutTop,
		mode:   pocketmod.EightPage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLayout selects the fold convention. The default is
// pocketmod.LayoutTop.
func WithLayout(layout pocketmod.Layout) Option {
	return func(c *config) {
		c.layout = layout
	}
}

// WithRepeat replicates a single source page into all eight panels
// instead of imposing an eight-page document. The source must have
// exactly one page.
func WithRepeat() Option {
	return func(c *config) {
		c.mode = pocketmod.RepeatSingle
	}
}

// WithGuides overlays fold and cut guide lines on the finished sheet.
func WithGuides() Option {
	return func(c *config) {
		c.guides = true
	}
}
