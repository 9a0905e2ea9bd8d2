package tilestack

// Config includes settings for a List
type Config struct {
	// HighlightColor is the color Highlight paints onto a tile.
	HighlightColor string
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		HighlightColor: "yellow",
	}
}
