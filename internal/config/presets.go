package config

// Presets are ready-made configurations selectable by name from the CLI.
var Presets = map[string]*Config{
	"standard": {
		Mode: "geographic", Policy: "winner",
		Canvas: CanvasConfig{Width: 960, Height: 600, PaddingX: 40},
	},
	"wide": {
		Mode: "scatter", Policy: "gradient",
		Canvas: CanvasConfig{Width: 1440, Height: 600, PaddingX: 80},
	},
	"print": {
		Mode: "cartogram", Policy: "winner",
		Canvas: CanvasConfig{Width: 1200, Height: 900, PaddingX: 60},
		Palette: PaletteConfig{
			Dem: "#01665e", Rep: "#8c510a", Other: "#666666",
			Neutral: "#5e5e7a", NoData: "#bbbbbb",
		},
	},
}
