package theme

func init() {
	register(darkModern())
}

// darkModern 深色霓虹主题
func darkModern() *Config {
	cfg := &Config{
		ID:          "darkModern",
		Name:        "Dark Modern",
		Description: "Sleek dark theme with vibrant accents",
		Category:    "dark",
		IsPremium:   false,
		Thumbnail:   "/themes/dark-modern.png",
		Colors: Colors{
			Primary:    "#0EA5E9",
			Secondary:  "#8B5CF6",
			Accent:     "#F59E0B",
			Background: "#0F172A",
			Surface:    "#1E293B",
			Text:       "#F8FAFC",
			TextLight:  "#94A3B8",
			TextDark:   "#E2E8F0",
			Border:     "#334155",
			Success:    "#10B981",
			Warning:    "#F59E0B",
			Error:      "#EF4444",
			Gradient: &Gradient{
				Start:     "#0EA5E9",
				End:       "#8B5CF6",
				Direction: "135deg",
			},
		},
		Fonts: Fonts{
			Heading: FontFace{
				Family: "'Inter', sans-serif",
				Weight: FontWeights{Light: 300, Regular: 400, Semibold: 600, Bold: 700},
			},
			Body: FontFace{
				Family: "'Inter', sans-serif",
				Weight: FontWeights{Light: 300, Regular: 400, Medium: 500, Semibold: 600},
			},
		},
		Spacing: Spacing{
			XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem",
			XL: "3rem", XL2: "4rem", XL3: "6rem",
		},
		Radius: Radius{
			None: "0", SM: "0.5rem", MD: "0.75rem", LG: "1rem",
			XL: "1.5rem", XL2: "2rem", Full: "9999px",
		},
		Shadows: Shadows{
			SM:    "0 0 10px rgba(14, 165, 233, 0.1)",
			MD:    "0 0 20px rgba(14, 165, 233, 0.2)",
			LG:    "0 0 30px rgba(14, 165, 233, 0.3)",
			XL:    "0 0 40px rgba(14, 165, 233, 0.4)",
			XL2:   "0 0 60px rgba(14, 165, 233, 0.5)",
			Inner: "inset 0 0 20px rgba(14, 165, 233, 0.1)",
		},
	}
	cfg.Animations.Duration.Fast = "200ms"
	cfg.Animations.Duration.Normal = "400ms"
	cfg.Animations.Duration.Slow = "600ms"
	cfg.Animations.Easing.Linear = "linear"
	cfg.Animations.Easing.EaseIn = "cubic-bezier(0.4, 0, 1, 1)"
	cfg.Animations.Easing.EaseOut = "cubic-bezier(0, 0, 0.2, 1)"
	cfg.Animations.Easing.EaseInOut = "cubic-bezier(0.4, 0, 0.2, 1)"
	return cfg
}
