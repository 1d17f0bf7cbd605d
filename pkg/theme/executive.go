package theme

func init() {
	register(executive())
}

// executive 紫金配色的商务主题
func executive() *Config {
	cfg := &Config{
		ID:          "executive",
		Name:        "Executive",
		Description: "Professional business presentation with bold purple design",
		Category:    "professional",
		IsPremium:   false,
		Thumbnail:   "/themes/executive.png",
		Colors: Colors{
			Primary:    "#3D2E5C",
			Secondary:  "#FFD700",
			Accent:     "#FF6B6B",
			Background: "#FFFFFF",
			Surface:    "#F5F5F5",
			Text:       "#1F2937",
			TextLight:  "#6B7280",
			TextDark:   "#111827",
			Border:     "#E5E7EB",
			Success:    "#10B981",
			Warning:    "#F59E0B",
			Error:      "#EF4444",
		},
		Fonts: Fonts{
			Heading: FontFace{
				Family: "'Montserrat', sans-serif",
				Weight: FontWeights{Light: 300, Regular: 400, Semibold: 600, Bold: 700},
			},
			Body: FontFace{
				Family: "'Open Sans', sans-serif",
				Weight: FontWeights{Light: 300, Regular: 400, Medium: 500, Semibold: 600},
			},
		},
		Spacing: Spacing{
			XS: "0.5rem", SM: "1rem", MD: "1.5rem", LG: "2rem",
			XL: "3rem", XL2: "4rem", XL3: "6rem",
		},
		Radius: Radius{
			None: "0", SM: "0.25rem", MD: "0.5rem", LG: "0.75rem",
			XL: "1rem", XL2: "1.5rem", Full: "9999px",
		},
		Shadows: Shadows{
			SM:    "0 1px 2px 0 rgb(0 0 0 / 0.05)",
			MD:    "0 4px 6px -1px rgb(0 0 0 / 0.1)",
			LG:    "0 10px 15px -3px rgb(0 0 0 / 0.1)",
			XL:    "0 20px 25px -5px rgb(0 0 0 / 0.1)",
			XL2:   "0 25px 50px -12px rgb(0 0 0 / 0.25)",
			Inner: "inset 0 2px 4px 0 rgb(0 0 0 / 0.05)",
		},
	}
	cfg.Animations.Duration.Fast = "150ms"
	cfg.Animations.Duration.Normal = "300ms"
	cfg.Animations.Duration.Slow = "500ms"
	cfg.Animations.Easing.Linear = "linear"
	cfg.Animations.Easing.EaseIn = "cubic-bezier(0.4, 0, 1, 1)"
	cfg.Animations.Easing.EaseOut = "cubic-bezier(0, 0, 0.2, 1)"
	cfg.Animations.Easing.EaseInOut = "cubic-bezier(0.4, 0, 0.2, 1)"
	return cfg
}
