package design

func solid(name, color, bg string, shape DotType, frame CornerSquareType, dot CornerDotType) Template {
	return Template{Name: name, Config: TemplateConfig{
		DotsColor: color, Bg: bg, Shape: shape, EyeFrame: frame, EyeDot: dot,
	}}
}

func gradient(name string, gt GradientType, g1, g2, bg string, shape DotType, frame CornerSquareType, dot CornerDotType) Template {
	return Template{Name: name, Config: TemplateConfig{
		GradientEnabled: true, GType: gt, G1: g1, G2: g2, Bg: bg, Shape: shape, EyeFrame: frame, EyeDot: dot,
	}}
}

func withEyes(t Template, frameColor, dotColor string) Template {
	t.Config.CustomEye = true
	t.Config.FrameColor = frameColor
	t.Config.DotColor = dotColor

	return t
}

var catalog = []Category{
	{Name: "Pro", Templates: []Template{
		solid("Classic Black", "#000000", "#ffffff", DotSquare, CornerSquareSquare, CornerDotSquare),
		solid("Corporate Blue", "#1e40af", "#eff6ff", DotSquare, CornerSquareSquare, CornerDotSquare),
		solid("Forest Green", "#166534", "#f0fdf4", DotRounded, CornerSquareExtraRounded, CornerDotDot),
		solid("Crimson Red", "#991b1b", "#fef2f2", DotRounded, CornerSquareExtraRounded, CornerDotDot),
		solid("Slate Grey", "#334155", "#f8fafc", DotDots, CornerSquareExtraRounded, CornerDotDot),
		solid("Minimalist", "#18181b", "#ffffff", DotClassy, CornerSquareSquare, CornerDotSquare),
	}},
	{Name: "Ultra Pro", Templates: []Template{
		gradient("Ocean Gradient", GradientLinear, "#06b6d4", "#3b82f6", "#ffffff", DotSquare, CornerSquareExtraRounded, CornerDotDot),
		gradient("Sunset Vibes", GradientLinear, "#f59e0b", "#ef4444", "#ffffff", DotRounded, CornerSquareExtraRounded, CornerDotDot),
		gradient("Berry Fusion", GradientLinear, "#ec4899", "#8b5cf6", "#ffffff", DotDots, CornerSquareExtraRounded, CornerDotDot),
		gradient("Lime Twist", GradientLinear, "#84cc16", "#10b981", "#ffffff", DotClassy, CornerSquareExtraRounded, CornerDotDot),
		gradient("Deep Space", GradientRadial, "#312e81", "#1e1b4b", "#ffffff", DotSquare, CornerSquareSquare, CornerDotSquare),
		gradient("Royal Gold", GradientLinear, "#ca8a04", "#854d0e", "#fffbeb", DotClassyRounded, CornerSquareExtraRounded, CornerDotDot),
	}},
	{Name: "Ultra Pro Max", Templates: []Template{
		gradient("Neon Cyber", GradientLinear, "#00ffcc", "#d600ff", "#111827", DotDots, CornerSquareExtraRounded, CornerDotDot),
		gradient("Dark Emerald", GradientLinear, "#34d399", "#059669", "#0f172a", DotClassy, CornerSquareExtraRounded, CornerDotDot),
		gradient("Cotton Candy", GradientLinear, "#f472b6", "#60a5fa", "#ffffff", DotExtraRounded, CornerSquareExtraRounded, CornerDotDot),
		gradient("Midnight Oil", GradientRadial, "#6366f1", "#4338ca", "#1e1b4b", DotClassyRounded, CornerSquareExtraRounded, CornerDotDot),
		gradient("Cherry Blossom", GradientLinear, "#fda4af", "#fb7185", "#fff1f2", DotDots, CornerSquareExtraRounded, CornerDotDot),
		gradient("Electric Violet", GradientLinear, "#8b5cf6", "#6d28d9", "#f3f4f6", DotClassy, CornerSquareSquare, CornerDotSquare),
	}},
	{Name: "Ultra Pro Max Extreme", Templates: []Template{
		withEyes(solid("Golden Eye", "#000000", "#ffffff", DotDots, CornerSquareExtraRounded, CornerDotDot), "#ca8a04", "#000000"),
		withEyes(gradient("Viper Strike", GradientLinear, "#10b981", "#059669", "#000000", DotClassy, CornerSquareSquare, CornerDotSquare), "#ef4444", "#ef4444"),
		withEyes(solid("Bumblebee", "#1f2937", "#fbbf24", DotSquare, CornerSquareSquare, CornerDotSquare), "#1f2937", "#ffffff"),
		withEyes(gradient("Arctic Frost", GradientLinear, "#bae6fd", "#38bdf8", "#0c4a6e", DotDots, CornerSquareExtraRounded, CornerDotDot), "#ffffff", "#38bdf8"),
		withEyes(gradient("Love Potion", GradientRadial, "#e11d48", "#9f1239", "#ffe4e6", DotExtraRounded, CornerSquareExtraRounded, CornerDotDot), "#000000", "#e11d48"),
		withEyes(solid("Matrix Glitch", "#22c55e", "#000000", DotSquare, CornerSquareSquare, CornerDotSquare), "#22c55e", "#ffffff"),
	}},
}
