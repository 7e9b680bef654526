package palette

// Built-in theme specs, looked up by name in the root package.
var (
	// SpecDefault is the default theme: no base text color, blue and green headings.
	SpecDefault = Spec{
		H1:         "#5fafff",
		H2:         "#5fd7af",
		H3:         "#d7af5f",
		H4:         "#af87d7",
		H5:         "#87afaf",
		H6:         "#8a8a8a",
		Strong:     "#ffffff",
		CodeInline: "#ffaf5f",
		CodeBg:     "#262626",
		Highlight:  "#5f5f00",
		Badge:      "#000000",
		BadgeBg:    "#87afd7",
		ListMarker: "#5fafff",
		Label:      "#5fd7af",
		LinkText:   "#5fafff",
		LinkURL:    "#6c6c6c",
	}

	// SpecDracula follows the Dracula palette.
	SpecDracula = Spec{
		Text:       "#f8f8f2",
		H1:         "#ff79c6",
		H2:         "#bd93f9",
		H3:         "#8be9fd",
		H4:         "#50fa7b",
		H5:         "#f1fa8c",
		H6:         "#6272a4",
		Emphasis:   "#f1fa8c",
		Strong:     "#ffb86c",
		CodeInline: "#50fa7b",
		CodeBg:     "#44475a",
		Underline:  "#8be9fd",
		Highlight:  "#44475a",
		Badge:      "#282a36",
		BadgeBg:    "#bd93f9",
		ListMarker: "#ff79c6",
		Label:      "#8be9fd",
		LinkText:   "#8be9fd",
		LinkURL:    "#6272a4",
	}

	// SpecNord follows the Nord palette.
	SpecNord = Spec{
		Text:       "#d8dee9",
		H1:         "#88c0d0",
		H2:         "#81a1c1",
		H3:         "#5e81ac",
		H4:         "#8fbcbb",
		H5:         "#b48ead",
		H6:         "#4c566a",
		Emphasis:   "#ebcb8b",
		Strong:     "#eceff4",
		CodeInline: "#a3be8c",
		CodeBg:     "#3b4252",
		Underline:  "#88c0d0",
		Highlight:  "#434c5e",
		Badge:      "#2e3440",
		BadgeBg:    "#88c0d0",
		ListMarker: "#81a1c1",
		Label:      "#8fbcbb",
		LinkText:   "#88c0d0",
		LinkURL:    "#4c566a",
	}

	// SpecGruvbox follows the Gruvbox dark palette.
	SpecGruvbox = Spec{
		Text:       "#ebdbb2",
		H1:         "#fb4934",
		H2:         "#fabd2f",
		H3:         "#b8bb26",
		H4:         "#83a598",
		H5:         "#d3869b",
		H6:         "#928374",
		Emphasis:   "#fe8019",
		Strong:     "#fbf1c7",
		CodeInline: "#8ec07c",
		CodeBg:     "#3c3836",
		Underline:  "#83a598",
		Highlight:  "#504945",
		Badge:      "#282828",
		BadgeBg:    "#fabd2f",
		ListMarker: "#fe8019",
		Label:      "#b8bb26",
		LinkText:   "#83a598",
		LinkURL:    "#928374",
	}

	// SpecTokyoNight follows the Tokyo Night palette.
	SpecTokyoNight = Spec{
		Text:       "#c0caf5",
		H1:         "#7aa2f7",
		H2:         "#bb9af7",
		H3:         "#7dcfff",
		H4:         "#9ece6a",
		H5:         "#e0af68",
		H6:         "#565f89",
		Emphasis:   "#e0af68",
		Strong:     "#ff9e64",
		CodeInline: "#9ece6a",
		CodeBg:     "#292e42",
		Underline:  "#7dcfff",
		Highlight:  "#3b4261",
		Badge:      "#1a1b26",
		BadgeBg:    "#7aa2f7",
		ListMarker: "#bb9af7",
		Label:      "#7dcfff",
		LinkText:   "#7aa2f7",
		LinkURL:    "#565f89",
	}

	// SpecSolarizedDark follows Solarized on a dark background.
	SpecSolarizedDark = Spec{
		Text:       "#839496",
		H1:         "#268bd2",
		H2:         "#2aa198",
		H3:         "#859900",
		H4:         "#b58900",
		H5:         "#6c71c4",
		H6:         "#586e75",
		Emphasis:   "#cb4b16",
		Strong:     "#93a1a1",
		CodeInline: "#2aa198",
		CodeBg:     "#073642",
		Underline:  "#268bd2",
		Highlight:  "#073642",
		Badge:      "#002b36",
		BadgeBg:    "#b58900",
		ListMarker: "#d33682",
		Label:      "#859900",
		LinkText:   "#268bd2",
		LinkURL:    "#586e75",
	}

	// SpecSolarizedLight follows Solarized on a light background.
	SpecSolarizedLight = Spec{
		Text:       "#657b83",
		H1:         "#268bd2",
		H2:         "#2aa198",
		H3:         "#859900",
		H4:         "#b58900",
		H5:         "#6c71c4",
		H6:         "#93a1a1",
		Emphasis:   "#cb4b16",
		Strong:     "#073642",
		CodeInline: "#d33682",
		CodeBg:     "#eee8d5",
		Underline:  "#268bd2",
		Highlight:  "#eee8d5",
		Badge:      "#fdf6e3",
		BadgeBg:    "#268bd2",
		ListMarker: "#d33682",
		Label:      "#859900",
		LinkText:   "#268bd2",
		LinkURL:    "#93a1a1",
	}

	// SpecCatppuccinMocha follows the Catppuccin Mocha flavor.
	SpecCatppuccinMocha = Spec{
		Text:       "#cdd6f4",
		H1:         "#f38ba8",
		H2:         "#fab387",
		H3:         "#f9e2af",
		H4:         "#a6e3a1",
		H5:         "#89b4fa",
		H6:         "#7f849c",
		Emphasis:   "#f5c2e7",
		Strong:     "#f5e0dc",
		CodeInline: "#a6e3a1",
		CodeBg:     "#313244",
		Underline:  "#89dceb",
		Highlight:  "#45475a",
		Badge:      "#1e1e2e",
		BadgeBg:    "#cba6f7",
		ListMarker: "#cba6f7",
		Label:      "#94e2d5",
		LinkText:   "#89b4fa",
		LinkURL:    "#7f849c",
	}

	// SpecGithubLight follows GitHub's light theme.
	SpecGithubLight = Spec{
		Text:       "#24292f",
		H1:         "#0550ae",
		H2:         "#0550ae",
		H3:         "#116329",
		H4:         "#8250df",
		H5:         "#953800",
		H6:         "#57606a",
		Emphasis:   "#953800",
		Strong:     "#24292f",
		CodeInline: "#cf222e",
		CodeBg:     "#eaeef2",
		Underline:  "#0969da",
		Highlight:  "#fff8c5",
		Badge:      "#ffffff",
		BadgeBg:    "#0969da",
		ListMarker: "#8250df",
		Label:      "#116329",
		LinkText:   "#0969da",
		LinkURL:    "#57606a",
	}

	// SpecGithubDark follows GitHub's dark theme.
	SpecGithubDark = Spec{
		Text:       "#c9d1d9",
		H1:         "#79c0ff",
		H2:         "#79c0ff",
		H3:         "#7ee787",
		H4:         "#d2a8ff",
		H5:         "#ffa657",
		H6:         "#8b949e",
		Emphasis:   "#ffa657",
		Strong:     "#f0f6fc",
		CodeInline: "#ff7b72",
		CodeBg:     "#161b22",
		Underline:  "#58a6ff",
		Highlight:  "#3b2300",
		Badge:      "#0d1117",
		BadgeBg:    "#58a6ff",
		ListMarker: "#d2a8ff",
		Label:      "#7ee787",
		LinkText:   "#58a6ff",
		LinkURL:    "#8b949e",
	}
)
