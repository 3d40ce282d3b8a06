package ui

// Color accessors return the escape sequence for the active theme, or an
// empty string when colors are disabled.

// ColorReset returns the sequence that clears all formatting.
func ColorReset() string { return Current().attr("\033[0m") }

// ColorRed returns the error color.
func ColorRed() string { t := Current(); return t.escape(t.Error) }

// ColorGreen returns the success color.
func ColorGreen() string { t := Current(); return t.escape(t.Success) }

// ColorYellow returns the warning color.
func ColorYellow() string { t := Current(); return t.escape(t.Warning) }

// ColorBlue returns the accent color used for strategy names and sizes.
func ColorBlue() string { t := Current(); return t.escape(t.Accent) }

// ColorMagenta returns the informational color.
func ColorMagenta() string { t := Current(); return t.escape(t.Info) }

// ColorCyan returns the muted color used for host details.
func ColorCyan() string { t := Current(); return t.escape(t.Muted) }

// ColorBold returns the bold sequence.
func ColorBold() string { return Current().attr("\033[1m") }

// ColorUnderline returns the underline sequence.
func ColorUnderline() string { return Current().attr("\033[4m") }
