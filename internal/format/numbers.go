package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatSeconds renders a duration in seconds the way the trial lines print
// it: seven significant digits in general form, right-aligned in ten
// columns, with ".0" appended when the fixed-point result has no fraction.
// Exponent form starts one decade earlier than strconv's 'g' (at 1e6 rather
// than 1e7), so a seven-digit integer part is never printed.
func FormatSeconds(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'g', 7, 64)
	if e := strconv.FormatFloat(seconds, 'e', 6, 64); strings.HasSuffix(e, "e+06") {
		mantissa := strings.TrimRight(strings.TrimSuffix(e, "e+06"), "0")
		s = strings.TrimSuffix(mantissa, ".") + "e+06"
	}
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return fmt.Sprintf("%10s", s)
}

// FormatDuration rounds d to three decimals of its largest unit: "850µs",
// "12.346ms", "1.5s".
func FormatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		d = d.Round(time.Millisecond)
	case d >= time.Millisecond:
		d = d.Round(time.Microsecond)
	}
	return d.String()
}

// FormatNumberString inserts thousands separators into a decimal integer
// string, keeping a leading minus sign.
func FormatNumberString(s string) string {
	if s == "" {
		return s
	}
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
