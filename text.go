package m3ui

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Ellipsis is appended to truncated titles.
const Ellipsis = "..."

// clusters splits s at normalization boundaries so a base character and
// its combining marks stay together.
func clusters(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); {
		p := norm.NFC.PropertiesString(s[i:])
		size := p.Size()
		if size == 0 {
			size = 1
		}
		if i > start && p.BoundaryBefore() {
			out = append(out, s[start:i])
			start = i
		}
		i += size
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}

// dropLastCluster removes the trailing character (with its marks) from s.
func dropLastCluster(s string) string {
	cs := clusters(s)
	if len(cs) == 0 {
		return ""
	}
	return s[:len(s)-len(cs[len(cs)-1])]
}

// TruncateText shortens text until text+Ellipsis fits in maxWidth.
// Text that already fits is returned unchanged; when not even one
// character fits the result is Ellipsis alone.
func TruncateText(measure func(string) float32, text string, maxWidth float32) string {
	if measure(text) <= maxWidth {
		return text
	}
	truncated := text
	for truncated != "" {
		truncated = dropLastCluster(truncated)
		if truncated != "" && measure(truncated+Ellipsis) <= maxWidth {
			return truncated + Ellipsis
		}
	}
	return Ellipsis
}

// TruncateText is TruncateText measured with the context's font.
func (ctx *Context) TruncateText(text string, maxWidth, size float32, weight FontWeight) string {
	return TruncateText(func(s string) float32 {
		return ctx.MeasureText(s, size, weight).X
	}, text, maxWidth)
}

// WrapText breaks text at word boundaries into lines no wider than
// maxWidth. A single word wider than maxWidth gets its own line.
func (ctx *Context) WrapText(text string, maxWidth, size float32, weight FontWeight) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if line != "" && ctx.MeasureText(candidate, size, weight).X > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
