package resume

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for binary formats we cannot extract text
// from; the UI shows an explicit notice instead of silently failing.
var ErrUnsupportedFormat = errors.New("unsupported resume format (use .txt, .md or .pdf)")

// Import turns an uploaded resume file into plain text. Plain text passes
// through; PDFs go through positional text extraction; everything else binary
// is rejected explicitly.
func Import(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case "", ".txt", ".md", ".markdown":
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s: not valid text", filename)
		}
		return strings.TrimSpace(string(data)), nil
	case ".pdf":
		text, err := extractPDF(data)
		if err != nil {
			return "", fmt.Errorf("%s: %w", filename, err)
		}
		return text, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDF rebuilds lines from glyph positions: glyphs on (roughly) the
// same baseline form a line, and a gap wider than a glyph's width becomes a
// space. PDFs emit text per glyph run, so naive concatenation produces
// either "J o h n" or "JohnDoeEngineer"; the X/Y bookkeeping fixes both.
func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse pdf: %w", err)
	}

	var out strings.Builder
	for p := 1; p <= r.NumPage(); p++ {
		page := r.Page(p)
		if page.V.IsNull() {
			continue
		}
		texts := page.Content().Text
		if len(texts) == 0 {
			continue
		}

		// Top of the page first: PDF Y grows upward.
		sort.SliceStable(texts, func(i, j int) bool {
			if !sameBaseline(texts[i].Y, texts[j].Y) {
				return texts[i].Y > texts[j].Y
			}
			return texts[i].X < texts[j].X
		})

		if out.Len() > 0 {
			out.WriteString("\n\n")
		}

		lastY := texts[0].Y
		lastEnd := texts[0].X
		for i, t := range texts {
			switch {
			case i == 0:
			case !sameBaseline(t.Y, lastY):
				out.WriteString("\n")
				lastY = t.Y
			case t.X-lastEnd > gapThreshold(t):
				out.WriteString(" ")
			}
			out.WriteString(t.S)
			lastEnd = t.X + t.W
		}
	}

	text := collapseBlankRuns(out.String())
	if strings.TrimSpace(text) == "" {
		return "", errors.New("no extractable text in pdf")
	}
	return text, nil
}

func sameBaseline(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 2.0
}

func gapThreshold(t pdf.Text) float64 {
	// Roughly a quarter of the font size; wide enough to skip kerning
	// wobble, narrow enough to catch real word breaks.
	if t.FontSize > 0 {
		return t.FontSize / 4
	}
	return 2.0
}

func collapseBlankRuns(s string) string {
	lines := strings.Split(s, "\n")
	var out []string
	blank := 0
	for _, ln := range lines {
		ln = strings.TrimRight(ln, " ")
		if strings.TrimSpace(ln) == "" {
			blank++
			if blank > 1 {
				continue
			}
			out = append(out, "")
			continue
		}
		blank = 0
		out = append(out, ln)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
