package resume

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/go-pdf/fpdf"
)

// contactLine matches email/phone/profile-link lines, which get centered like
// a letterhead instead of left-aligned body text.
var contactLine = regexp.MustCompile(`@|(?i)linkedin|(?i)github|\(\d{3}\)`)

// Export renders resume text as a paginated PDF. The markup is the app's
// lightweight convention: # centered title, ## section, ### subsection,
// -/* bullets, everything else body text.
func Export(content string, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageW, pageH := doc.GetPageSize()
	const margin = 20.0
	maxWidth := pageW - 2*margin
	y := margin

	checkNewPage := func() {
		if y > pageH-40 {
			doc.AddPage()
			y = margin
		}
	}

	writeLines := func(lines []string, x float64, lineH float64, center bool) {
		for _, ln := range lines {
			checkNewPage()
			if center {
				doc.Text((pageW-doc.GetStringWidth(ln))/2, y, ln)
			} else {
				doc.Text(x, y, ln)
			}
			y += lineH
		}
	}

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			y += 3
			continue
		}

		checkNewPage()

		switch {
		case strings.HasPrefix(line, "# "):
			doc.SetFont("Helvetica", "B", 22)
			wrapped := doc.SplitText(strings.TrimSpace(line[2:]), maxWidth)
			writeLines(wrapped, margin, 8, true)
			y += 5
		case strings.HasPrefix(line, "## "):
			y += 5
			doc.SetFont("Helvetica", "B", 14)
			wrapped := doc.SplitText(strings.TrimSpace(line[3:]), maxWidth)
			writeLines(wrapped, margin, 7, false)
			y += 3
		case strings.HasPrefix(line, "### "):
			y += 3
			doc.SetFont("Helvetica", "B", 11)
			wrapped := doc.SplitText(strings.TrimSpace(line[4:]), maxWidth)
			writeLines(wrapped, margin, 6, false)
			y += 2
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			doc.SetFont("Helvetica", "", 10)
			doc.Text(margin+3, y, "•")
			wrapped := doc.SplitText(strings.TrimSpace(line[2:]), maxWidth-10)
			writeLines(wrapped, margin+8, 5, false)
		case contactLine.MatchString(line):
			doc.SetFont("Helvetica", "", 10)
			wrapped := doc.SplitText(line, maxWidth)
			writeLines(wrapped, margin, 5, true)
			y += 3
		default:
			doc.SetFont("Helvetica", "", 10)
			wrapped := doc.SplitText(line, maxWidth)
			writeLines(wrapped, margin, 5, false)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// ExportFileName builds the download name the UI suggests.
func ExportFileName(company, jobTitle, date string) string {
	name := fmt.Sprintf("%s_%s_resume_%s.pdf", company, jobTitle, date)
	return strings.ReplaceAll(name, " ", "_")
}
