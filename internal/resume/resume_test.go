package resume

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"hirepath-engine/internal/store"

	"github.com/rs/zerolog"
)

func TestHolderDefaultsOnFirstRun(t *testing.T) {
	ds, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	h, err := NewHolder(context.Background(), ds, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	got := h.Get()
	if !strings.HasPrefix(got.Content, "# Your Name") {
		t.Errorf("default resume missing, got %q...", got.Content[:30])
	}
}

func TestHolderSaveOverwritesWholesale(t *testing.T) {
	ds, err := store.OpenFile(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	h, err := NewHolder(ctx, ds, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}

	if err := h.Save(ctx, "# Jane Doe\n\n## Skills\n- Go"); err != nil {
		t.Fatal(err)
	}
	got := h.Get()
	if got.Content != "# Jane Doe\n\n## Skills\n- Go" {
		t.Errorf("content = %q", got.Content)
	}
	if got.LastUpdated.IsZero() {
		t.Error("LastUpdated not set")
	}

	// Survives reopen.
	h2, err := NewHolder(ctx, ds, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	if h2.Get().Content != got.Content {
		t.Error("saved resume lost on reload")
	}
}

func TestImportPlainText(t *testing.T) {
	for _, name := range []string{"resume.txt", "resume.md", "resume.markdown", "resume"} {
		got, err := Import(name, []byte("  # Jane Doe\nEngineer\n"))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != "# Jane Doe\nEngineer" {
			t.Errorf("%s: got %q", name, got)
		}
	}
}

func TestImportRejectsBinaryText(t *testing.T) {
	if _, err := Import("resume.txt", []byte{0xff, 0xfe, 0x00, 0x80}); err == nil {
		t.Fatal("invalid utf-8 must be rejected")
	}
}

func TestImportRejectsUnknownExtension(t *testing.T) {
	for _, name := range []string{"resume.docx", "resume.png", "resume.rtf"} {
		_, err := Import(name, []byte("whatever"))
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%s: got %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestImportRejectsBrokenPDF(t *testing.T) {
	if _, err := Import("resume.pdf", []byte("%PDF-1.4 truncated garbage")); err == nil {
		t.Fatal("broken pdf must error, not return garbage text")
	}
}

func TestCollapseBlankRuns(t *testing.T) {
	in := "a\n\n\n\nb\n \nc\n"
	got := collapseBlankRuns(in)
	if got != "a\n\nb\n\nc" {
		t.Errorf("got %q", got)
	}
}

func TestExportProducesPDF(t *testing.T) {
	content := strings.Join([]string{
		"# Jane Doe",
		"jane@example.com | (555) 123-4567 | linkedin.com/in/janedoe",
		"",
		"## Experience",
		"### Senior Engineer | Acme | 2020-Present",
		"- Led a team of five",
		"* Shipped the thing",
		"",
		"## Education",
		"BS Computer Science",
	}, "\n")

	var buf bytes.Buffer
	if err := Export(content, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatalf("output does not start with %%PDF: %q", buf.Bytes()[:8])
	}
	if buf.Len() < 500 {
		t.Errorf("suspiciously small pdf: %d bytes", buf.Len())
	}
}

func TestExportPaginatesLongContent(t *testing.T) {
	var lines []string
	lines = append(lines, "# Long Resume")
	for i := 0; i < 200; i++ {
		lines = append(lines, "- bullet point with enough text to take a full line of the page body")
	}

	var buf bytes.Buffer
	if err := Export(strings.Join(lines, "\n"), &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	// A single A4 page cannot hold 200 lines; the writer must have added pages.
	if got := bytes.Count(buf.Bytes(), []byte("/Type /Page")); got < 2 {
		t.Errorf("expected multiple pages, found %d page markers", got)
	}
}

func TestExportPaginatesLongWrappedBlock(t *testing.T) {
	// One bullet whose wrapped lines alone exceed a page; the break has
	// to happen mid-block, not just between source lines.
	long := "- " + strings.Repeat("a clause that wraps and wraps and keeps on wrapping ", 120)

	var buf bytes.Buffer
	if err := Export("# Long Bullet\n"+long, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	// Two page objects plus the page-tree node.
	if got := bytes.Count(buf.Bytes(), []byte("/Type /Page")); got < 3 {
		t.Errorf("expected a mid-block page break, found %d page markers", got)
	}
}

func TestExportFileName(t *testing.T) {
	got := ExportFileName("Acme Corp", "Go Engineer", "2026-03-01")
	if !strings.HasSuffix(got, ".pdf") {
		t.Errorf("missing extension: %q", got)
	}
	if strings.ContainsAny(got, " /\\") {
		t.Errorf("unsafe characters in filename: %q", got)
	}
	if !strings.Contains(got, "2026-03-01") {
		t.Errorf("date missing: %q", got)
	}
}
