package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextExtractsDocxParagraphs(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Budi Santoso</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Backend Engineer</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := Text(context.Background(), data, mimeDOCX, "cv.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	lines := strings.Split(text, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "Budi Santoso" || lines[1] != "Backend Engineer" {
		t.Fatalf("unexpected extracted text: %q", text)
	}
}

func TestTextNormalizesZipMimeToDocx(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>hello</w:t></w:r></w:p></w:body></w:document>`)

	if _, err := Text(context.Background(), data, "application/zip", "cv.docx"); err != nil {
		t.Fatalf("expected zip mime to normalize to docx, got error: %v", err)
	}
}

func TestTextRejectsPlainZip(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err = Text(context.Background(), buf.Bytes(), "application/zip", "notes.zip")
	if err == nil {
		t.Fatal("expected unsupported mime error for zip")
	}
	if !strings.Contains(err.Error(), "unsupported mime type") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTextRejectsGarbagePDF(t *testing.T) {
	if _, err := Text(context.Background(), []byte("not a pdf"), mimePDF, "cv.pdf"); err == nil {
		t.Fatal("expected error for garbage pdf data")
	}
}

func TestContactHelpers(t *testing.T) {
	text := "Budi Santoso\nbudi.santoso@example.com\n+62 812-3456-7890\nBackend engineer with 4 years of experience"

	if got := Email(text); got != "budi.santoso@example.com" {
		t.Fatalf("Email: got %q", got)
	}
	if got := Phone(text); got != "+62 812-3456-7890" {
		t.Fatalf("Phone: got %q", got)
	}
	if got := WordCount(text); got != 12 {
		t.Fatalf("WordCount: got %d", got)
	}
}
