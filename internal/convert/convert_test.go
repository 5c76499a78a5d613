// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeConverter implements Converter for testing. It returns canned
// Markdown or an error, depending on configuration.
type fakeConverter struct {
	name   string
	output string
	err    error
	calls  int
}

func (f *fakeConverter) Name() string { return f.name }

func (f *fakeConverter) Convert(pdfPath string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func setupPDF(t *testing.T) (pdfPath, tmpDir string) {
	t.Helper()
	tmpDir = t.TempDir()
	pdfPath = filepath.Join(tmpDir, "resume.pdf")
	if err := os.WriteFile(pdfPath, []byte("fake pdf"), 0o644); err != nil {
		t.Fatal(err)
	}
	return pdfPath, tmpDir
}

func TestChainConvert(t *testing.T) {
	tests := []struct {
		name       string
		primary    *fakeConverter
		fallback   *fakeConverter
		wantOutput string
		wantErr    bool
		wantLog    string
	}{
		{
			name:       "primary succeeds",
			primary:    &fakeConverter{name: "docling", output: "# Resume\n\nBody."},
			fallback:   &fakeConverter{name: "pagetext", output: "fallback text"},
			wantOutput: "# Resume\n\nBody.",
		},
		{
			name:       "primary unavailable falls back",
			primary:    &fakeConverter{name: "docling", err: fmt.Errorf("%w: no runtime", ErrUnavailable)},
			fallback:   &fakeConverter{name: "pagetext", output: "fallback text"},
			wantOutput: "fallback text",
			wantLog:    "falling back",
		},
		{
			name:       "primary runtime error falls back",
			primary:    &fakeConverter{name: "docling", err: errors.New("container crashed")},
			fallback:   &fakeConverter{name: "pagetext", output: "fallback text"},
			wantOutput: "fallback text",
			wantLog:    "docling failed",
		},
		{
			name:     "all backends fail",
			primary:  &fakeConverter{name: "docling", err: fmt.Errorf("%w: no runtime", ErrUnavailable)},
			fallback: &fakeConverter{name: "pagetext", err: errors.New("no text layer")},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath, _ := setupPDF(t)
			chain := NewChain(tt.primary, tt.fallback)

			var log bytes.Buffer
			out, err := chain.Convert(pdfPath, &log)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), "install one of") {
					t.Errorf("terminal error should instruct installation, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.wantOutput {
				t.Errorf("output = %q, want %q", out, tt.wantOutput)
			}
			if tt.wantLog != "" && !strings.Contains(log.String(), tt.wantLog) {
				t.Errorf("log %q does not contain %q", log.String(), tt.wantLog)
			}
		})
	}
}

func TestChainConvert_TriesBackendsInOrder(t *testing.T) {
	pdfPath, _ := setupPDF(t)

	first := &fakeConverter{name: "docling", err: errors.New("boom")}
	second := &fakeConverter{name: "pagetext", err: errors.New("boom")}
	third := &fakeConverter{name: "plaintext", output: "text"}

	var log bytes.Buffer
	out, err := NewChain(first, second, third).Convert(pdfPath, &log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "text" {
		t.Errorf("output = %q, want %q", out, "text")
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 1 {
		t.Errorf("calls = %d/%d/%d, want 1/1/1", first.calls, second.calls, third.calls)
	}
}

func TestChainConvert_StopsAtFirstSuccess(t *testing.T) {
	pdfPath, _ := setupPDF(t)

	first := &fakeConverter{name: "docling", output: "primary"}
	second := &fakeConverter{name: "pagetext", output: "fallback"}

	out, err := NewChain(first, second).Convert(pdfPath, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "primary" {
		t.Errorf("output = %q, want %q", out, "primary")
	}
	if second.calls != 0 {
		t.Errorf("fallback called %d times, want 0", second.calls)
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"resume.pdf", "resume.md"},
		{"/tmp/cv.PDF", "/tmp/cv.md"},
		{"noext", "noext.md"},
		{"a/b.tar.pdf", "a/b.tar.md"},
	}
	for _, tt := range tests {
		if got := DeriveOutputPath(tt.in); got != tt.want {
			t.Errorf("DeriveOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConvertFile(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	chain := NewChain(&fakeConverter{name: "docling", output: "# Converted"})

	var log bytes.Buffer
	mdPath, err := ConvertFile(chain, pdfPath, "", &log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := filepath.Join(tmpDir, "resume.md")
	if mdPath != want {
		t.Errorf("mdPath = %q, want %q", mdPath, want)
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "# Converted" {
		t.Errorf("output content = %q", string(data))
	}
	if !strings.Contains(log.String(), "converted:") {
		t.Errorf("log should report the written path, got %q", log.String())
	}
}

func TestConvertFile_ExplicitOutputPath(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	chain := NewChain(&fakeConverter{name: "docling", output: "# Converted"})

	outPath := filepath.Join(tmpDir, "out", "converted.md")
	mdPath, err := ConvertFile(chain, pdfPath, outPath, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mdPath != outPath {
		t.Errorf("mdPath = %q, want %q", mdPath, outPath)
	}
	if _, err := os.Stat(outPath); err != nil {
		t.Errorf("expected output file at %s", outPath)
	}
}

func TestConvertFile_InputNotFound(t *testing.T) {
	chain := NewChain(&fakeConverter{name: "docling", output: "unused"})

	_, err := ConvertFile(chain, filepath.Join(t.TempDir(), "missing.pdf"), "", &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error should report missing input, got: %v", err)
	}
}

func TestConvertFile_StatErrorIsNotReportedAsMissing(t *testing.T) {
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	chain := NewChain(&fakeConverter{name: "docling", output: "unused"})

	// A path component that is a regular file makes os.Stat fail with
	// something other than "does not exist".
	_, err := ConvertFile(chain, filepath.Join(blocker, "resume.pdf"), "", &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if strings.Contains(err.Error(), "not found") {
		t.Errorf("stat failure should not be reported as a missing file, got: %v", err)
	}
	if !strings.Contains(err.Error(), "resume.pdf") {
		t.Errorf("error should name the input path, got: %v", err)
	}
}

func TestConvertFile_NoOutputOnTotalFailure(t *testing.T) {
	pdfPath, tmpDir := setupPDF(t)
	chain := NewChain(
		&fakeConverter{name: "docling", err: fmt.Errorf("%w: no runtime", ErrUnavailable)},
		&fakeConverter{name: "pagetext", err: errors.New("no text layer")},
	)

	_, err := ConvertFile(chain, pdfPath, "", &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, statErr := os.Stat(filepath.Join(tmpDir, "resume.md")); !os.IsNotExist(statErr) {
		t.Error("no output file should exist after total failure")
	}
}
