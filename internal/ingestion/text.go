// Package ingestion supplies the analysis engine with plain text: resume
// files (text or PDF) and job postings fetched from URLs. Extraction is
// best-effort; a readable file always yields some text.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrUnreadableFile is returned when the resume file cannot be opened at all.
var ErrUnreadableFile = fmt.Errorf("unreadable resume file")

var spaceRun = regexp.MustCompile(`\s+`)

// ReadResumeText returns best-effort plain text for a resume file. PDF files
// go through text extraction; everything else is read as raw text. The
// returned string may be empty for image-only PDFs, but the function fails
// only when the file itself cannot be read.
func ReadResumeText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := extractPDFText(path)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
		}
		return CleanText(text), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreadableFile, path, err)
	}
	return CleanText(string(data)), nil
}

// CleanText normalizes line endings and whitespace while preserving the line
// structure the profile extractor's section heuristics rely on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimRight(spaceRun.ReplaceAllString(line, " "), " ")
		line = strings.TrimSpace(line)
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
		} else {
			blankRun = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
