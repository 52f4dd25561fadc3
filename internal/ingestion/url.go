package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails.
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when text extraction fails.
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestJobPostingURL fetches a job posting page and returns its cleaned main
// text, suitable for the free-text description field of a job description.
func IngestJobPostingURL(ctx context.Context, urlStr string, verbose bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched %s: %d bytes", urlStr, len(result.HTML))
	}

	text, err := fetch.ExtractMainText(result.HTML, fetch.JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(text))
	}

	return CleanText(text), nil
}
