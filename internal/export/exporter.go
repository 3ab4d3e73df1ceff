// Package export prints rendered CV markup to PDF through a headless
// Chromium instance.
package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/cv-builder/internal/logging"
	"github.com/jonathan/cv-builder/internal/rendering"
	"github.com/jonathan/cv-builder/internal/types"
)

// DefaultTimeout bounds a single headless-browser print run.
const DefaultTimeout = 60 * time.Second

// Exporter turns a CV aggregate into a PDF document. At most one export runs
// at a time; concurrent requests fail fast with ErrExportInFlight.
type Exporter struct {
	chromePath string
	timeout    time.Duration
	inFlight   *semaphore.Weighted
	logger     *logging.Logger
}

// New returns an exporter. chromePath may be empty, in which case the
// browser is located on PATH. A non-positive timeout falls back to
// DefaultTimeout.
func New(chromePath string, timeout time.Duration, logger *logging.Logger) *Exporter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Exporter{
		chromePath: chromePath,
		timeout:    timeout,
		inFlight:   semaphore.NewWeighted(1),
		logger:     logger,
	}
}

// PDF renders the CV with the given template and prints it to an A4 PDF.
// It refuses to export a CV without a full name.
func (e *Exporter) PDF(ctx context.Context, cv types.CVData, template types.TemplateID) ([]byte, error) {
	if strings.TrimSpace(cv.PersonalInfo.FullName) == "" {
		return nil, ErrNoName
	}
	if !e.inFlight.TryAcquire(1) {
		return nil, ErrExportInFlight
	}
	defer e.inFlight.Release(1)

	html, err := rendering.Render(cv, template)
	if err != nil {
		return nil, &PDFError{Message: "rendering CV markup", Cause: err}
	}

	start := time.Now()
	pdf, err := e.printToPDF(ctx, html)
	if err != nil {
		return nil, err
	}

	e.logger.Info("exported PDF",
		"template", string(template),
		"bytes", len(pdf),
		"elapsed", time.Since(start).String())
	return pdf, nil
}

// printToPDF serves the markup to a headless Chromium via a temp file and
// captures the print output.
func (e *Exporter) printToPDF(ctx context.Context, html string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "cv-export-")
	if err != nil {
		return nil, &PDFError{Message: "creating temp directory", Cause: err}
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, &PDFError{Message: "writing temp markup", Cause: err}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(e.chromePath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, e.timeout)
	defer cancelTimeout()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			// A4: 210mm x 297mm, in inches.
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, &PDFError{Message: "headless browser print", Cause: err}
	}
	return pdf, nil
}

// SuggestedFilename derives the download filename from the CV's full name,
// falling back to CV.pdf when the name is blank after sanitizing.
func SuggestedFilename(cv types.CVData) string {
	name := sanitizeFilename(cv.PersonalInfo.FullName)
	if name == "" {
		return "CV.pdf"
	}
	return name + ".pdf"
}

// sanitizeFilename strips path separators and control characters so the name
// is safe in a Content-Disposition header and on every filesystem.
func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, r == 0x7f:
			// drop control characters
		case strings.ContainsRune(`/\:*?"<>|`, r):
			b.WriteRune('_')
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
