package export

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Renderer turns an HTML document into PDF bytes.
type Renderer interface {
	RenderPDF(ctx context.Context, markup string) ([]byte, error)
}

// ChromeRenderer prints documents with a headless Chrome instance.
// Requires Chrome/Chromium to be installed on the system.
type ChromeRenderer struct {
	Timeout time.Duration
}

// NewChromeRenderer returns a renderer with a 60s print timeout.
func NewChromeRenderer() *ChromeRenderer {
	return &ChromeRenderer{Timeout: 60 * time.Second}
}

// StubRenderer satisfies Renderer without a browser. The output is a marker
// followed by the markup, not a real PDF; it stands in where Chrome is
// unavailable.
type StubRenderer struct{}

func (StubRenderer) RenderPDF(_ context.Context, markup string) ([]byte, error) {
	return append([]byte("%PDF-PLACEHOLDER\n"), markup...), nil
}

// NewRenderer picks the Chrome renderer unless PDF_RENDERER=stub is set.
func NewRenderer() Renderer {
	if os.Getenv("PDF_RENDERER") == "stub" {
		return StubRenderer{}
	}
	return NewChromeRenderer()
}

// RenderPDF loads markup into a fresh browser tab and prints it to A4 PDF.
func (r *ChromeRenderer) RenderPDF(ctx context.Context, markup string) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, markup).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	return pdf, nil
}
