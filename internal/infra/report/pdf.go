package report

import (
	"context"
	"time"

	"github.com/Vetlyst2025/HPVC-Boarding-Calendar/internal/pkg/errs"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const DefaultPDFTimeout = 30 * time.Second

var ErrPDFDisabled = errs.New("PDF reports are disabled")

// PDFRenderer prints report HTML through headless Chromium.
type PDFRenderer struct {
	enabled bool
	timeout time.Duration
}

func NewPDFRenderer(enabled bool, timeout time.Duration) *PDFRenderer {
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	return &PDFRenderer{enabled: enabled, timeout: timeout}
}

func (r *PDFRenderer) Enabled() bool {
	return r.enabled
}

func (r *PDFRenderer) Render(parentCtx context.Context, html []byte) ([]byte, error) {
	if !r.enabled {
		return nil, ErrPDFDisabled
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, r.timeout)
	defer timeoutCancel()

	var pdf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(html)).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "chromedp print failed"), ErrRenderFailed)
	}
	return pdf, nil
}
