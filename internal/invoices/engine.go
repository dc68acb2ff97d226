package invoices

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// Engine rasterizes HTML. An Engine is owned by a single render call and
// must be closed on every exit path.
type Engine interface {
	Screenshot(ctx context.Context, html string) ([]byte, error)
	Close() error
}

// Launcher starts a fresh rendering engine
type Launcher interface {
	Launch(ctx context.Context) (Engine, error)
}

// ChromeLauncher starts a headless Chrome per call
type ChromeLauncher struct {
	ExecPath string
}

func NewChromeLauncher(execPath string) *ChromeLauncher {
	return &ChromeLauncher{ExecPath: execPath}
}

func (l *ChromeLauncher) Launch(ctx context.Context) (Engine, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(800, 600),
	)
	if l.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(l.ExecPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)

	// Start the browser now so launch failures surface here
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()
		return nil, fmt.Errorf("failed to start headless browser: %w", err)
	}

	return &chromeEngine{
		ctx:           browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}, nil
}

type chromeEngine struct {
	ctx           context.Context
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

func (e *chromeEngine) Screenshot(ctx context.Context, html string) ([]byte, error) {
	runCtx, cancel := context.WithCancel(e.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var buf []byte
	err := chromedp.Run(runCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.FullScreenshot(&buf, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return buf, nil
}

// Close shuts the browser down and releases the allocator
func (e *chromeEngine) Close() error {
	err := chromedp.Cancel(e.ctx)
	e.cancelBrowser()
	e.cancelAlloc()
	if err != nil && err != context.Canceled {
		return fmt.Errorf("failed to close headless browser: %w", err)
	}
	return nil
}
