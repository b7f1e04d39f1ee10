package cbic

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"

	"gst-rates/config"
	"gst-rates/utils"
)

// DefaultRatesURL is the public CBIC goods and services rates page.
const DefaultRatesURL = "https://cbic-gst.gov.in/gst-goods-services-rates.html"

// Fetcher renders the rates page in headless Chrome. The goods table is built
// client-side, so a plain HTTP GET does not contain it.
type Fetcher struct {
	chromeBin string
	selector  string
	timeout   time.Duration
	logger    *utils.Logger
	retry     *utils.RetryConfig
}

// NewFetcher creates a Fetcher from the application config.
func NewFetcher(cfg *config.Config, logger *utils.Logger) *Fetcher {
	selector := cfg.TableSelector
	if selector == "" {
		selector = DefaultTableSelector
	}
	return &Fetcher{
		chromeBin: cfg.ChromeBin,
		selector:  selector,
		timeout:   cfg.FetchTimeout,
		logger:    logger,
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
	}
}

// Render loads pageURL, waits for the goods table and returns the page HTML.
func (f *Fetcher) Render(ctx context.Context, pageURL string) (string, error) {
	chromeBin := findChromeBinary(f.chromeBin)
	f.logger.Info("[fetch] Rendering %s (browser: %s)", pageURL, displayBinary(chromeBin))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 "+
			"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)
	if chromeBin != "" {
		opts = append(opts, chromedp.ExecPath(chromeBin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	// Suppress chromedp log noise
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelBrowser()

	var html string
	err := f.retry.Do(ctx, "render-rates-page", func() error {
		tabCtx, cancelTab := chromedp.NewContext(browserCtx)
		defer cancelTab()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, f.timeout)
		defer cancelTimeout()

		return chromedp.Run(tabCtx,
			chromedp.Navigate(pageURL),
			chromedp.WaitReady(f.selector, chromedp.ByQuery),
			chromedp.OuterHTML("html", &html, chromedp.ByQuery),
		)
	})
	if err != nil {
		return "", fmt.Errorf("fetch: render %s: %w", pageURL, err)
	}

	f.logger.Debug("[fetch] Rendered %d bytes", len(html))
	return html, nil
}

// findChromeBinary prefers the configured binary, then well-known names on
// PATH, then well-known install locations. Empty means let chromedp decide.
func findChromeBinary(configured string) string {
	if configured != "" {
		return configured
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

func displayBinary(bin string) string {
	if bin == "" {
		return "chromedp default"
	}
	return bin
}
