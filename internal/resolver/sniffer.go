package resolver

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// DefaultSettle is how long a page is left loaded so lazily requested
// manifests have a chance to appear on the wire.
const DefaultSettle = 6 * time.Second

// Sniffer drives a headless browser tab per probe and collects every
// response URL containing the manifest marker. One Sniffer owns one browser
// process; individual probes open and close their own tab.
type Sniffer struct {
	allocCtx context.Context
	settle   time.Duration
	log      *slog.Logger
}

// NewSniffer starts a headless browser allocator. The returned cancel func
// tears the browser down and must be called when the pipeline is done.
func NewSniffer(ctx context.Context, settle time.Duration, log *slog.Logger) (*Sniffer, context.CancelFunc) {
	if settle <= 0 {
		settle = DefaultSettle
	}
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("autoplay-policy", "no-user-gesture-required"),
			chromedp.Flag("mute-audio", true),
		)...,
	)
	return &Sniffer{allocCtx: allocCtx, settle: settle, log: log}, cancel
}

// Probe loads pageURL in a fresh tab and returns the manifest URLs observed
// while it settled. Navigation errors and timeouts produce an empty result.
func (s *Sniffer) Probe(ctx context.Context, pageURL string) []string {
	tabCtx, cancel := chromedp.NewContext(s.allocCtx)
	defer cancel()

	// Honor the caller's deadline on the tab as well.
	if deadline, ok := ctx.Deadline(); ok {
		var dcancel context.CancelFunc
		tabCtx, dcancel = context.WithDeadline(tabCtx, deadline)
		defer dcancel()
	}

	var mu sync.Mutex
	var found []string
	chromedp.ListenTarget(tabCtx, func(ev interface{}) {
		resp, ok := ev.(*network.EventResponseReceived)
		if !ok {
			return
		}
		if strings.Contains(resp.Response.URL, manifestMarker) {
			mu.Lock()
			found = append(found, resp.Response.URL)
			mu.Unlock()
		}
	})

	err := chromedp.Run(tabCtx,
		network.Enable(),
		chromedp.Navigate(pageURL),
		chromedp.Sleep(s.settle),
	)
	if err != nil {
		s.log.Debug("probe navigation failed",
			slog.String("url", pageURL),
			slog.String("error", err.Error()),
		)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()
	return found
}
