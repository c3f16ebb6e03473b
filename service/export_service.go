package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/google/uuid"

	"logo-banner/models"
	"logo-banner/repository"
	"logo-banner/utils"
)

// RasterizerInterface turns an HTML document into a PNG of the .banner element
type RasterizerInterface interface {
	Rasterize(ctx context.Context, html string, width, height int) ([]byte, error)
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then CHROME_PATH, then common installation paths
func detectChromePath(configured string) string {
	for _, candidate := range []string{configured, os.Getenv("CHROME_PATH")} {
		if candidate == "" {
			continue
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	// Common paths to check
	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// ChromeRasterizer drives a headless Chrome through chromedp
type ChromeRasterizer struct {
	chromePath string
}

func NewChromeRasterizer(chromePath string) *ChromeRasterizer {
	return &ChromeRasterizer{chromePath: chromePath}
}

// Rasterize loads html into a blank page and screenshots the banner element
func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string, width, height int) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.WindowSize(width, height),
	)
	if chromePath := detectChromePath(r.chromePath); chromePath != "" {
		utils.Log().Debugf("🔍 Using Chrome at: %s", chromePath)
		opts = append(opts, chromedp.ExecPath(chromePath))
	} else {
		// Let chromedp auto-detect (may fail in containers)
		utils.Log().Warnf("⚠️  Chrome path not detected, letting chromedp auto-detect")
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var buf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(int64(width), int64(height)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("failed to get frame tree: %w", err)
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitVisible(".banner", chromedp.ByQuery),
		// Inline SVGs need a layout pass before capture
		chromedp.Evaluate(`document.fonts.ready.then(() => true)`, nil, awaitPromise),
		chromedp.Screenshot(".banner", &buf, chromedp.NodeVisible, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return buf, nil
}

func awaitPromise(p *runtime.EvaluateParams) *runtime.EvaluateParams {
	return p.WithAwaitPromise(true)
}

// ExportSettings configures the export pipeline.
// The canvas size comes from the renderer.
type ExportSettings struct {
	Filename string
	Timeout  time.Duration
	TTL      time.Duration
	BaseURL  string
}

// ExportServiceInterface defines the export operation
type ExportServiceInterface interface {
	Export(ctx context.Context, view BannerView, notifier NotifierInterface) (*models.ExportResult, error)
	Get(ctx context.Context, exportID string) ([]byte, error)
}

// ExportService renders a composition, rasterizes it and hands the PNG off
type ExportService struct {
	renderer   *BannerRenderer
	rasterizer RasterizerInterface
	store      repository.ExportStoreInterface
	drive      DriveUploaderInterface
	settings   ExportSettings
}

// NewExportService creates a new ExportService; drive may be nil
func NewExportService(
	renderer *BannerRenderer,
	rasterizer RasterizerInterface,
	store repository.ExportStoreInterface,
	drive DriveUploaderInterface,
	settings ExportSettings,
) *ExportService {
	return &ExportService{
		renderer:   renderer,
		rasterizer: rasterizer,
		store:      store,
		drive:      drive,
		settings:   settings,
	}
}

// Export produces the banner PNG. It is attempted once; any failure is
// reported through notifier and returned wrapped in ErrExportFailed.
func (s *ExportService) Export(ctx context.Context, view BannerView, notifier NotifierInterface) (*models.ExportResult, error) {
	if notifier == nil {
		notifier = NewLogNotifier()
	}

	result, err := s.export(ctx, view)
	if err != nil {
		notifier.Notify(models.Notification{
			Message: "Failed to export banner",
			Type:    models.NotificationError,
		})
		utils.Log().Errorf("❌ Export failed: %v", err)
		return nil, fmt.Errorf("%w: %w", models.ErrExportFailed, err)
	}

	notifier.Notify(models.Notification{
		Message: fmt.Sprintf("Banner exported as %s", result.Filename),
		Type:    models.NotificationSuccess,
	})
	return result, nil
}

func (s *ExportService) export(ctx context.Context, view BannerView) (*models.ExportResult, error) {
	html, err := s.renderer.RenderHTML(view)
	if err != nil {
		return nil, err
	}

	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	width, height := s.renderer.Size()
	start := time.Now()
	raw, err := s.rasterizer.Rasterize(ctx, html, width, height)
	if err != nil {
		return nil, err
	}

	png, err := NormalizeBanner(raw, width, height)
	if err != nil {
		return nil, err
	}

	exportID := uuid.NewString()
	if err := s.store.Save(ctx, exportID, png, s.settings.TTL); err != nil {
		return nil, err
	}

	result := &models.ExportResult{
		ExportID:  exportID,
		Filename:  s.settings.Filename,
		URL:       strings.TrimRight(s.settings.BaseURL, "/") + "/exports/" + exportID,
		Width:     width,
		Height:    height,
		Bytes:     len(png),
		ExpiresAt: time.Now().Add(s.settings.TTL),
	}

	if s.drive != nil {
		// Archive is best effort, the export itself already succeeded
		driveID, err := s.drive.UploadBanner(ctx, exportName(s.settings.Filename, exportID), png)
		if err != nil {
			utils.Log().Warnf("⚠️  Drive upload failed for %s: %v", exportID, err)
		} else {
			result.DriveID = driveID
		}
	}

	utils.Log().Infof("✓ Banner exported: id=%s items=%d bytes=%d in %s",
		exportID, len(view.Items), len(png), time.Since(start).Round(time.Millisecond))
	return result, nil
}

// exportName derives a unique archive name, banner.png -> banner-<id>.png
func exportName(filename, exportID string) string {
	if i := strings.LastIndex(filename, "."); i > 0 {
		return filename[:i] + "-" + exportID + filename[i:]
	}
	return filename + "-" + exportID
}

// Get returns a stored export
func (s *ExportService) Get(ctx context.Context, exportID string) ([]byte, error) {
	return s.store.Get(ctx, exportID)
}

// Filename is the download name of exported banners
func (s *ExportService) Filename() string {
	return s.settings.Filename
}

var (
	_ RasterizerInterface    = (*ChromeRasterizer)(nil)
	_ ExportServiceInterface = (*ExportService)(nil)
)
