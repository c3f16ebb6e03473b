package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"logo-banner/models"
	"logo-banner/utils"
)

// maxSVGBytes bounds a single logo payload
const maxSVGBytes = 2 << 20

// SVGLoader resolves the image payload of catalog items that ship without inline content
type SVGLoader struct {
	assetsDir   string
	client      *http.Client
	concurrency int
}

// NewSVGLoader creates a loader reading local assets relative to assetsDir.
// http(s) paths are fetched over the network.
func NewSVGLoader(assetsDir string) *SVGLoader {
	return &SVGLoader{
		assetsDir:   assetsDir,
		client:      &http.Client{Timeout: 10 * time.Second},
		concurrency: 8,
	}
}

// LoadAll fills SVGContent for every item that lacks it.
// Items whose image cannot be loaded are logged and dropped; order is preserved.
func (l *SVGLoader) LoadAll(ctx context.Context, items []models.LogoItem) []models.LogoItem {
	loaded := make([]*models.LogoItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)
	for i := range items {
		item := items[i]
		g.Go(func() error {
			if !item.HasImage() {
				content, err := l.Load(gctx, item.Path)
				if err != nil {
					utils.Log().Warnf("⚠️  SVG not loaded for %s: %v", item.ID, err)
					return nil
				}
				item.SVGContent = content
			}
			if !item.HasImage() {
				utils.Log().Warnf("⚠️  Dropping %s: payload is not an SVG image", item.ID)
				return nil
			}
			loaded[i] = &item
			return nil
		})
	}
	// Workers never return errors, failures only drop the item
	_ = g.Wait()

	out := make([]models.LogoItem, 0, len(items))
	for _, item := range loaded {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

// Load fetches the SVG content at path
func (l *SVGLoader) Load(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty asset path")
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return l.fetch(ctx, path)
	}
	return l.read(path)
}

// read resolves path inside assetsDir; ".." segments cannot escape it
func (l *SVGLoader) read(path string) (string, error) {
	full := filepath.Join(l.assetsDir, filepath.Clean("/"+filepath.ToSlash(path)))

	f, err := os.Open(full)
	if err != nil {
		return "", fmt.Errorf("failed to open asset: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxSVGBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read asset: %w", err)
	}
	return string(data), nil
}

func (l *SVGLoader) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch SVG: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch SVG at %s (status: %d)", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSVGBytes))
	if err != nil {
		return "", fmt.Errorf("failed to read SVG data: %w", err)
	}
	return string(data), nil
}
