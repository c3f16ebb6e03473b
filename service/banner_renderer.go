package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"logo-banner/models"
)

//go:embed templates/banner.html
var bannerTemplate string

// BannerView is the composition handed to the renderer
type BannerView struct {
	Items      []models.LogoItem
	Width      int // inner width, percent
	Background string
}

type bannerLogo struct {
	ID    string
	Title string
	SVG   template.HTML
}

// BannerRenderer turns a composition into a standalone HTML document
type BannerRenderer struct {
	tmpl   *template.Template
	width  int
	height int
}

// NewBannerRenderer parses the embedded banner template for a canvas of width x height pixels
func NewBannerRenderer(width, height int) (*BannerRenderer, error) {
	tmpl, err := template.New("banner").Parse(bannerTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return &BannerRenderer{tmpl: tmpl, width: width, height: height}, nil
}

// Size returns the canvas dimensions in pixels
func (r *BannerRenderer) Size() (int, int) {
	return r.width, r.height
}

// RenderHTML renders the banner document
func (r *BannerRenderer) RenderHTML(view BannerView) (string, error) {
	if view.Width < models.MinWidth || view.Width > models.MaxWidth {
		return "", models.ErrInvalidWidth
	}
	background, err := ValidateBackground(view.Background)
	if err != nil {
		return "", err
	}

	logos := make([]bannerLogo, 0, len(view.Items))
	for _, item := range view.Items {
		logos = append(logos, bannerLogo{
			ID:    item.ID,
			Title: item.Title,
			// Catalog payloads are loaded by the server, never by clients
			SVG: template.HTML(item.SVGContent),
		})
	}

	data := struct {
		Width      int
		Height     int
		InnerWidth int
		Background template.CSS
		Items      []bannerLogo
	}{
		Width:      r.width,
		Height:     r.height,
		InnerWidth: view.Width,
		Background: template.CSS(background),
		Items:      logos,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
