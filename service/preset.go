package service

import (
	"slices"
	"strings"

	"logo-banner/models"
)

// DefaultPresetPrefixes is the curated starting selection
var DefaultPresetPrefixes = []string{
	"apple-light", "apple-dark", "astro", "atlassian", "atom", "aws",
	"amazon-web-services", "auth0", "babel", "bash", "biomejs", "bootstrap",
	"brave", "bulma", "bun", "chart.js", "chrome", "chromium", "cloudflare",
	"cloudinary", "copilot", "css", "cypress", "discord", "docker", "edge",
	"esbuild", "express.js", "figma", "firefox", "gatsby", "gimp", "git",
	"github", "gitlab", "gmail", "go-dark", "go-light", "grafana", "graphql",
	"headless-ui", "homebrew", "html5", "ibm", "intellij-idea", "jasmine",
	"javascript", "jest", "json", "jwt", "kubernetes", "less", "linkedin",
	"linux", "lit", "mariadb", "markdown", "markdown-dark", "markdown-light",
	"mastodon", "million", "mistral", "monero", "mysql", "netlify", "next.js",
	"node.js", "npm", "nuxt", "nx", "nx-dark", "nx-light", "ollama",
	"ollama-dark", "ollama-light", "openai", "openai-dark", "openai-light",
	"opera", "parcel", "photoshop", "playwright", "pnpm", "postcss",
	"postgresql", "postman", "preact", "prettier", "raspberry", "react", "rest",
	"rust", "safari", "sass", "sentry", "sketch", "slack", "sqlite",
	"stack-overflow", "storybook", "storyblok", "strapi", "styled-components",
	"supabase", "svg", "swagger", "swc", "swr", "tailwind-css", "telegram",
	"terraform", "three.js", "tor", "travis", "turbopack", "turborepo",
	"typescript", "vercel", "vercel-dark", "vercel-light", "vercel-wordmark",
	"vercel-wordmark-dark", "vercel-wordmark-light", "vim", "vite", "vitest",
	"vscode", "vue", "vuetify", "web-components", "webkit", "webpack",
	"jetbrains-webstorm", "web.dev", "windows", "yarn", "zed", "zoom",
}

// PresetProvider decides which items belong to the preset selection
type PresetProvider struct {
	prefixes []string
}

// NewPresetProvider creates a provider; an empty list falls back to DefaultPresetPrefixes
func NewPresetProvider(prefixes []string) *PresetProvider {
	cleaned := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		cleaned = slices.Clone(DefaultPresetPrefixes)
	}
	return &PresetProvider{prefixes: cleaned}
}

// Match reports whether an item id starts with any preset prefix.
// "react" therefore also matches "react-query".
func (p *PresetProvider) Match(id string) bool {
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(id, prefix) {
			return true
		}
	}
	return false
}

// Filter returns the preset members of candidates in candidate order
func (p *PresetProvider) Filter(candidates []models.LogoItem) []models.LogoItem {
	out := make([]models.LogoItem, 0)
	for _, item := range candidates {
		if p.Match(item.ID) {
			out = append(out, item)
		}
	}
	return out
}

// Prefixes returns a copy of the configured id prefixes
func (p *PresetProvider) Prefixes() []string {
	return slices.Clone(p.prefixes)
}
