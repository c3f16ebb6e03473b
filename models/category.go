package models

import (
	"encoding/json"
	"strings"
)

// Category is one label of the closed category enumeration
type Category string

const (
	CategoryAll            Category = "All"
	CategoryAI             Category = "AI"
	CategorySoftware       Category = "Software"
	CategoryHardware       Category = "Hardware"
	CategoryLibrary        Category = "Library"
	CategoryHosting        Category = "Hosting"
	CategoryFramework      Category = "Framework"
	CategoryDevtool        Category = "Devtool"
	CategoryMonorepo       Category = "Monorepo"
	CategoryCMS            Category = "CMS"
	CategoryDatabase       Category = "Database"
	CategoryCompiler       Category = "Compiler"
	CategoryCrypto         Category = "Crypto"
	CategoryCybersecurity  Category = "Cybersecurity"
	CategorySocial         Category = "Social"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBrowser        Category = "Browser"
	CategoryLanguage       Category = "Language"
	CategoryEducation      Category = "Education"
	CategoryDesign         Category = "Design"
	CategoryCommunity      Category = "Community"
	CategoryMarketplace    Category = "Marketplace"
	CategoryMusic          Category = "Music"
	CategoryVercel         Category = "Vercel"
	CategoryGoogle         Category = "Google"
	CategoryPayment        Category = "Payment"
	CategoryVoidZero       Category = "VoidZero"
	CategoryAuthentication Category = "Authentication"
	CategoryIoT            Category = "IoT"
	CategoryHomeAutomation Category = "Home Automation"
)

// AllCategories lists every known category label
var AllCategories = []Category{
	CategoryAll, CategoryAI, CategorySoftware, CategoryHardware, CategoryLibrary,
	CategoryHosting, CategoryFramework, CategoryDevtool, CategoryMonorepo, CategoryCMS,
	CategoryDatabase, CategoryCompiler, CategoryCrypto, CategoryCybersecurity, CategorySocial,
	CategoryEntertainment, CategoryBrowser, CategoryLanguage, CategoryEducation, CategoryDesign,
	CategoryCommunity, CategoryMarketplace, CategoryMusic, CategoryVercel, CategoryGoogle,
	CategoryPayment, CategoryVoidZero, CategoryAuthentication, CategoryIoT, CategoryHomeAutomation,
}

// LookupCategory returns the enumeration member matching label (case-insensitive)
func LookupCategory(label string) (Category, bool) {
	id := CategoryID(label)
	for _, c := range AllCategories {
		if CategoryID(string(c)) == id {
			return c, true
		}
	}
	return "", false
}

// IsKnownCategory reports whether label belongs to the enumeration
func IsKnownCategory(label string) bool {
	_, ok := LookupCategory(label)
	return ok
}

// CategoryID converts a label into its id: "Home Automation" -> "home-automation"
func CategoryID(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "-")
}

// CategoryItem represents a category entry in the category selector
type CategoryItem struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Count int      `json:"count"`
	Items []string `json:"items"` // Item ids
}

// CategoryGroup is the grouped dataset format: a category with its full items.
// Items stay raw so each entry can be decoded and rejected on its own.
type CategoryGroup struct {
	ID    string            `json:"id"`
	Title string            `json:"title"`
	Items []json.RawMessage `json:"items"`
	Count int               `json:"count"`
}
