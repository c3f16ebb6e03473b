package service

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// stringComparer orders strings with locale-aware collation and falls back to
// a byte comparison so distinct strings never compare equal.
// Not safe for concurrent use.
type stringComparer struct {
	col *collate.Collator
}

func newStringComparer() *stringComparer {
	return &stringComparer{col: collate.New(language.English)}
}

func (c *stringComparer) Compare(a, b string) int {
	if r := c.col.CompareString(a, b); r != 0 {
		return r
	}
	return strings.Compare(a, b)
}
