// Package util carries the small cross-cutting helpers: logger setup and
// short id generation.
package util

import (
	"github.com/lithammer/shortuuid/v4"
)

// GenID returns a short URL-safe unique id, used for human-visible
// identifiers such as CLI history entries.
func GenID() string {
	return shortuuid.New()
}

// GenIDWith prefixes a short unique id, e.g. "qry-" for query history rows.
func GenIDWith(prefix string) string {
	return prefix + shortuuid.New()
}
