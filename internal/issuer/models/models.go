package models

import (
	"strings"

	"cardcheck/pkg/card"
)

// IINRange is one prefix interval claimed by a network, at its own prefix
// width.
type IINRange struct {
	Low   uint32 `json:"low"`
	High  uint32 `json:"high"`
	Width int    `json:"width"`
}

// IssuerInfo is the directory entry for one payment network.
type IssuerInfo struct {
	Name    string     `json:"name"`
	Slug    string     `json:"slug"`
	Lengths []int      `json:"lengths"`
	Ranges  []IINRange `json:"iin_ranges"`
}

// Slug derives the URL identifier for a network display name:
// "American Express" becomes "american-express".
func Slug(name string) string {
	slug := strings.ToLower(name)
	return strings.ReplaceAll(slug, " ", "-")
}

// FromIssuer builds a directory entry from the static network table.
func FromIssuer(issuer card.Issuer) IssuerInfo {
	ranges := issuer.IINRanges()
	info := IssuerInfo{
		Name:    issuer.Name(),
		Slug:    Slug(issuer.Name()),
		Lengths: issuer.Lengths(),
		Ranges:  make([]IINRange, 0, len(ranges)),
	}
	for _, r := range ranges {
		info.Ranges = append(info.Ranges, IINRange{Low: r.Low, High: r.High, Width: r.Width})
	}
	return info
}
