// Package validate holds the length limits for the editable text of the
// landing page.
package validate

import (
	"fmt"
	"unicode/utf8"
)

// Limits are in characters, not bytes; the copy uses accents and emoji.
const (
	MaxBrandLength       = 60
	MaxTitleLength       = 120
	MaxDescriptionLength = 300
	MaxHeadlineLength    = 120
	MaxLabelLength       = 40
	MaxCaptionLength     = 120
	MaxClaimLength       = 160
)

func checkLen(value string, max int, field string) string {
	if utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s must be %d characters or fewer", field, max)
	}
	return ""
}

func Brand(s string) string       { return checkLen(s, MaxBrandLength, "brand") }
func Title(s string) string       { return checkLen(s, MaxTitleLength, "title") }
func Description(s string) string { return checkLen(s, MaxDescriptionLength, "description") }
func Headline(s string) string    { return checkLen(s, MaxHeadlineLength, "headline") }
func Label(s string) string       { return checkLen(s, MaxLabelLength, "label") }
func Caption(s string) string     { return checkLen(s, MaxCaptionLength, "caption") }
func Claim(s string) string       { return checkLen(s, MaxClaimLength, "claim") }
