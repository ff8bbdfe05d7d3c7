// File: patternx.go
// Title: Whole-String Pattern Predicates
// Description: Regular expressions and predicates for floats, numeric-like
//              tokens, money, host:port pairs, IPv4-like addresses, phone
//              numbers, html tags and times of day.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package patternx

import (
	"regexp"
	"strings"
)

// Pattern sources, exported so callers can embed them in larger expressions.
const (
	FloatRegex       = `^([+-]?(\d+\.)?\d+)$`
	NumericLikeRegex = `^.{0,2}[-+]?[0-9]*\.?[0-9]+.{0,2}$`
	MoneyLikeRegex   = `^[¥￥$]?[0-9]+(\.[0-9]{1,2})?$`
	IPLikeRegex      = `^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`
	HTMLTagRegex     = `<("[^"]*"|'[^']*'|[^'">])*>`
	TimeRegex        = `[0-2][0-3]:[0-5][0-9]`

	// PriceRegex matches 1-9 followed by digit groups with optional
	// thousands commas and an optional 1-2 digit fraction.
	PriceRegex = `[1-9](,?\d+){0,8}(\.\d{1,2})|[1-9](,?\d+){0,8}`

	// ChinesePhoneNumberLikeRegex matches mainland mobile numbers.
	ChinesePhoneNumberLikeRegex = `^((13[0-9])|(14[57])|(15([0-3]|[5-9]))|(18[0125-9])|(177))\d{8}$`

	// IPPortRegex matches host:port where host is a domain name, localhost
	// or a dotted quad. Domain labels are 1-63 characters and neither start
	// nor end with a hyphen.
	IPPortRegex = `^(` +
		`([A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?\.)+[A-Za-z]{2,6}` +
		`|localhost` +
		`|([0-9]{1,3}\.){3}[0-9]{1,3}` +
		`):[0-9]{1,5}$`

	htmlCharsetRegex = `(?i)^<meta.+charset\s*=[\s"']*([a-zA-Z0-9\-]{3,8})[\s"'/>]*`
)

var (
	floatPattern       = regexp.MustCompile(FloatRegex)
	numericLikePattern = regexp.MustCompile(NumericLikeRegex)
	moneyLikePattern   = regexp.MustCompile(MoneyLikeRegex)
	ipLikePattern      = regexp.MustCompile(IPLikeRegex)
	ipPortPattern      = regexp.MustCompile(IPPortRegex)
	phonePattern       = regexp.MustCompile(ChinesePhoneNumberLikeRegex)
	htmlTagPattern     = regexp.MustCompile(HTMLTagRegex)
	timePattern        = regexp.MustCompile(TimeRegex)
	pricePattern       = regexp.MustCompile(PriceRegex)
	htmlCharsetPattern = regexp.MustCompile(htmlCharsetRegex)
)

// IsFloat reports whether text is an optionally signed decimal number.
func IsFloat(text string) bool {
	return floatPattern.MatchString(text)
}

// IsNumericLike reports whether text is a signed decimal number surrounded
// by at most two arbitrary characters on each side, e.g. "$12.5" or "12kg".
func IsNumericLike(text string) bool {
	return numericLikePattern.MatchString(text)
}

// IsMoneyLike reports whether text is an amount with an optional ¥, ￥ or $
// prefix and at most two fraction digits.
func IsMoneyLike(text string) bool {
	return moneyLikePattern.MatchString(text)
}

// IsIPPortLike reports whether text has the shape host:port. Octet and port
// ranges are not validated.
func IsIPPortLike(text string) bool {
	return ipPortPattern.MatchString(text)
}

// IsIPLike reports whether text has the shape of a dotted quad. Octets up to
// 999 are accepted.
func IsIPLike(text string) bool {
	return ipLikePattern.MatchString(text)
}

// IsChinesePhoneNumberLike reports whether text looks like a mainland
// mobile number.
func IsChinesePhoneNumberLike(text string) bool {
	return phonePattern.MatchString(text)
}

// HasHTMLTags reports whether text contains something shaped like a tag.
func HasHTMLTags(text string) bool {
	return htmlTagPattern.MatchString(text)
}

// CountTimeStrings counts hh:mm tokens in text. Only hours whose second
// digit is 0-3 are recognized, so "18:30" is not counted.
func CountTimeStrings(text string) int {
	return len(timePattern.FindAllStringIndex(text, -1))
}

// ReplaceCharsetInHTML replaces the charset declared by a leading <meta> tag
// with charset everywhere in html. Documents without such a tag are
// returned unchanged.
func ReplaceCharsetInHTML(html, charset string) string {
	m := htmlCharsetPattern.FindStringSubmatch(html)
	if m == nil {
		return html
	}
	return strings.ReplaceAll(html, m[1], charset)
}
