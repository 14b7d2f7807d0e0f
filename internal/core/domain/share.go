// internal/core/domain/share.go
package domain

import (
	"net/url"
	"strings"
	"time"
)

// ShareHeader opens every shared list message.
const ShareHeader = "Lista zakupów:\n\n"

// ShareMessage is a list rendered for sending as a text message
type ShareMessage struct {
	ListID    int64     `json:"list_id"`
	Text      string    `json:"text"`
	SMSURI    string    `json:"sms_uri"`
	ShareURL  string    `json:"share_url,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// SharedList is the read-only view behind a share link
type SharedList struct {
	List  *ShoppingList   `json:"list"`
	Items []*ShoppingItem `json:"items"`
}

// FormatShareText groups items by category in order of first appearance.
func FormatShareText(items []*ShoppingItem) string {
	var order []string
	groups := make(map[string][]*ShoppingItem)

	for _, item := range items {
		category := item.DisplayCategory()
		if _, ok := groups[category]; !ok {
			order = append(order, category)
		}
		groups[category] = append(groups[category], item)
	}

	var b strings.Builder
	b.WriteString(ShareHeader)
	for _, category := range order {
		b.WriteString(category)
		b.WriteString(":\n")
		for _, item := range groups[category] {
			b.WriteString("- ")
			b.WriteString(item.Name)
			b.WriteString(" (")
			b.WriteString(item.MeasureLabel())
			b.WriteString(")\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// SMSURI builds an sms: URI with a pre-filled body
func SMSURI(text string) string {
	return "sms:?body=" + EncodeURIComponent(text)
}

// EncodeURIComponent escapes s the way browsers do for URI components
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	return componentUnescaper.Replace(escaped)
}

var componentUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
