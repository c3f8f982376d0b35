// Package share builds outbound share-intent URLs for a frozen assessment:
// two social platforms and an email compose link. URL construction is total;
// only opening them in a browser can fail.
package share

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/pkg/browser"
)

// DefaultPageURL is the page referenced in share intents.
// Override with BURNRATE_URL.
const DefaultPageURL = "https://github.com/alexanderramin/burnrate"

const emailSubject = "My Burnout Risk Results"

// PageURL returns the share page URL, honoring the BURNRATE_URL override.
func PageURL() string {
	if u := os.Getenv("BURNRATE_URL"); u != "" {
		return u
	}
	return DefaultPageURL
}

// Text returns the fixed share template: tier and score to one decimal.
func Text(a domain.Assessment) string {
	return fmt.Sprintf("My burnout risk score is %.1f/10 (%s). Check your own balance:", a.Score, a.Level.Label())
}

// TweetURL returns a Twitter/X intent URL carrying the share text and page URL.
func TweetURL(a domain.Assessment) string {
	q := url.Values{}
	q.Set("text", Text(a))
	q.Set("url", PageURL())
	return "https://twitter.com/intent/tweet?" + q.Encode()
}

// LinkedInURL returns a LinkedIn share URL carrying the same text.
func LinkedInURL(a domain.Assessment) string {
	q := url.Values{}
	q.Set("mini", "true")
	q.Set("url", PageURL())
	q.Set("summary", Text(a))
	return "https://www.linkedin.com/shareArticle?" + q.Encode()
}

// MailtoURL returns a pre-filled email compose URL with subject and body.
func MailtoURL(a domain.Assessment) string {
	body := Text(a) + "\n\n" + PageURL()
	return "mailto:?subject=" + escapeMailto(emailSubject) + "&body=" + escapeMailto(body)
}

// escapeMailto percent-encodes a mailto header value. Query escaping uses
// '+' for spaces, which mail clients render literally, so spaces become %20.
func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Opener launches a URL in the user's default handler. The TUI and CLI go
// through this interface so tests can capture the URL instead of opening it.
type Opener interface {
	Open(rawURL string) error
}

// BrowserOpener opens URLs with the OS default browser.
type BrowserOpener struct{}

func (BrowserOpener) Open(rawURL string) error {
	if err := browser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("opening %s: %w", rawURL, err)
	}
	return nil
}
