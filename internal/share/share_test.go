package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/alexanderramin/burnrate/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func highRisk() domain.Assessment {
	return domain.Assessment{
		ID:     "a1",
		Score:  9.15,
		Level:  domain.RiskHigh,
		Window: "2-4 weeks if patterns continue",
	}
}

func TestText_OneDecimalAndTier(t *testing.T) {
	got := Text(highRisk())
	assert.Equal(t, "My burnout risk score is 9.2/10 (High). Check your own balance:", got)
}

func TestTweetURL_CarriesTextAndPage(t *testing.T) {
	u, err := url.Parse(TweetURL(highRisk()))
	require.NoError(t, err)

	assert.Equal(t, "twitter.com", u.Host)
	assert.Equal(t, "/intent/tweet", u.Path)
	q := u.Query()
	assert.Equal(t, Text(highRisk()), q.Get("text"))
	assert.Equal(t, DefaultPageURL, q.Get("url"))
}

func TestLinkedInURL_CarriesSummary(t *testing.T) {
	u, err := url.Parse(LinkedInURL(highRisk()))
	require.NoError(t, err)

	assert.Equal(t, "www.linkedin.com", u.Host)
	q := u.Query()
	assert.Equal(t, "true", q.Get("mini"))
	assert.Equal(t, DefaultPageURL, q.Get("url"))
	assert.Equal(t, Text(highRisk()), q.Get("summary"))
}

func TestMailtoURL_SubjectBodyAndNoPlusEscapes(t *testing.T) {
	raw := MailtoURL(highRisk())

	assert.True(t, strings.HasPrefix(raw, "mailto:?subject="))
	assert.NotContains(t, raw, "+", "mailto values must use %%20, not +")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "My Burnout Risk Results", q.Get("subject"))
	assert.Contains(t, q.Get("body"), Text(highRisk()))
	assert.Contains(t, q.Get("body"), DefaultPageURL)
}

func TestPageURL_EnvOverride(t *testing.T) {
	t.Setenv("BURNRATE_URL", "https://example.test/burnout")
	assert.Equal(t, "https://example.test/burnout", PageURL())

	u, err := url.Parse(TweetURL(highRisk()))
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/burnout", u.Query().Get("url"))
}
