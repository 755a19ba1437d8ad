package email_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/config"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/lib/email"
	"github.com/aaadil777/Akron-Crossdock-Site/internal/model"
)

var contactCfg = config.ContactConfig{
	ResendAPIKey: "re_test",
	ToEmail:      "ops@example.com",
	FromEmail:    "Akron Crossdock <onboarding@resend.dev>",
}

func TestBuildContactMessage(t *testing.T) {
	t.Parallel()

	sub := model.Submission{
		Name:    "Ada",
		Company: "Analytical Engines",
		Email:   "ada@example.com",
		Phone:   "+1 330 555 0100",
		Message: "Two pallets\nthis week",
	}

	msg, err := email.BuildContactMessage(contactCfg, sub)
	require.NoError(t, err)

	assert.Equal(t, contactCfg.FromEmail, msg.From)
	assert.Equal(t, contactCfg.ToEmail, msg.To)
	assert.Equal(t, "New Quote Request — Akron Crossdock Warehouse", msg.Subject)
	assert.Equal(t, "ada@example.com", msg.ReplyTo)

	assert.Equal(t, strings.Join([]string{
		"Name: Ada",
		"Company: Analytical Engines",
		"Email: ada@example.com",
		"Phone: +1 330 555 0100",
		"",
		"Message:",
		"Two pallets\nthis week",
	}, "\n"), msg.Text)

	assert.True(t, strings.HasPrefix(msg.HTML, "<table"))
	assert.True(t, strings.HasSuffix(msg.HTML, "</table>"))
	assert.Contains(t, msg.HTML, "<strong>Name:</strong> Ada</td>")
	assert.Contains(t, msg.HTML, "<strong>Phone:</strong> +1 330 555 0100</td>")
	assert.Contains(t, msg.HTML, "<strong>Message:</strong><br>Two pallets<br>this week</td>")
}

func TestBuildContactMessage_EscapesHTML(t *testing.T) {
	t.Parallel()

	sub := model.Submission{
		Name:    `Tom & "Jerry" <script>`,
		Company: "O'Brien",
		Message: "a & b",
	}

	msg, err := email.BuildContactMessage(contactCfg, sub)
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "Tom &amp; &quot;Jerry&quot; &lt;script&gt;")
	assert.Contains(t, msg.HTML, "O&#39;Brien")
	assert.Contains(t, msg.HTML, "a &amp; b")
	assert.NotContains(t, msg.HTML, "<script>")
	assert.NotContains(t, msg.HTML, "&amp;amp;")
	assert.Equal(t, 2, strings.Count(msg.HTML, "&amp;"))

	// Text body is never escaped.
	assert.Contains(t, msg.Text, `Name: Tom & "Jerry" <script>`)
}

func TestBuildContactMessage_EscapesMarkupInMessage(t *testing.T) {
	t.Parallel()

	msg, err := email.BuildContactMessage(contactCfg, model.Submission{
		Name:    "Ada",
		Message: `<b>hi & "bye"</b>`,
	})
	require.NoError(t, err)

	assert.Contains(t, msg.HTML, "&lt;b&gt;hi &amp; &quot;bye&quot;&lt;/b&gt;")
	assert.NotContains(t, msg.HTML, "<b>")
	assert.NotContains(t, msg.HTML, `"bye"`)
	assert.Equal(t, 1, strings.Count(msg.HTML, "&amp;"))
}

func TestBuildContactMessage_NoReplyTo(t *testing.T) {
	t.Parallel()

	msg, err := email.BuildContactMessage(contactCfg, model.Submission{Name: "Ada", Message: "hi"})
	require.NoError(t, err)

	assert.Empty(t, msg.ReplyTo)
	assert.Contains(t, msg.Text, "Email: \n")
}

func TestEscapeHTML(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "&amp;&lt;&gt;&quot;&#39;", email.EscapeHTML(`&<>"'`))
	assert.Equal(t, "&amp;amp;", email.EscapeHTML("&amp;"))
	assert.Equal(t, "plain", email.EscapeHTML("plain"))
}
