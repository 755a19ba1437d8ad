package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaadil777/Akron-Crossdock-Site/internal/validation"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  string
		maxLen int
		want   string
	}{
		{name: "short value is trimmed", value: "  Ada  ", maxLen: 10, want: "Ada"},
		{name: "long value is truncated", value: "abcdef", maxLen: 3, want: "abc"},
		{name: "truncate then trim", value: "ab  cd", maxLen: 4, want: "ab"},
		{name: "counts characters not bytes", value: "ééééé", maxLen: 2, want: "éé"},
		{name: "empty", value: "", maxLen: 5, want: ""},
		{name: "zero cap", value: "abc", maxLen: 0, want: ""},
		{name: "byte order mark only", value: "\ufeff", maxLen: 10, want: ""},
		{name: "unicode spaces", value: "\u00a0\u2003Ada\u3000\ufeff", maxLen: 20, want: "Ada"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validation.Clamp(tt.value, tt.maxLen))
		})
	}
}

func TestCleanPhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  string
	}{
		{value: "+1 (330) 555-0100", want: "+1 (330) 555-0100"},
		{value: "330.555.0100 ext#7", want: "330.555.0100 7"},
		{value: "call me", want: ""},
		{value: "  12ab34  ", want: "1234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validation.CleanPhone(tt.value), tt.value)
	}
}

func TestIsEmail(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "first.last@example.com", "a..b@c.d", "x@y.z.w"}
	invalid := []string{
		"", "plain", "a@b", "a b@c.d", "a@@b.c", "@b.c", "a@.c",
		"a\u00a0b@x.co", "a@x\u2003y.co", "\ufeffa@b.co", "a@b.c\u2028o",
	}

	for _, v := range valid {
		assert.True(t, validation.IsEmail(v), v)
	}
	for _, v := range invalid {
		assert.False(t, validation.IsEmail(v), v)
	}
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("applies caps", func(t *testing.T) {
		t.Parallel()

		sub := validation.Sanitize(map[string]string{
			"name":    strings.Repeat("n", 200),
			"company": strings.Repeat("c", 200),
			"email":   strings.Repeat("e", 200),
			"phone":   strings.Repeat("1", 60),
			"message": strings.Repeat("m", 6000),
		})

		assert.Len(t, sub.Name, validation.MaxNameLength)
		assert.Len(t, sub.Company, validation.MaxCompanyLength)
		assert.Len(t, sub.Email, validation.MaxEmailLength)
		assert.Len(t, sub.Phone, validation.MaxPhoneLength)
		assert.Len(t, sub.Message, validation.MaxMessageLength)
	})

	t.Run("defaults message", func(t *testing.T) {
		t.Parallel()

		sub := validation.Sanitize(map[string]string{"name": "Ada"})
		assert.Equal(t, validation.DefaultMessage, sub.Message)
		assert.Empty(t, sub.Email)
		assert.Empty(t, sub.Company)
	})

	t.Run("cleans phone before capping", func(t *testing.T) {
		t.Parallel()

		sub := validation.Sanitize(map[string]string{"phone": "tel: +1 330 555 0100"})
		assert.Equal(t, "+1 330 555 0100", sub.Phone)
	})

	t.Run("ignores unknown keys", func(t *testing.T) {
		t.Parallel()

		sub := validation.Sanitize(map[string]string{"name": " Ada ", "admin": "true"})
		assert.Equal(t, "Ada", sub.Name)
	})
}
