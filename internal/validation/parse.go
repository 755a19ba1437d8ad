package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// Content types the parser recognizes. Matching is by substring, so
// parameters such as "; charset=utf-8" do not matter.
const (
	MIMEApplicationJSON = "application/json"
	MIMEApplicationForm = "application/x-www-form-urlencoded"
	MIMEMultipartForm   = "multipart/form-data"
)

// maxMultipartMemory bounds the in-memory part of a multipart parse.
// The request body itself is already capped by middleware.
const maxMultipartMemory = 1 << 20

// BodyParser is one strategy for turning a request body into form fields.
// ok is false when the body is not in the strategy's format.
type BodyParser interface {
	Parse(body []byte, contentType string) (fields map[string]string, ok bool)
}

// BodyParserFunc adapts a function to BodyParser.
type BodyParserFunc func(body []byte, contentType string) (map[string]string, bool)

// Parse calls f.
func (f BodyParserFunc) Parse(body []byte, contentType string) (map[string]string, bool) {
	return f(body, contentType)
}

var (
	JSONParser      BodyParser = BodyParserFunc(parseJSON)
	FormParser      BodyParser = BodyParserFunc(parseForm)
	MultipartParser BodyParser = BodyParserFunc(parseMultipart)
)

// ParsersFor returns the ordered strategies tried for a content type.
// An unknown or missing type tries JSON first, then urlencoded.
func ParsersFor(contentType string) []BodyParser {
	switch {
	case strings.Contains(contentType, MIMEApplicationJSON):
		return []BodyParser{JSONParser}
	case strings.Contains(contentType, MIMEApplicationForm):
		return []BodyParser{FormParser}
	case strings.Contains(contentType, MIMEMultipartForm):
		return []BodyParser{MultipartParser}
	default:
		return []BodyParser{JSONParser, FormParser}
	}
}

// ParseBody reads the request body and returns its fields as text.
//
// It never fails: an unreadable or malformed body yields an empty map, and
// validation reports what is missing.
func ParseBody(r *http.Request) map[string]string {
	if r == nil || r.Body == nil {
		return map[string]string{}
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return map[string]string{}
	}

	return ParseBytes(body, r.Header.Get("Content-Type"))
}

// ParseBytes runs the strategy chain for contentType over body.
// The first strategy that succeeds wins.
func ParseBytes(body []byte, contentType string) map[string]string {
	for _, parser := range ParsersFor(contentType) {
		if fields, ok := parser.Parse(body, contentType); ok {
			return fields
		}
	}
	return map[string]string{}
}

// parseJSON accepts a JSON object only. Scalars are converted to text,
// null is dropped and nested values are kept as compact JSON.
func parseJSON(body []byte, _ string) (map[string]string, bool) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil || raw == nil {
		return nil, false
	}
	// Trailing garbage makes the whole document invalid.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}

	fields := make(map[string]string, len(raw))
	for key, value := range raw {
		if text, ok := stringify(value); ok {
			fields[key] = text
		}
	}
	return fields, true
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64), true
		}
		return v.String(), true
	default:
		out, err := json.Marshal(v)
		if err != nil {
			return "", false
		}
		return string(out), true
	}
}

// parseForm decodes application/x-www-form-urlencoded pairs the way
// browsers do: pairs split on '&' only, a raw ';' is ordinary text and a
// malformed escape is kept literally. The last value of a repeated key wins.
func parseForm(body []byte, _ string) (map[string]string, bool) {
	fields := make(map[string]string)
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		fields[decodeFormComponent(key)] = decodeFormComponent(value)
	}
	return fields, true
}

// decodeFormComponent turns '+' into a space, then percent-decodes.
func decodeFormComponent(s string) string {
	return percentDecode(strings.ReplaceAll(s, "+", " "))
}

// percentDecode decodes every well-formed %XX escape and leaves the rest
// of s untouched.
func percentDecode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]) {
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// parseMultipart reads the text parts of a multipart/form-data body.
// File parts are ignored.
func parseMultipart(body []byte, contentType string) (map[string]string, bool) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["boundary"] == "" {
		return nil, false
	}

	reader := multipart.NewReader(bytes.NewReader(body), params["boundary"])
	form, err := reader.ReadForm(maxMultipartMemory)
	if err != nil {
		return nil, false
	}
	defer func() { _ = form.RemoveAll() }()

	return lastValues(form.Value), true
}

func lastValues(values map[string][]string) map[string]string {
	fields := make(map[string]string, len(values))
	for key, list := range values {
		if len(list) > 0 {
			fields[key] = list[len(list)-1]
		}
	}
	return fields
}
