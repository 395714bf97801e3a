package deck

import (
	"testing"

	"github.com/flimzy/diff"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Explanation
	}{
		{
			name:     "sentinel",
			input:    "/",
			expected: Explanation{Kind: ExplanationNone},
		},
		{
			name:     "empty",
			input:    "",
			expected: Explanation{Kind: ExplanationNone},
		},
		{
			name:  "plain text",
			input: "1 < 2 & 3 > 2",
			expected: Explanation{
				Kind: ExplanationText,
				HTML: "1 &lt; 2 &amp; 3 &gt; 2",
				Text: "1 < 2 & 3 > 2",
			},
		},
		{
			name:  "unknown tags are text",
			input: "<div>not markup</div>",
			expected: Explanation{
				Kind: ExplanationText,
				HTML: "&lt;div&gt;not markup&lt;/div&gt;",
				Text: "<div>not markup</div>",
			},
		},
		{
			name:  "markup",
			input: `<b class="x">bold</b> and <i>italic</i><br/>next`,
			expected: Explanation{
				Kind: ExplanationMarkup,
				HTML: "<b>bold</b> and <i>italic</i><br>next",
				Text: "bold and italic\nnext",
			},
		},
		{
			name:  "markup with disallowed tags",
			input: `<p>Keep <a href="javascript:alert(1)">link text</a></p><script>alert(1)</script>`,
			expected: Explanation{
				Kind: ExplanationMarkup,
				HTML: "<p>Keep link text</p>",
				Text: "Keep link text",
			},
		},
		{
			name:  "entities are re-escaped",
			input: `<em>&lt;tag&gt; &amp; it's</em>`,
			expected: Explanation{
				Kind: ExplanationMarkup,
				HTML: "<em>&lt;tag&gt; &amp; it&#39;s</em>",
				Text: "<tag> & it's",
			},
		},
		{
			name:  "list",
			input: "<ul><li>one</li><li>two</li></ul>",
			expected: Explanation{
				Kind: ExplanationMarkup,
				HTML: "<ul><li>one</li><li>two</li></ul>",
				Text: "one\ntwo",
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := Card{Explanation: test.input}.Explain()
			if d := diff.Interface(test.expected, result); d != nil {
				t.Error(d)
			}
		})
	}
}

func TestIsMarkup(t *testing.T) {
	tests := map[string]bool{
		"plain":              false,
		"a < b":              false,
		"<span>x</span>":     false,
		"<STRONG>x</STRONG>": true,
		"line<br>break":      true,
		"x</sub>":            true,
	}
	for input, expected := range tests {
		if result := IsMarkup(input); result != expected {
			t.Errorf("%q: expected %t, got %t", input, expected, result)
		}
	}
}

func TestEscapeText(t *testing.T) {
	expected := "&lt;b&gt;Frage&lt;/b&gt; &amp; &#34;Antwort&#34;"
	if result := EscapeText(`<b>Frage</b> & "Antwort"`); result != expected {
		t.Errorf("Unexpected result: %s", result)
	}
}
