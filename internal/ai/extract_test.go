package ai

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{
			name: "bare object",
			raw:  `{"a":1}`,
			want: `{"a":1}`,
			ok:   true,
		},
		{
			name: "prose around object",
			raw:  "Here is your itinerary:\n{\"title\":\"Goa\"}\nEnjoy!",
			want: `{"title":"Goa"}`,
			ok:   true,
		},
		{
			name: "markdown fenced",
			raw:  "```json\n{\"a\":1}\n```",
			want: `{"a":1}`,
			ok:   true,
		},
		{
			// Greedy span: first '{' through the LAST '}'. Two separate
			// objects collapse into one unparseable span; the caller's
			// default path handles that.
			name: "two objects span both",
			raw:  `first {"a":1} and second {"b":2} done`,
			want: `{"a":1} and second {"b":2}`,
			ok:   true,
		},
		{
			name: "no braces",
			raw:  "Sorry, I cannot help with that.",
			want: "",
			ok:   false,
		},
		{
			name: "empty",
			raw:  "",
			want: "",
			ok:   false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSON(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("span = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPipelineDecodeTotality(t *testing.T) {
	type parsed struct {
		Title *string `json:"title"`
	}
	p := Pipeline[string, parsed, string]{}

	if got := p.decode("no json at all"); got != nil {
		t.Errorf("decode of JSON-free reply = %+v, want nil", got)
	}
	if got := p.decode(`{"title": [1,2,3]}`); got != nil {
		t.Errorf("decode of mistyped JSON = %+v, want nil", got)
	}
	got := p.decode(`{"title":"Goa Escape"}`)
	if got == nil || got.Title == nil || *got.Title != "Goa Escape" {
		t.Errorf("decode of valid JSON = %+v, want Title=Goa Escape", got)
	}
}
