package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hyperjump/sitesearch/internal/models"
	"github.com/hyperjump/sitesearch/internal/render"
)

func sampleFragment() render.Fragment {
	return render.Results([]models.IndexEntry{
		{Title: "Hello World", URL: "/posts/hello/", Date: "2024-01-01", Categories: "go", Content: "first post"},
	}, 1)
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputText, false},
		{"text", OutputText, false},
		{"JSON", OutputJSON, false},
		{" html ", OutputHTML, false},
		{"yaml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, "hello", sampleFragment(), OutputJSON); err != nil {
		t.Fatalf("WriteResults(json): %v", err)
	}
	var decoded models.SearchResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Query != "hello" || decoded.State != "results" || decoded.Total != 1 {
		t.Errorf("decoded = %+v", decoded)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].URL != "/posts/hello/" {
		t.Errorf("decoded results = %+v", decoded.Results)
	}
	if decoded.Results[0].Snippet != "first post..." {
		t.Errorf("snippet = %q", decoded.Results[0].Snippet)
	}
}

func TestWriteResults_JSON_message(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, "zzz", render.Message(render.MessageNoResults), OutputJSON); err != nil {
		t.Fatalf("WriteResults(json): %v", err)
	}
	var decoded models.SearchResponse
	if err := json.NewDecoder(&buf).Decode(&decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.State != "message" || decoded.Message != render.MessageNoResults {
		t.Errorf("decoded = %+v", decoded)
	}
	if decoded.Results == nil || len(decoded.Results) != 0 {
		t.Errorf("results should be an empty array, got %v", decoded.Results)
	}
}

func TestWriteResults_HTML(t *testing.T) {
	f := sampleFragment()
	var buf bytes.Buffer
	if err := WriteResults(&buf, "hello", f, OutputHTML); err != nil {
		t.Fatalf("WriteResults(html): %v", err)
	}
	if got := strings.TrimSuffix(buf.String(), "\n"); got != f.HTML {
		t.Errorf("html output = %q, want %q", got, f.HTML)
	}
}

func TestWriteResults_text(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, "hello", sampleFragment(), OutputText); err != nil {
		t.Fatalf("WriteResults(text): %v", err)
	}
	out := buf.String()
	for _, sub := range []string{"Showing 1 of 1 results", "1. Hello World", "/posts/hello/", "2024-01-01 · go", "first post..."} {
		if !strings.Contains(out, sub) {
			t.Errorf("text output missing %q:\n%s", sub, out)
		}
	}
}

func TestWriteResults_textStates(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteResults(&buf, "h", render.Hidden(), OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "(hidden)") {
		t.Errorf("hidden output = %q", buf.String())
	}

	buf.Reset()
	if err := WriteResults(&buf, "x", render.Message(render.MessageIndexFailed), OutputFormat("unknown")); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), render.MessageIndexFailed) {
		t.Errorf("unknown format should fall back to text; got %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"empty", "", 5, ""},
		{"short", "hi", 5, "hi"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world", 5, "hello..."},
		{"multibyte", "검색 결과가", 2, "검색..."},
		{"maxLen zero", "ab", 0, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.s, tt.maxLen)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		maxWords int
		want     string
	}{
		{"empty", "", 3, ""},
		{"few words", "one two", 3, "one two"},
		{"exact", "one two three", 3, "one two three"},
		{"more", "one two three four", 3, "one two three..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateWords(tt.s, tt.maxWords); got != tt.want {
				t.Errorf("TruncateWords(%q, %d) = %q, want %q", tt.s, tt.maxWords, got, tt.want)
			}
		})
	}
}
