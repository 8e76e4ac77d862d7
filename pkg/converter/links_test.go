package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

var testConfig = Config{
	BaseURL:          "https://projecteuler.net/",
	ChallengeBaseURL: "https://projecteuler.net/problem=",
}

// contentBlock parses an HTML fragment and returns the description block
// selection, the way the scraper hands it to the converter.
func contentBlock(t *testing.T, inner string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div class="problem_content">` + inner + `</div>`))
	if err != nil {
		t.Fatalf("failed to parse fragment: %v", err)
	}
	return doc.Find("div.problem_content")
}

func TestConvertLinks_ChallengeReference(t *testing.T) {
	tests := []struct {
		name string
		href string
		text string
		want string
	}{
		{"simple", "problem=42", "Problem 42", "[Problem 42](https://projecteuler.net/problem=42)"},
		{"leading_zeros_preserved", "problem=007", "Problem 7", "[Problem 7](https://projecteuler.net/problem=007)"},
		{"trailing_junk_ignored", "problem=123&ref=x", "next", "[next](https://projecteuler.net/problem=123)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := contentBlock(t, `<p>See <a href="`+tt.href+`">`+tt.text+`</a>.</p>`)

			manifest, err := New(testConfig).ConvertLinks(block)
			if err != nil {
				t.Fatalf("ConvertLinks() error = %v", err)
			}
			if manifest != nil {
				t.Errorf("ConvertLinks() manifest = %v, want nil", manifest)
			}
			if got := block.Text(); !strings.Contains(got, tt.want) {
				t.Errorf("block text = %q, want substring %q", got, tt.want)
			}
			if block.Find("a").Length() != 0 {
				t.Error("anchor element should have been replaced")
			}
		})
	}
}

func TestConvertLinks_ResourceReference(t *testing.T) {
	tests := []struct {
		name       string
		href       string
		wantName   string
		wantRemote string
	}{
		{
			"flat",
			"resources/triangle.txt",
			"triangle.txt",
			"https://projecteuler.net/resources/triangle.txt",
		},
		{
			"nested_path",
			"resources/documents/0806_note.pdf",
			"0806_note.pdf",
			"https://projecteuler.net/resources/documents/0806_note.pdf",
		},
		{
			"images_dir",
			"images/p015.png",
			"p015.png",
			"https://projecteuler.net/images/p015.png",
		},
		{
			"project_prefix",
			"project/images/p144_laser.gif",
			"p144_laser.gif",
			"https://projecteuler.net/project/images/p144_laser.gif",
		},
		{
			"name_needs_sanitizing",
			"resources/data file.txt",
			"data_file.txt",
			"https://projecteuler.net/resources/data file.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := contentBlock(t, `<a href="`+tt.href+`">download</a>`)

			manifest, err := New(testConfig).ConvertLinks(block)
			if err != nil {
				t.Fatalf("ConvertLinks() error = %v", err)
			}
			if len(manifest) != 1 {
				t.Fatalf("manifest size = %d, want 1", len(manifest))
			}
			if got := manifest[tt.wantName]; got != tt.wantRemote {
				t.Errorf("manifest[%q] = %q, want %q", tt.wantName, got, tt.wantRemote)
			}
			want := "[download](./" + tt.wantName + ")"
			if got := block.Text(); got != want {
				t.Errorf("block text = %q, want %q", got, want)
			}
		})
	}
}

func TestConvertLinks_AboutReference(t *testing.T) {
	block := contentBlock(t, `<a href="about=euler">Leonhard Euler</a>`)

	manifest, err := New(testConfig).ConvertLinks(block)
	if err != nil {
		t.Fatalf("ConvertLinks() error = %v", err)
	}
	if manifest != nil {
		t.Errorf("manifest = %v, want nil", manifest)
	}
	want := "[Leonhard Euler](https://projecteuler.net/about=euler)"
	if got := block.Text(); got != want {
		t.Errorf("block text = %q, want %q", got, want)
	}
}

func TestConvertLinks_DuplicateResource(t *testing.T) {
	// Two distinct remote files whose names sanitize to the same local name.
	block := contentBlock(t,
		`<a href="resources/a/data file.txt">one</a>`+
			`<a href="resources/b/data_file.txt">two</a>`)

	manifest, err := New(testConfig).ConvertLinks(block)
	if err == nil {
		t.Fatal("ConvertLinks() error = nil, want DuplicateResourceError")
	}
	var dupErr *DuplicateResourceError
	if !errors.As(err, &dupErr) {
		t.Fatalf("error type = %T, want *DuplicateResourceError", err)
	}
	if dupErr.FileName != "data_file.txt" {
		t.Errorf("FileName = %q, want %q", dupErr.FileName, "data_file.txt")
	}
	if manifest != nil {
		t.Errorf("manifest = %v, want nil on error", manifest)
	}
}

func TestConvertLinks_UnknownLinkType(t *testing.T) {
	tests := []struct {
		name string
		href string
	}{
		{"mailto", "mailto:test@example.com"},
		{"absolute_url", "https://example.com/page"},
		{"missing_href", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := ""
			if tt.href != "" {
				attr = ` href="` + tt.href + `"`
			}
			block := contentBlock(t, `<a`+attr+`>link</a>`)

			_, err := New(testConfig).ConvertLinks(block)
			if err == nil {
				t.Fatal("ConvertLinks() error = nil, want UnknownLinkError")
			}
			var unknownErr *UnknownLinkError
			if !errors.As(err, &unknownErr) {
				t.Fatalf("error type = %T, want *UnknownLinkError", err)
			}
			if unknownErr.Href != tt.href {
				t.Errorf("Href = %q, want %q", unknownErr.Href, tt.href)
			}
		})
	}
}

func TestConvertLinks_StopsAtFirstError(t *testing.T) {
	block := contentBlock(t,
		`<a href="mailto:x@y.z">bad</a><a href="problem=1">good</a>`)

	if _, err := New(testConfig).ConvertLinks(block); err == nil {
		t.Fatal("ConvertLinks() error = nil, want error")
	}
	// The anchor after the failing one must be left untouched.
	if block.Find("a").Length() != 1 {
		t.Errorf("remaining anchors = %d, want 1", block.Find("a").Length())
	}
}

func TestConvertLinks_NoLinks(t *testing.T) {
	block := contentBlock(t, `<p>Just text, no links.</p>`)

	manifest, err := New(testConfig).ConvertLinks(block)
	if err != nil {
		t.Fatalf("ConvertLinks() error = %v", err)
	}
	if manifest != nil {
		t.Errorf("manifest = %v, want nil", manifest)
	}
}

func TestConvertLinks_MixedBlock(t *testing.T) {
	block := contentBlock(t,
		`<p>As in <a href="problem=42">problem 42</a>, using `+
			`<a href="resources/img/plot.png">this plot</a> and `+
			`<a href="about=puzzle">the rules</a>.</p>`)

	manifest, err := New(testConfig).ConvertLinks(block)
	if err != nil {
		t.Fatalf("ConvertLinks() error = %v", err)
	}

	if len(manifest) != 1 {
		t.Fatalf("manifest size = %d, want 1", len(manifest))
	}
	if got := manifest["plot.png"]; got != "https://projecteuler.net/resources/img/plot.png" {
		t.Errorf("manifest[plot.png] = %q", got)
	}

	got := block.Text()
	for _, want := range []string{
		"[problem 42](https://projecteuler.net/problem=42)",
		"[this plot](./plot.png)",
		"[the rules](https://projecteuler.net/about=puzzle)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("block text = %q, missing %q", got, want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "plot.png", "plot.png"},
		{"spaces", "data file.txt", "data_file.txt"},
		{"path_separators", "a/b\\c.txt", "a_b_c.txt"},
		{"reserved", `a<b>c:d"e|f?g*h.txt`, "a_b_c_d_e_f_g_h.txt"},
		{"tab_and_newline", "a\tb\nc", "a_b_c"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Sanitization must be idempotent.
			if again := SanitizeFileName(got); again != got {
				t.Errorf("SanitizeFileName not idempotent: %q -> %q", got, again)
			}
		})
	}
}
