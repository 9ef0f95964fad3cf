package shared

import (
	"strings"
	"testing"

	"github.com/rohanthewiz/element"
)

func TestNodeRenderLeaf(t *testing.T) {
	b := element.NewBuilder()
	Node{Tag: TagH1, Class: "p-5", Text: "Title"}.Render(b)
	html := b.String()

	if !strings.Contains(html, `<h1 class="p-5">Title</h1>`) {
		t.Errorf("unexpected markup: %s", html)
	}
}

func TestNodeRenderEmptyDiv(t *testing.T) {
	b := element.NewBuilder()
	Node{Tag: TagDiv, Class: "absolute"}.Render(b)
	html := b.String()

	if !strings.Contains(html, `<div class="absolute"></div>`) {
		t.Errorf("empty div should render open and close tags: %s", html)
	}
}

func TestNodeRenderChildren(t *testing.T) {
	parent := Node{
		Tag: TagDiv,
		Children: []Node{
			{Tag: TagH1, Text: "one"},
			{Tag: TagH1, Text: "two"},
		},
	}

	b := element.NewBuilder()
	parent.Render(b)
	html := b.String()

	one := strings.Index(html, "one")
	two := strings.Index(html, "two")
	closing := strings.LastIndex(html, "</div>")
	if one < 0 || two < 0 || one > two {
		t.Errorf("children should render in order: %s", html)
	}
	if closing < two {
		t.Errorf("children should render inside the parent: %s", html)
	}
	if strings.Contains(html, "class=") {
		t.Errorf("nodes without a class should not emit a class attribute: %s", html)
	}
}

func TestNodeRenderUnknownTag(t *testing.T) {
	b := element.NewBuilder()
	Node{Tag: "marquee", Text: "nope"}.Render(b)
	if b.String() != "" {
		t.Errorf("unknown tags should render nothing, got %q", b.String())
	}
}

func TestFragmentNoWrapper(t *testing.T) {
	frag := Fragment{Children: []Node{
		{Tag: TagH1, Text: "a"},
		{Tag: TagDiv},
	}}
	html := frag.String()

	if !strings.HasPrefix(html, "<h1") {
		t.Errorf("fragment should start with its first child, got %s", html)
	}
	if !strings.HasSuffix(html, "</div>") {
		t.Errorf("fragment should end with its last child, got %s", html)
	}
}

func TestDocument(t *testing.T) {
	page := Page{Title: "Test", Stylesheet: "/static/css/app.css"}
	html := page.Document(Fragment{Children: []Node{{Tag: TagH1, Text: "x"}}})

	checks := []string{"<html", "<head>", "<title>Test</title>", `href="/static/css/app.css"`, "<body>", "<h1>x</h1>"}
	for _, c := range checks {
		if !strings.Contains(html, c) {
			t.Errorf("document should contain %s: %s", c, html)
		}
	}

	bare := Page{Title: "Bare"}.Document(Fragment{})
	if strings.Contains(bare, "stylesheet") {
		t.Error("no stylesheet link expected when none is set")
	}
}
