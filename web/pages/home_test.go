package pages

import (
	"strings"
	"testing"

	"headings/web/pages/shared"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// assertMarkup fails with a readable diff when got differs from want
func assertMarkup(t *testing.T, got, want string) {
	t.Helper()
	if got == want {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	t.Errorf("markup mismatch (-want +got):\n%s", dmp.DiffPrettyText(diffs))
}

func TestHomeFragmentOrder(t *testing.T) {
	frag, err := HomePage.Fragment()
	if err != nil {
		t.Fatalf("Fragment returned error: %v", err)
	}

	if len(frag.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(frag.Children))
	}

	expected := []shared.Node{
		{Tag: shared.TagH1, Class: "mx-auto p-5 pt-5 text-5xl text-red-700", Text: "Heading"},
		{Tag: shared.TagH1, Class: "mx-auto p-5 pt-5 text-5xl text-blue-700", Text: "Heading"},
		{Tag: shared.TagDiv, Class: "absolute top-1 mt-5 px-3"},
	}

	for i, want := range expected {
		got := frag.Children[i]
		if got.Tag != want.Tag || got.Class != want.Class || got.Text != want.Text || len(got.Children) != 0 {
			t.Errorf("child %d: expected %+v, got %+v", i, want, got)
		}
	}
}

func TestHomeFragmentStable(t *testing.T) {
	first, _ := HomePage.Fragment()
	second, _ := HomePage.Fragment()
	assertMarkup(t, second.String(), first.String())
}

func TestHomeFragmentMarkup(t *testing.T) {
	frag, err := HomePage.Fragment()
	if err != nil {
		t.Fatalf("Fragment returned error: %v", err)
	}
	html := frag.String()

	red := strings.Index(html, `class="mx-auto p-5 pt-5 text-5xl text-red-700"`)
	blue := strings.Index(html, `class="mx-auto p-5 pt-5 text-5xl text-blue-700"`)
	decor := strings.Index(html, `<div class="absolute top-1 mt-5 px-3"></div>`)

	if red < 0 || blue < 0 || decor < 0 {
		t.Fatalf("fragment is missing a child: %s", html)
	}
	if !(red < blue && blue < decor) {
		t.Errorf("children out of order: %s", html)
	}
	if strings.Count(html, ">Heading</h1>") != 2 {
		t.Errorf("both headings should read Heading: %s", html)
	}
}

func TestHomeRender(t *testing.T) {
	html, err := HomePage.Render()
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	frag, _ := HomePage.Fragment()
	if !strings.Contains(html, frag.String()) {
		t.Error("document body should contain the fragment unchanged")
	}
	if !strings.Contains(html, "<title>Headings</title>") {
		t.Errorf("document should carry the page title: %s", html)
	}
}
