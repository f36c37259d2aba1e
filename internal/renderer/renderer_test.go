package renderer

import (
	"context"
	"errors"
	"html/template"
	"strings"
	"testing"

	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/view"
	"github.com/InkwellLabs/inkwell/pkg/models"
	"go.uber.org/zap"
)

// testBundle builds a minimal bundle with homepage and single-post
// assemblies. Archive is deliberately absent.
func testBundle(t *testing.T) *view.Bundle {
	t.Helper()
	tmpl := template.Must(template.New("theme").Parse(`
{{define "header"}}<header>{{.Tenant.Name}}</header>{{end}}
{{define "footer"}}<footer>end</footer>{{end}}
{{define "home"}}<div class="posts">{{range .Posts}}<h2>{{.Title}}</h2>{{end}}</div>{{end}}
{{define "post"}}<article>{{.Post.Title}}</article>{{end}}
{{define "post-card"}}{{with .Post}}<div class="card">{{.Title}}</div>{{end}}{{end}}
`))
	header := view.NewTemplateView(tmpl, "header")
	footer := view.NewTemplateView(tmpl, "footer")
	return &view.Bundle{
		Homepage:   &view.Assembly{Header: header, Footer: footer, Content: view.NewTemplateView(tmpl, "home")},
		SinglePost: &view.Assembly{Header: header, Footer: footer, Content: view.NewTemplateView(tmpl, "post")},
		Fragments: map[string]view.View{
			"post-card": view.NewTemplateView(tmpl, "post-card"),
		},
	}
}

func testTenant() *models.Tenant {
	return &models.Tenant{ID: "t1", Slug: "demo", Name: "Demo Site", ThemeID: "plain"}
}

func newTestRenderer(t *testing.T) (*Renderer, *registry.Registry) {
	t.Helper()
	reg := registry.New(zap.NewNop())
	def := models.ThemeDefinition{Name: "Plain", Category: models.CategoryMinimal}
	if err := reg.Register("plain", def, testBundle(t), nil); err != nil {
		t.Fatalf("register: %v", err)
	}
	return New(reg, zap.NewNop()), reg
}

func TestRender_Homepage(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := r.Render(context.Background(), Request{
		ThemeID:  "plain",
		PageType: models.PageHomepage,
		Tenant:   testTenant(),
		Data: ContentData{
			Posts: []models.Post{{Title: "First"}, {Title: "Second"}},
		},
	})

	if res.Status != StatusReady {
		t.Fatalf("status = %q, err = %v", res.Status, res.Err)
	}
	html := string(res.HTML)
	for _, want := range []string{
		"<header>Demo Site</header>",
		"<h2>First</h2>",
		"<h2>Second</h2>",
		"<footer>end</footer>",
		`class="theme-plain"`,
		":root {",
		"--color-primary:",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestRender_DarkModeClass(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := r.Render(context.Background(), Request{
		ThemeID:  "plain",
		PageType: models.PageHomepage,
		Tenant:   testTenant(),
		DarkMode: true,
	})

	if res.Status != StatusReady {
		t.Fatalf("status = %q, err = %v", res.Status, res.Err)
	}
	if !strings.Contains(string(res.HTML), `"theme-plain dark"`) &&
		!strings.Contains(string(res.HTML), `"dark theme-plain"`) {
		t.Errorf("root classes missing dark marker: %s", extractRootClass(string(res.HTML)))
	}
}

func TestRender_BrandOverrideReachesVariables(t *testing.T) {
	r, _ := newTestRenderer(t)
	tenant := testTenant()
	tenant.Brand.Colors.Primary = "#c0ffee"

	res := r.Render(context.Background(), Request{
		ThemeID:  "plain",
		PageType: models.PageHomepage,
		Tenant:   tenant,
	})

	if res.Status != StatusReady {
		t.Fatalf("status = %q, err = %v", res.Status, res.Err)
	}
	if !strings.Contains(string(res.HTML), "--color-primary: #c0ffee;") {
		t.Error("brand primary color not in variable table")
	}
}

func TestRender_CustomCSSInjected(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := r.Render(context.Background(), Request{
		ThemeID:       "plain",
		PageType:      models.PageHomepage,
		Tenant:        testTenant(),
		Customization: &models.Customization{CustomCSS: ".posts { gap: 2rem }"},
	})

	if res.Status != StatusReady {
		t.Fatalf("status = %q, err = %v", res.Status, res.Err)
	}
	html := string(res.HTML)
	if !strings.Contains(html, `data-inkwell-custom="true"`) {
		t.Error("custom CSS block marker missing")
	}
	if !strings.Contains(html, ".posts { gap: 2rem }") {
		t.Error("custom CSS content missing")
	}
}

func TestRender_UnknownTheme(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := r.Render(context.Background(), Request{
		ThemeID:  "ghost",
		PageType: models.PageHomepage,
		Tenant:   testTenant(),
	})

	if res.Status != StatusError {
		t.Fatalf("status = %q, want error", res.Status)
	}
	if !errors.Is(res.Err, registry.ErrNotRegistered) {
		t.Errorf("err = %v, want ErrNotRegistered", res.Err)
	}
	if !strings.Contains(string(res.HTML), "Retry") {
		t.Error("error surface missing retry affordance")
	}
}

func TestRender_BundleLoadFailure(t *testing.T) {
	reg := registry.New(zap.NewNop())
	def := models.ThemeDefinition{Name: "Broken", Category: models.CategoryModern}
	_ = reg.Register("broken", def, nil, func(context.Context) (*view.Bundle, error) {
		return nil, errors.New("template syntax error")
	})
	r := New(reg, zap.NewNop())

	res := r.Render(context.Background(), Request{
		ThemeID:  "broken",
		PageType: models.PageHomepage,
		Tenant:   testTenant(),
	})

	if res.Status != StatusError {
		t.Fatalf("status = %q, want error", res.Status)
	}
	if !errors.Is(res.Err, registry.ErrLoadFailed) {
		t.Errorf("err = %v, want ErrLoadFailed", res.Err)
	}
}

func TestRender_UnsupportedPageType(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := r.Render(context.Background(), Request{
		ThemeID:  "plain",
		PageType: models.PageArchive,
		Tenant:   testTenant(),
	})

	if res.Status != StatusNotSupported {
		t.Fatalf("status = %q, want not_supported", res.Status)
	}
	if res.Err != nil {
		t.Errorf("not-supported should carry no error, got %v", res.Err)
	}
	if !strings.Contains(string(res.HTML), "archive") {
		t.Error("surface should name the unsupported page type")
	}
}

func TestRender_StubPages(t *testing.T) {
	// Reuse the single-post assembly for about/contact by registering a
	// bundle where those page types point at the post assembly.
	reg := registry.New(zap.NewNop())
	b := testBundle(t)
	b.About = b.SinglePost
	b.Contact = b.SinglePost
	_ = reg.Register("plain", models.ThemeDefinition{Name: "Plain"}, b, nil)
	r := New(reg, zap.NewNop())

	for pt, want := range map[models.PageType]string{
		models.PageAbout:   "About",
		models.PageContact: "Contact",
	} {
		res := r.Render(context.Background(), Request{
			ThemeID:  "plain",
			PageType: pt,
			Tenant:   testTenant(),
		})
		if res.Status != StatusReady {
			t.Fatalf("%s: status = %q, err = %v", pt, res.Status, res.Err)
		}
		if !strings.Contains(string(res.HTML), "<article>"+want+"</article>") {
			t.Errorf("%s: stub post title %q not rendered", pt, want)
		}
	}
}

func TestRender_SinglePost(t *testing.T) {
	r, _ := newTestRenderer(t)

	res := r.Render(context.Background(), Request{
		ThemeID:  "plain",
		PageType: models.PageSinglePost,
		Tenant:   testTenant(),
		Data: ContentData{
			Post: &models.Post{Title: "Hello", Slug: "hello"},
		},
	})

	if res.Status != StatusReady {
		t.Fatalf("status = %q, err = %v", res.Status, res.Err)
	}
	if !strings.Contains(string(res.HTML), "<article>Hello</article>") {
		t.Error("post content missing")
	}
	if !strings.Contains(string(res.HTML), "<title>Hello") {
		t.Error("page title should lead with the post title")
	}
}

func TestFragment_PostCard(t *testing.T) {
	_, reg := newTestRenderer(t)

	bundle, err := reg.Bundle(context.Background(), "plain")
	if err != nil {
		t.Fatalf("bundle: %v", err)
	}
	frag, ok := bundle.Fragment("post-card")
	if !ok {
		t.Fatal("post-card fragment missing")
	}

	var sb strings.Builder
	data := &view.PageData{Post: &models.Post{Title: "Card Title"}}
	if err := frag.Render(context.Background(), &sb, data); err != nil {
		t.Fatalf("render fragment: %v", err)
	}
	if !strings.Contains(sb.String(), `<div class="card">Card Title</div>`) {
		t.Errorf("fragment output = %q", sb.String())
	}
}

// extractRootClass pulls the html element's class attribute for error messages.
func extractRootClass(html string) string {
	i := strings.Index(html, `class="`)
	if i < 0 {
		return ""
	}
	rest := html[i+7:]
	j := strings.Index(rest, `"`)
	if j < 0 {
		return rest
	}
	return rest[:j]
}
