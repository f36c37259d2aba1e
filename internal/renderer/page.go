package renderer

import (
	"bytes"
	"html/template"
)

// pageTmpl is the document shell every theme renders into. The head
// carries the derived variable table and any injected custom-CSS blocks;
// the root element carries the theme/dark/preview marker classes.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" class="{{.RootClasses}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<meta name="generator" content="inkwell">
<title>{{.Title}}</title>
<style>
{{.VariableCSS}}
</style>
{{- range .StyleBlocks}}
<style data-inkwell-custom="true">
{{.}}
</style>
{{- end}}
</head>
<body data-theme="{{.ThemeName}}">
{{.Header}}
<main class="page-main">
{{.Content}}
{{- if .Sidebar}}
<aside class="page-sidebar">
{{.Sidebar}}
</aside>
{{- end}}
</main>
{{.Footer}}
</body>
</html>
`))

type pageTmplData struct {
	Title       string
	ThemeName   string
	RootClasses string
	VariableCSS template.CSS
	StyleBlocks []template.CSS
	Header      template.HTML
	Content     template.HTML
	Sidebar     template.HTML
	Footer      template.HTML
}

// surfaceTmpl renders the minimal loading/error/not-supported pages. These
// carry no theme-scoped presentation state.
var surfaceTmpl = template.Must(template.New("surface").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div class="{{.Class}}">
<h1>{{.Heading}}</h1>
<p>{{.Message}}</p>
{{- if .Retry}}
<p><a href="javascript:location.reload()">Retry</a></p>
{{- end}}
</div>
</body>
</html>
`))

type surfaceData struct {
	Title   string
	Class   string
	Heading string
	Message string
	Retry   bool
}

func renderSurface(d surfaceData) template.HTML {
	var buf bytes.Buffer
	// The surface template has no dynamic failure modes.
	_ = surfaceTmpl.Execute(&buf, d)
	return template.HTML(buf.String())
}

func errorSurface(message string) template.HTML {
	return renderSurface(surfaceData{
		Title:   "Something went wrong",
		Class:   "render-error",
		Heading: "Something went wrong",
		Message: message,
		Retry:   true,
	})
}

func notSupportedSurface(themeName, pageType string) template.HTML {
	return renderSurface(surfaceData{
		Title:   "Page not available",
		Class:   "render-not-supported",
		Heading: "Page not available",
		Message: "The theme “" + themeName + "” does not provide a " + pageType + " page.",
	})
}

func loadingSurface() template.HTML {
	return renderSurface(surfaceData{
		Title:   "Loading",
		Class:   "render-loading",
		Heading: "Loading…",
		Message: "The theme is being prepared.",
	})
}
