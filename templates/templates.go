// Package templates holds the HTML pages of the directory frontend.
package templates

import (
	"embed"
	"html/template"
	"net/url"
)

//go:embed *.tmpl
var files embed.FS

// FooterServiceTypes are the category deep links shown in the footer.
var FooterServiceTypes = []string{"Plumbing", "Electrical", "Cleaning", "Gardening"}

// Funcs are the helpers available to every page.
var Funcs = template.FuncMap{
	"providerPath": func(id string) string {
		return "/service-providers/" + url.PathEscape(id)
	},
	"serviceTypePath": func(serviceType string) string {
		return "/service-providers?" + url.Values{"serviceType": {serviceType}}.Encode()
	},
	"footerServiceTypes": func() []string {
		return FooterServiceTypes
	},
}

// New parses every page and partial.
func New() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "*.tmpl")
}
