// Package web renders the server-side HTML pages and serves the embedded static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/fjordrenovering/website/internal/config"
	"go.uber.org/zap"
)

//go:embed templates static
var assets embed.FS

// Page is the data every template receives
type Page struct {
	Title       string
	Description string
	// Active marks the current navigation entry
	Active string
	Site   *config.SiteConfig
	// AdminName is set on admin pages for the signed-in user
	AdminName string
	Data      interface{}
	Year      int
}

// Renderer executes the embedded page templates
type Renderer struct {
	site   *config.SiteConfig
	pages  map[string]*template.Template
	logger *zap.Logger
	now    func() time.Time
}

var funcs = template.FuncMap{
	"safeHTML": func(s string) template.HTML { return template.HTML(s) },
	"stars": func(n int) string {
		if n < 0 {
			n = 0
		}
		if n > 5 {
			n = 5
		}
		return strings.Repeat("★", n) + strings.Repeat("☆", 5-n)
	},
	"categoryLabel": func(c interface{}) string {
		switch fmt.Sprint(c) {
		case "residential":
			return "Bolig"
		case "commercial":
			return "Næring"
		}
		return fmt.Sprint(c)
	},
	"date": func(s string) string {
		if len(s) >= 10 {
			return s[:10]
		}
		return s
	},
}

// NewRenderer parses all page templates. Public pages share templates/layout.html,
// admin pages share templates/admin/layout.html.
func NewRenderer(site *config.SiteConfig, logger *zap.Logger) (*Renderer, error) {
	r := &Renderer{
		site:   site,
		pages:  make(map[string]*template.Template),
		logger: logger,
		now:    time.Now,
	}
	if err := r.parseGroup("templates/pages", "templates/layout.html", ""); err != nil {
		return nil, err
	}
	if err := r.parseGroup("templates/admin", "templates/admin/layout.html", "admin/"); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Renderer) parseGroup(dir, layout, prefix string) error {
	entries, err := fs.ReadDir(assets, dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, entry := range entries {
		file := path.Join(dir, entry.Name())
		if entry.IsDir() || file == layout || path.Ext(file) != ".html" {
			continue
		}
		tmpl, err := template.New(path.Base(layout)).Funcs(funcs).ParseFS(assets, layout, file)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		r.pages[prefix+strings.TrimSuffix(entry.Name(), ".html")] = tmpl
	}
	return nil
}

// Has reports whether a page template exists
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render executes the named page into a buffer and writes it with the given status.
// A template failure turns into a plain 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.logger.Error("unknown page template", zap.String("page", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	page.Site = r.site
	page.Year = r.now().Year()
	if page.Title == "" {
		page.Title = r.site.CompanyName
	} else {
		page.Title = page.Title + " | " + r.site.CompanyName
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		r.logger.Error("failed to render page", zap.String("page", name), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded css and js under the prefix it is mounted at
func Static(prefix string) http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	fileServer := http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, req)
	})
}
