package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fjordrenovering/website/internal/config"
	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/web"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	r, err := web.NewRenderer(&config.SiteConfig{
		CompanyName:  "Fjord Renovering AS",
		ContactEmail: "post@fjordrenovering.no",
	}, zap.NewNop())
	require.NoError(t, err)
	return r
}

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r := newRenderer(t)
	for _, name := range []string{
		web.PageHome, web.PageProjects, web.PageProject, web.PageServices, web.PageService,
		web.PageAbout, web.PageTestimonials, web.PageContact, web.PageNotFound, web.PageError,
		web.PageAdminLogin, web.PageAdminDashboard,
	} {
		assert.True(t, r.Has(name), name)
	}
}

func TestRender_Home(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	r.Render(w, http.StatusOK, web.PageHome, web.Page{Data: &domain.HomeContent{
		FeaturedProjects: []domain.ProjectDTO{{Title: "Nytt bad på Majorstuen", Slug: "nytt-bad", Category: domain.ProjectCategoryResidential}},
		Services:         []domain.ServiceDTO{{Name: "Baderom", Slug: "baderom"}},
		Testimonials:     []domain.TestimonialDTO{{ClientName: "Kari", Quote: "Strålende <jobb>", Rating: 5}},
	}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "<title>Fjord Renovering AS</title>")
	assert.Contains(t, body, `href="/projects/nytt-bad"`)
	assert.Contains(t, body, "Bolig")
	assert.Contains(t, body, `href="/services/baderom"`)
	assert.Contains(t, body, "Strålende &lt;jobb&gt;")
	assert.Contains(t, body, "★★★★★")
}

func TestRender_ProjectWithBeforeAfter(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	project := &domain.ProjectDTO{
		Title:    "Kjøkken",
		BodyHTML: "<p>Helt <strong>nytt</strong></p>",
		Category: domain.ProjectCategoryCommercial,
		BeforeAfterPairs: []domain.BeforeAfterPairDTO{{
			ID:      uuid.New(),
			Before:  &domain.MediaDTO{URL: "/media/before"},
			After:   &domain.MediaDTO{URL: "/media/after"},
			Caption: "Stue",
		}},
	}
	r.Render(w, http.StatusOK, web.PageProject, web.Page{Title: project.Title, Data: project})

	body := w.Body.String()
	assert.Contains(t, body, "<title>Kjøkken | Fjord Renovering AS</title>")
	assert.Contains(t, body, "<strong>nytt</strong>")
	assert.Contains(t, body, "data-before-after")
	assert.Contains(t, body, `src="/media/before"`)
	assert.Contains(t, body, `src="/media/after"`)
	assert.Contains(t, body, "Næring")
}

func TestRender_ContactErrors(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	r.Render(w, http.StatusUnprocessableEntity, web.PageContact, web.Page{Data: web.ContactForm{
		Form:     domain.ContactRequest{Name: "Ola", ServiceSlug: "tak"},
		Errors:   map[string]string{"email": "Must be a valid email address"},
		Services: []domain.ServiceDTO{{Name: "Tak", Slug: "tak"}},
	}})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="Ola"`)
	assert.Contains(t, body, "Must be a valid email address")
	assert.Contains(t, body, `<option value="tak" selected>`)
}

func TestRender_ContactSent(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, web.PageContact, web.Page{Data: web.ContactForm{Sent: true}})
	assert.Contains(t, w.Body.String(), "Takk for henvendelsen")
	assert.NotContains(t, w.Body.String(), "<form")
}

func TestRender_AdminDashboard(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()

	r.Render(w, http.StatusOK, web.PageAdminDashboard, web.Page{
		AdminName: "Admin",
		Data: web.AdminDashboard{
			Stats:    &domain.DashboardDTO{NewMessages: 3},
			Projects: []domain.ProjectDTO{{ID: uuid.New(), Title: "Loft"}},
		},
	})

	body := w.Body.String()
	assert.Contains(t, body, "/admin/logout")
	assert.Contains(t, body, `data-reorder-url="/admin/api/v1/projects/reorder"`)
	assert.Contains(t, body, "Loft")
}

func TestRender_UnknownPage(t *testing.T) {
	r := newRenderer(t)
	w := httptest.NewRecorder()
	r.Render(w, http.StatusOK, "missing", web.Page{})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStatic(t *testing.T) {
	srv := httptest.NewServer(web.Static("/static/"))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/static/js/slider.js")
	require.NoError(t, err)
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, string(body), "data-before-after")
	assert.Equal(t, "public, max-age=3600", res.Header.Get("Cache-Control"))
}
