package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteHandler_Pages(t *testing.T) {
	f := setupFixture(t)
	project := testutil.CreateTestProject(t, f.db, "Nytt tak på Voss", 1)
	testutil.CreateTestService(t, f.db, "Baderom", "baderom", 1)

	tests := []struct {
		name     string
		handler  http.HandlerFunc
		target   string
		params   map[string]string
		status   int
		contains string
	}{
		{"home", f.site.Home, "/", nil, http.StatusOK, "Fjord Renovering AS"},
		{"projects", f.site.Projects, "/projects", nil, http.StatusOK, "Nytt tak på Voss"},
		{"project", f.site.Project, "/projects/" + project.Slug, map[string]string{"slug": project.Slug}, http.StatusOK, "Nytt tak på Voss"},
		{"unknown project", f.site.Project, "/projects/finnes-ikke", map[string]string{"slug": "finnes-ikke"}, http.StatusNotFound, "Siden finnes ikke"},
		{"services", f.site.Services, "/services", nil, http.StatusOK, "Baderom"},
		{"service", f.site.Service, "/services/baderom", map[string]string{"slug": "baderom"}, http.StatusOK, "Baderom"},
		{"about", f.site.About, "/about", nil, http.StatusOK, "Fjord Renovering AS"},
		{"testimonials", f.site.Testimonials, "/testimonials", nil, http.StatusOK, "Fjord Renovering AS"},
		{"contact", f.site.ContactPage, "/contact?service=baderom", nil, http.StatusOK, `value="baderom" selected`},
		{"not found", f.site.NotFound, "/nowhere", nil, http.StatusNotFound, "Siden finnes ikke"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withParams(httptest.NewRequest(http.MethodGet, tt.target, nil), tt.params)
			rr := serve(tt.handler, req)
			require.Equal(t, tt.status, rr.Code)
			assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Contains(t, rr.Body.String(), tt.contains)
		})
	}
}

func TestSiteHandler_UnpublishedProjectIsHidden(t *testing.T) {
	f := setupFixture(t)
	project := testutil.CreateTestProject(t, f.db, "Utkast", 1)
	require.NoError(t, f.db.Model(project).Update("published", false).Error)

	rr := serve(f.site.Project, withParams(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"slug": project.Slug}))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSiteHandler_InvalidCategoryRedirects(t *testing.T) {
	f := setupFixture(t)
	rr := serve(f.site.Projects, httptest.NewRequest(http.MethodGet, "/projects?category=industry", nil))
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/projects", rr.Header().Get("Location"))
}

func TestSiteHandler_SubmitContact(t *testing.T) {
	f := setupFixture(t)

	t.Run("valid post redirects", func(t *testing.T) {
		rr := serve(f.site.SubmitContact, postForm("/contact", url.Values{
			"name":    {"Per Hansen"},
			"email":   {"per@example.com"},
			"message": {"Kan dere se på taket vårt i neste uke?"},
			"service": {"tak"},
		}))
		require.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "/contact?sent=1", rr.Header().Get("Location"))

		var stored domain.Message
		require.NoError(t, f.db.Where("email = ?", "per@example.com").First(&stored).Error)
		assert.Equal(t, "tak", stored.ServiceSlug)
	})

	t.Run("invalid post re-renders with errors", func(t *testing.T) {
		rr := serve(f.site.SubmitContact, postForm("/contact", url.Values{
			"name":    {"Per Hansen"},
			"email":   {"ikke-epost"},
			"message": {"kort"},
		}))
		require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		body := rr.Body.String()
		assert.Contains(t, body, "field-error")
		assert.Contains(t, body, `value="Per Hansen"`)
	})

	t.Run("thank you note", func(t *testing.T) {
		rr := serve(f.site.ContactPage, httptest.NewRequest(http.MethodGet, "/contact?sent=1", nil))
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Takk for henvendelsen")
	})
}
