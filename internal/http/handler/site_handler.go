package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fjordrenovering/website/internal/domain"
	"github.com/fjordrenovering/website/internal/service"
	"github.com/fjordrenovering/website/internal/web"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SiteHandler renders the public website
type SiteHandler struct {
	siteService        *service.SiteService
	projectService     *service.ProjectService
	catalogService     *service.CatalogService
	teamService        *service.TeamService
	testimonialService *service.TestimonialService
	messageService     *service.MessageService
	renderer           *web.Renderer
	logger             *zap.Logger
}

// NewSiteHandler creates a new website handler
func NewSiteHandler(
	siteService *service.SiteService,
	projectService *service.ProjectService,
	catalogService *service.CatalogService,
	teamService *service.TeamService,
	testimonialService *service.TestimonialService,
	messageService *service.MessageService,
	renderer *web.Renderer,
	logger *zap.Logger,
) *SiteHandler {
	return &SiteHandler{
		siteService:        siteService,
		projectService:     projectService,
		catalogService:     catalogService,
		teamService:        teamService,
		testimonialService: testimonialService,
		messageService:     messageService,
		renderer:           renderer,
		logger:             logger,
	}
}

// fail renders the 404 page for missing content and the error page otherwise
func (h *SiteHandler) fail(w http.ResponseWriter, r *http.Request, err error, what string) {
	if errors.Is(err, service.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.logger.Error("failed to load "+what, zap.String("path", r.URL.Path), zap.Error(err))
	h.renderer.Render(w, http.StatusInternalServerError, web.PageError, web.Page{Title: "Feil"})
}

// NotFound renders the 404 page
func (h *SiteHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, web.PageNotFound, web.Page{Title: "Fant ikke siden"})
}

// Home renders the landing page
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.siteService.Home(r.Context())
	if err != nil {
		h.fail(w, r, err, "home page")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageHome, web.Page{Data: home})
}

// Projects renders the portfolio, optionally filtered by ?category=
func (h *SiteHandler) Projects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	projects, err := h.projectService.ListPublished(r.Context(), category)
	if errors.Is(err, service.ErrInvalidCategory) {
		http.Redirect(w, r, "/projects", http.StatusSeeOther)
		return
	}
	if err != nil {
		h.fail(w, r, err, "projects")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageProjects, web.Page{
		Title:  "Prosjekter",
		Active: "projects",
		Data:   web.ProjectList{Projects: projects, Category: category},
	})
}

// Project renders one project with its gallery and before/after sliders
func (h *SiteHandler) Project(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectService.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err, "project")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageProject, web.Page{
		Title:       project.Title,
		Description: project.Summary,
		Active:      "projects",
		Data:        project,
	})
}

// Services renders the list of offered services
func (h *SiteHandler) Services(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogService.List(r.Context(), true)
	if err != nil {
		h.fail(w, r, err, "services")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageServices, web.Page{Title: "Tjenester", Active: "services", Data: services})
}

// Service renders one service
func (h *SiteHandler) Service(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalogService.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		h.fail(w, r, err, "service")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageService, web.Page{
		Title:       item.Name,
		Description: item.Summary,
		Active:      "services",
		Data:        item,
	})
}

// About renders the team page
func (h *SiteHandler) About(w http.ResponseWriter, r *http.Request) {
	members, err := h.teamService.List(r.Context(), true)
	if err != nil {
		h.fail(w, r, err, "team")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageAbout, web.Page{Title: "Om oss", Active: "about", Data: members})
}

// Testimonials renders all published testimonials
func (h *SiteHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.testimonialService.ListPublished(r.Context(), false, 0)
	if err != nil {
		h.fail(w, r, err, "testimonials")
		return
	}
	h.renderer.Render(w, http.StatusOK, web.PageTestimonials, web.Page{Title: "Kundeomtaler", Active: "testimonials", Data: testimonials})
}

// ContactPage renders the contact form, or the thank-you note after ?sent=1
func (h *SiteHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	form := web.ContactForm{
		Form: domain.ContactRequest{ServiceSlug: r.URL.Query().Get("service")},
		Sent: r.URL.Query().Get("sent") == "1",
	}
	h.renderContact(w, r, http.StatusOK, form)
}

// SubmitContact stores a contact form post and redirects to the thank-you note.
// Invalid input re-renders the form with field errors.
func (h *SiteHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)
	if err := r.ParseForm(); err != nil {
		h.renderContact(w, r, http.StatusBadRequest, web.ContactForm{Errors: map[string]string{"message": "Ugyldig skjema"}})
		return
	}
	req := domain.ContactRequest{
		Name:        strings.TrimSpace(r.PostFormValue("name")),
		Email:       strings.TrimSpace(r.PostFormValue("email")),
		Phone:       strings.TrimSpace(r.PostFormValue("phone")),
		Subject:     strings.TrimSpace(r.PostFormValue("subject")),
		Message:     strings.TrimSpace(r.PostFormValue("message")),
		ServiceSlug: strings.TrimSpace(r.PostFormValue("service")),
		Website:     r.PostFormValue("website"),
	}

	if err := validate.Struct(req); err != nil {
		h.renderContact(w, r, http.StatusUnprocessableEntity, web.ContactForm{Form: req, Errors: validationErrors(err)})
		return
	}

	if _, err := h.messageService.Submit(r.Context(), &req, service.ClientIP(r), r.UserAgent()); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			h.renderContact(w, r, http.StatusUnprocessableEntity, web.ContactForm{
				Form:   req,
				Errors: map[string]string{"message": domain.GetValidationMessage("required")},
			})
			return
		}
		h.fail(w, r, err, "contact submission")
		return
	}
	http.Redirect(w, r, "/contact?sent=1", http.StatusSeeOther)
}

// ContactRateLimited re-renders the contact form when the submission limit is reached
func (h *SiteHandler) ContactRateLimited(w http.ResponseWriter, r *http.Request) {
	form := web.ContactForm{Notice: "Du har sendt mange henvendelser på kort tid. Prøv igjen om litt."}
	if err := r.ParseForm(); err == nil {
		form.Form = domain.ContactRequest{
			Name:        strings.TrimSpace(r.PostFormValue("name")),
			Email:       strings.TrimSpace(r.PostFormValue("email")),
			Phone:       strings.TrimSpace(r.PostFormValue("phone")),
			Subject:     strings.TrimSpace(r.PostFormValue("subject")),
			Message:     strings.TrimSpace(r.PostFormValue("message")),
			ServiceSlug: strings.TrimSpace(r.PostFormValue("service")),
		}
	}
	h.renderContact(w, r, http.StatusTooManyRequests, form)
}

func (h *SiteHandler) renderContact(w http.ResponseWriter, r *http.Request, status int, form web.ContactForm) {
	services, err := h.catalogService.List(r.Context(), true)
	if err != nil {
		h.logger.Warn("failed to load services for contact form", zap.Error(err))
	}
	form.Services = services
	h.renderer.Render(w, status, web.PageContact, web.Page{Title: "Kontakt", Active: "contact", Data: form})
}
