package web

import "github.com/fjordrenovering/website/internal/domain"

// Page template names
const (
	PageHome           = "home"
	PageProjects       = "projects"
	PageProject        = "project"
	PageServices       = "services"
	PageService        = "service"
	PageAbout          = "about"
	PageTestimonials   = "testimonials"
	PageContact        = "contact"
	PageNotFound       = "notfound"
	PageError          = "error"
	PageAdminLogin     = "admin/login"
	PageAdminDashboard = "admin/dashboard"
)

// ProjectList backs the portfolio page
type ProjectList struct {
	Projects []domain.ProjectDTO
	Category string
}

// ContactForm backs the contact page, including a failed submission
type ContactForm struct {
	Form     domain.ContactRequest
	Errors   map[string]string
	Sent     bool
	Notice   string
	Services []domain.ServiceDTO
}

// LoginForm backs the admin login page
type LoginForm struct {
	Email string
	Next  string
	Error string
}

// AdminDashboard backs the admin landing page
type AdminDashboard struct {
	Stats    *domain.DashboardDTO
	Projects []domain.ProjectDTO
}
