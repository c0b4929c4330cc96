package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/fjordrenovering/website/internal/config"
)

// AdminPrefix is the path prefix the admin area is routed under
const AdminPrefix = "/admin"

// AdminHost maps requests on the admin hostname onto the /admin prefix, so
// admin.example.no/projects is served by /admin/projects. When EnforceAdminHost is
// set, /admin requests arriving on another host are redirected to the admin host.
// Must run before routing.
func AdminHost(cfg *config.SiteConfig) func(http.Handler) http.Handler {
	adminHost := strings.ToLower(strings.TrimSpace(cfg.AdminHost))
	return func(next http.Handler) http.Handler {
		if adminHost == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host := requestHost(r)
			if host == adminHost {
				if !isAdminPath(r.URL.Path) && !isSharedPath(r.URL.Path) {
					r.URL.Path = AdminPrefix + r.URL.Path
					if r.URL.RawPath != "" {
						r.URL.RawPath = AdminPrefix + r.URL.RawPath
					}
					if r.URL.Path == AdminPrefix+"/" {
						r.URL.Path = AdminPrefix
					}
				}
				next.ServeHTTP(w, r)
				return
			}

			if cfg.EnforceAdminHost && isAdminPath(r.URL.Path) {
				target := *r.URL
				target.Scheme = scheme(r)
				target.Host = adminHost
				target.Path = strings.TrimPrefix(r.URL.Path, AdminPrefix)
				target.RawPath = ""
				if target.Path == "" {
					target.Path = "/"
				}
				http.Redirect(w, r, target.String(), http.StatusPermanentRedirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isAdminPath(path string) bool {
	return path == AdminPrefix || strings.HasPrefix(path, AdminPrefix+"/")
}

// isSharedPath lists routes served identically on both hosts
func isSharedPath(path string) bool {
	for _, prefix := range []string{"/static/", "/media/", "/health", "/swagger/"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func requestHost(r *http.Request) string {
	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host)
}

func scheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
