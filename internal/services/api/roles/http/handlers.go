// Package http provides http transport for the role keyword directory
package http

import (
	stdhttp "net/http"
	"net/url"

	"interviewcoach/internal/modkit/httpkit"
	svc "interviewcoach/internal/services/api/roles/service"
)

// Register mounts role endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/", h.list)
	httpkit.Get(r, "/{role}", h.get)
	httpkit.Post(r, "/reload", h.reload)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /roles Roles rolesList
// @Summary List job roles
// @Tags Roles
// @Produce json
// @Success 200 {object} domain.RoleList "ok"
// @Router /roles [get]
func (h *handlers) list(r *stdhttp.Request) (any, error) {
	return h.svc.List(r.Context())
}

// swagger:route GET /roles/{role} Roles rolesGet
// @Summary Keywords for one job role
// @Tags Roles
// @Produce json
// @Param role path string true "Job role" example(Software Engineer)
// @Success 200 {object} domain.RoleKeywords "ok"
// @Failure 404 {object} ErrorResponse "unknown role"
// @Router /roles/{role} [get]
func (h *handlers) get(r *stdhttp.Request) (any, error) {
	role := httpkit.URLParam(r, "role")
	if u, err := url.PathUnescape(role); err == nil {
		role = u
	}
	return h.svc.Get(r.Context(), role)
}

// swagger:route POST /roles/reload Roles rolesReload
// @Summary Rebuild the role directory from its source
// @Tags Roles
// @Produce json
// @Success 200 {object} domain.ReloadResult "ok"
// @Router /roles/reload [post]
func (h *handlers) reload(r *stdhttp.Request) (any, error) {
	return h.svc.Reload(r.Context())
}
