package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leadcore/cms-backend/internal/content"
	"github.com/leadcore/cms-backend/internal/content/repository"
	"github.com/leadcore/cms-backend/internal/content/service"
)

// CMSHandler exposes the domain services over HTTP. Public routes serve only
// published/visible content; the admin routes (mounted behind auth) expose
// the full CRUD surface.
type CMSHandler struct {
	blogs       *service.BlogService
	caseStudies *service.CaseStudyService
	pricing     *service.PricingService
	team        *service.TeamService
	contact     *service.ContactMethodService
}

func New(store repository.Store) *CMSHandler {
	return &CMSHandler{
		blogs:       service.NewBlogService(store),
		caseStudies: service.NewCaseStudyService(store),
		pricing:     service.NewPricingService(store),
		team:        service.NewTeamService(store),
		contact:     service.NewContactMethodService(store),
	}
}

func writeError(c *gin.Context, err error) {
	var verr *content.ValidationError
	var uerr *content.UniquenessError
	var qerr *content.QueryConfigError
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error()})
	case errors.As(err, &uerr):
		c.JSON(http.StatusConflict, gin.H{"error": uerr.Error()})
	case errors.As(err, &qerr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "backend index missing"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func bindFields(c *gin.Context) (content.Fields, bool) {
	var f content.Fields
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return f, true
}

// list responds with the result of a typed listing call.
func list[T any](c *gin.Context, get func() ([]T, error)) {
	items, err := get()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// lookup responds with a single document or 404 when absent.
func lookup[T any](c *gin.Context, get func() (*T, error)) {
	item, err := get()
	if err != nil {
		writeError(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

// RegisterPublic mounts the routes the marketing site reads from.
func (h *CMSHandler) RegisterPublic(r gin.IRouter) {
	r.GET("/blogs", func(c *gin.Context) {
		list(c, func() ([]content.Blog, error) { return h.blogs.GetPublished(c.Request.Context()) })
	})
	r.GET("/blogs/:slug", func(c *gin.Context) {
		lookup(c, func() (*content.Blog, error) { return h.blogs.GetBySlug(c.Request.Context(), c.Param("slug")) })
	})
	r.GET("/case-studies", func(c *gin.Context) {
		list(c, func() ([]content.CaseStudy, error) { return h.caseStudies.GetPublished(c.Request.Context()) })
	})
	r.GET("/case-studies/:slug", func(c *gin.Context) {
		lookup(c, func() (*content.CaseStudy, error) { return h.caseStudies.GetBySlug(c.Request.Context(), c.Param("slug")) })
	})
	r.GET("/pricing-plans", func(c *gin.Context) {
		list(c, func() ([]content.PricingPlan, error) { return h.pricing.GetVisible(c.Request.Context()) })
	})
	r.GET("/team-members", func(c *gin.Context) {
		list(c, func() ([]content.TeamMember, error) { return h.team.GetVisible(c.Request.Context()) })
	})
	r.GET("/contact-methods", func(c *gin.Context) {
		list(c, func() ([]content.ContactMethod, error) { return h.contact.GetVisible(c.Request.Context()) })
	})
}

// RegisterAdmin mounts the full CRUD surface. The caller is expected to have
// wrapped the group with auth middleware.
func (h *CMSHandler) RegisterAdmin(r gin.IRouter) {
	h.registerBlogAdmin(r)
	h.registerCaseStudyAdmin(r)
	h.registerPricingAdmin(r)
	h.registerTeamAdmin(r)
	h.registerContactAdmin(r)
}

func created(c *gin.Context, id string, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func updated(c *gin.Context, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func deleted(c *gin.Context, err error) {
	if err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CMSHandler) registerBlogAdmin(r gin.IRouter) {
	r.GET("/blogs", func(c *gin.Context) {
		list(c, func() ([]content.Blog, error) { return h.blogs.GetAll(c.Request.Context()) })
	})
	r.GET("/blogs/:id", func(c *gin.Context) {
		lookup(c, func() (*content.Blog, error) { return h.blogs.GetByID(c.Request.Context(), c.Param("id")) })
	})
	r.POST("/blogs", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		id, err := h.blogs.Create(c.Request.Context(), f)
		created(c, id, err)
	})
	r.PATCH("/blogs/:id", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		updated(c, h.blogs.Update(c.Request.Context(), c.Param("id"), f))
	})
	r.DELETE("/blogs/:id", func(c *gin.Context) {
		deleted(c, h.blogs.Delete(c.Request.Context(), c.Param("id")))
	})
	r.POST("/blogs/:id/publish", func(c *gin.Context) {
		updated(c, h.blogs.Publish(c.Request.Context(), c.Param("id")))
	})
	r.POST("/blogs/:id/unpublish", func(c *gin.Context) {
		updated(c, h.blogs.Unpublish(c.Request.Context(), c.Param("id")))
	})
}

func (h *CMSHandler) registerCaseStudyAdmin(r gin.IRouter) {
	r.GET("/case-studies", func(c *gin.Context) {
		list(c, func() ([]content.CaseStudy, error) { return h.caseStudies.GetAll(c.Request.Context()) })
	})
	r.GET("/case-studies/:id", func(c *gin.Context) {
		lookup(c, func() (*content.CaseStudy, error) { return h.caseStudies.GetByID(c.Request.Context(), c.Param("id")) })
	})
	r.POST("/case-studies", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		id, err := h.caseStudies.Create(c.Request.Context(), f)
		created(c, id, err)
	})
	r.PATCH("/case-studies/:id", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		updated(c, h.caseStudies.Update(c.Request.Context(), c.Param("id"), f))
	})
	r.DELETE("/case-studies/:id", func(c *gin.Context) {
		deleted(c, h.caseStudies.Delete(c.Request.Context(), c.Param("id")))
	})
	r.POST("/case-studies/:id/publish", func(c *gin.Context) {
		updated(c, h.caseStudies.Publish(c.Request.Context(), c.Param("id")))
	})
	r.POST("/case-studies/:id/unpublish", func(c *gin.Context) {
		updated(c, h.caseStudies.Unpublish(c.Request.Context(), c.Param("id")))
	})
}

func (h *CMSHandler) registerPricingAdmin(r gin.IRouter) {
	r.GET("/pricing-plans", func(c *gin.Context) {
		list(c, func() ([]content.PricingPlan, error) { return h.pricing.GetAll(c.Request.Context()) })
	})
	r.GET("/pricing-plans/:id", func(c *gin.Context) {
		lookup(c, func() (*content.PricingPlan, error) { return h.pricing.GetByID(c.Request.Context(), c.Param("id")) })
	})
	r.POST("/pricing-plans", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		id, err := h.pricing.Create(c.Request.Context(), f)
		created(c, id, err)
	})
	r.PATCH("/pricing-plans/:id", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		updated(c, h.pricing.Update(c.Request.Context(), c.Param("id"), f))
	})
	r.DELETE("/pricing-plans/:id", func(c *gin.Context) {
		deleted(c, h.pricing.Delete(c.Request.Context(), c.Param("id")))
	})
}

func (h *CMSHandler) registerTeamAdmin(r gin.IRouter) {
	r.GET("/team-members", func(c *gin.Context) {
		list(c, func() ([]content.TeamMember, error) { return h.team.GetAll(c.Request.Context()) })
	})
	r.GET("/team-members/:id", func(c *gin.Context) {
		lookup(c, func() (*content.TeamMember, error) { return h.team.GetByID(c.Request.Context(), c.Param("id")) })
	})
	r.POST("/team-members", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		id, err := h.team.Create(c.Request.Context(), f)
		created(c, id, err)
	})
	r.PATCH("/team-members/:id", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		updated(c, h.team.Update(c.Request.Context(), c.Param("id"), f))
	})
	r.DELETE("/team-members/:id", func(c *gin.Context) {
		deleted(c, h.team.Delete(c.Request.Context(), c.Param("id")))
	})
}

func (h *CMSHandler) registerContactAdmin(r gin.IRouter) {
	r.GET("/contact-methods", func(c *gin.Context) {
		list(c, func() ([]content.ContactMethod, error) { return h.contact.GetAll(c.Request.Context()) })
	})
	r.GET("/contact-methods/:id", func(c *gin.Context) {
		lookup(c, func() (*content.ContactMethod, error) { return h.contact.GetByID(c.Request.Context(), c.Param("id")) })
	})
	r.POST("/contact-methods", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		id, err := h.contact.Create(c.Request.Context(), f)
		created(c, id, err)
	})
	r.PATCH("/contact-methods/:id", func(c *gin.Context) {
		f, ok := bindFields(c)
		if !ok {
			return
		}
		updated(c, h.contact.Update(c.Request.Context(), c.Param("id"), f))
	})
	r.DELETE("/contact-methods/:id", func(c *gin.Context) {
		deleted(c, h.contact.Delete(c.Request.Context(), c.Param("id")))
	})
}
