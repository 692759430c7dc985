package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

// NewPortfolioHandler registers the read-only catalog routes.
func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{
		portfolioUC: portfolioUC,
	}

	public.GET("/projects", handler.ListProjects)
	public.GET("/projects/:id", handler.GetProject)
	public.GET("/profile", handler.GetProfile)
}

// ListProjects godoc
// @Summary      List Projects
// @Description  Returns the project gallery, optionally filtered by category.
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {object}  response.Response
// @Router       /projects [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	projects, err := h.portfolioUC.ListProjects(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// GetProject godoc
// @Summary      Get Project
// @Description  Returns a single project by id.
// @Tags         portfolio
// @Produce      json
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /projects/{id} [get]
func (h *PortfolioHandler) GetProject(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.Error(apperror.NotFound("Project not found"))
		return
	}

	project, err := h.portfolioUC.GetProject(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}

// GetProfile godoc
// @Summary      Get Profile
// @Description  Returns the about/experience snapshot rendered by the site shell.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /profile [get]
func (h *PortfolioHandler) GetProfile(c *gin.Context) {
	profile, err := h.portfolioUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}
