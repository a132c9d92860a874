package handlers

import (
	"net/http"
	"strconv"

	"jobcompass/internal/services"

	"github.com/gin-gonic/gin"
)

type CreateApplicationRequest struct {
	JobURL            string `json:"job_url"`
	JobTitle          string `json:"job_title"`
	Company           string `json:"company"`
	Location          string `json:"location"`
	DateOfApplication string `json:"date_of_application"`
	Status            string `json:"status"`
}

type UpdateApplicationRequest struct {
	JobURL            *string `json:"job_url"`
	JobTitle          *string `json:"job_title"`
	Company           *string `json:"company"`
	Location          *string `json:"location"`
	DateOfApplication *string `json:"date_of_application"`
	Status            *string `json:"status"`
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

// SetStatusByBodyRequest carries the application id in the body; old
// clients call PUT /api/jobapp/update-status this way.
type SetStatusByBodyRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func applicationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) ListApplications(c *gin.Context) {
	userID := currentUserID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize > 100 {
		pageSize = 100
	}

	opts := services.ListOptions{
		Search:    c.Query("search"),
		SortField: c.DefaultQuery("sort_field", "date_of_application"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}

	items, total, err := h.applications.List(userID, opts)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": total,
	})
}

func (h *Handler) CreateApplication(c *gin.Context) {
	userID := currentUserID(c)

	var req CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.Create(userID, services.CreateApplicationInput{
		JobURL:            req.JobURL,
		JobTitle:          req.JobTitle,
		Company:           req.Company,
		Location:          req.Location,
		DateOfApplication: req.DateOfApplication,
		Status:            req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *Handler) UpdateApplication(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := applicationID(c)
	if !ok {
		return
	}

	var req UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.Update(userID, id, services.UpdateApplicationInput{
		JobURL:            req.JobURL,
		JobTitle:          req.JobTitle,
		Company:           req.Company,
		Location:          req.Location,
		DateOfApplication: req.DateOfApplication,
		Status:            req.Status,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *Handler) UpdateApplicationStatus(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := applicationID(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.SetStatus(userID, id, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *Handler) UpdateApplicationStatusByBody(c *gin.Context) {
	userID := currentUserID(c)

	var req SetStatusByBodyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.applications.SetStatus(userID, req.ID, req.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *Handler) DeleteApplication(c *gin.Context) {
	userID := currentUserID(c)
	id, ok := applicationID(c)
	if !ok {
		return
	}

	if err := h.applications.Delete(userID, id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}
