package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RitikJ22/hirewise/internal/delivery/http/response"
	"github.com/RitikJ22/hirewise/internal/domain"
	"github.com/RitikJ22/hirewise/pkg/apperror"
)

type ShortlistHandler struct {
	shortlistUC domain.ShortlistUsecase
}

func NewShortlistHandler(r *gin.RouterGroup, shortlistUC domain.ShortlistUsecase) {
	handler := &ShortlistHandler{shortlistUC: shortlistUC}

	shortlist := r.Group("/shortlist")
	{
		shortlist.GET("", handler.List)
		shortlist.POST("", handler.Add)
		shortlist.DELETE("", handler.Clear)
		shortlist.DELETE("/:email", handler.Remove)
		shortlist.GET("/analytics", handler.Analytics)
		shortlist.GET("/report", handler.Report)
		shortlist.POST("/share", handler.Share)
	}
}

// List godoc
// @Summary      Get the shortlist
// @Tags         shortlist
// @Produce      json
// @Success      200  {object}  domain.ShortlistView
// @Router       /shortlist [get]
func (h *ShortlistHandler) List(c *gin.Context) {
	view, err := h.shortlistUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Add godoc
// @Summary      Shortlist a candidate
// @Description  Add a candidate to the shortlist (max capacity 5, keyed by email)
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.DerivedCandidate  true  "Candidate to shortlist"
// @Success      201        {object}  domain.ShortlistView
// @Failure      400        {object}  response.ErrorBody
// @Failure      409        {object}  response.ErrorBody
// @Router       /shortlist [post]
func (h *ShortlistHandler) Add(c *gin.Context) {
	var candidate domain.DerivedCandidate
	if err := c.ShouldBindJSON(&candidate); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	view, err := h.shortlistUC.Add(c.Request.Context(), &candidate)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, view)
}

// Remove godoc
// @Summary      Remove a shortlisted candidate
// @Tags         shortlist
// @Produce      json
// @Param        email  path      string  true  "Candidate email"
// @Success      200    {object}  domain.ShortlistView
// @Failure      404    {object}  response.ErrorBody
// @Router       /shortlist/{email} [delete]
func (h *ShortlistHandler) Remove(c *gin.Context) {
	view, err := h.shortlistUC.Remove(c.Request.Context(), c.Param("email"))
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, view)
}

// Clear godoc
// @Summary      Clear the shortlist
// @Tags         shortlist
// @Success      204  "cleared"
// @Router       /shortlist [delete]
func (h *ShortlistHandler) Clear(c *gin.Context) {
	if err := h.shortlistUC.Clear(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Analytics godoc
// @Summary      Team analytics over the shortlist
// @Tags         shortlist
// @Produce      json
// @Success      200  {object}  domain.TeamAnalytics
// @Router       /shortlist/analytics [get]
func (h *ShortlistHandler) Analytics(c *gin.Context) {
	analytics, err := h.shortlistUC.Analytics(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, analytics)
}

// Report godoc
// @Summary      Download the hiring report
// @Description  Plain-text team report served as a file download
// @Tags         shortlist
// @Produce      plain
// @Success      200  {string}  string
// @Failure      409  {object}  response.ErrorBody
// @Router       /shortlist/report [get]
func (h *ShortlistHandler) Report(c *gin.Context) {
	report, err := h.shortlistUC.Report(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	filename := fmt.Sprintf("team-report-%d-candidates-%s.txt", report.Count, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(report.Text))
}

// Share godoc
// @Summary      Share the hiring report by email
// @Description  Returns a mailto URL with the report prefilled as the body
// @Tags         shortlist
// @Accept       json
// @Produce      json
// @Param        request  body      domain.ShareRequest  true  "Recipient"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  response.ErrorBody
// @Failure      409      {object}  response.ErrorBody
// @Router       /shortlist/share [post]
func (h *ShortlistHandler) Share(c *gin.Context) {
	var req domain.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	mailtoURL, err := h.shortlistUC.ShareLink(c.Request.Context(), req.Email)
	if err != nil {
		c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"mailtoUrl": mailtoURL})
}
