package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RitikJ22/hirewise/config"
	"github.com/RitikJ22/hirewise/internal/delivery/http/response"
	"github.com/RitikJ22/hirewise/internal/domain"
)

type CandidateHandler struct {
	screeningUC domain.ScreeningUsecase
	cfg         *config.Config
}

func NewCandidateHandler(r *gin.RouterGroup, screeningUC domain.ScreeningUsecase, cfg *config.Config) {
	handler := &CandidateHandler{screeningUC: screeningUC, cfg: cfg}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
	}
}

// List godoc
// @Summary      List candidates
// @Description  Filter, score, sort and paginate the candidate pool
// @Tags         candidates
// @Produce      json
// @Param        skills            query  string  false  "Comma-separated required skills (OR semantics)"
// @Param        workAvailability  query  string  false  "Comma-separated availability tags"
// @Param        minSalary         query  int     false  "Salary gate lower bound"  default(45000)
// @Param        maxSalary         query  int     false  "Salary gate upper bound"  default(150000)
// @Param        location          query  string  false  "Location substring"
// @Param        roleName          query  string  false  "Role name substring (any experience)"
// @Param        company           query  string  false  "Company substring (any experience)"
// @Param        educationLevel    query  string  false  "Exact education level, or 'all'"
// @Param        degreeSubject     query  string  false  "Degree subject substring"
// @Param        sortBy            query  string  false  "matchScore|date|salary|name|location|education|experience|topSchools"  default(matchScore)
// @Param        page              query  int     false  "Page number (1-indexed)"  default(1)
// @Param        limit             query  int     false  "Page size"  default(20)
// @Success      200  {object}  domain.CandidateListing
// @Failure      500  {object}  response.ErrorBody
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	query := domain.ListQuery{
		Filters: domain.FilterCriteria{
			Skills:           c.Query("skills"),
			WorkAvailability: splitCSV(c.Query("workAvailability")),
			MinSalary:        intQuery(c, "minSalary", h.cfg.DefaultMinSalary),
			MaxSalary:        intQuery(c, "maxSalary", h.cfg.DefaultMaxSalary),
			Location:         c.Query("location"),
			RoleName:         c.Query("roleName"),
			Company:          c.Query("company"),
			EducationLevel:   c.DefaultQuery("educationLevel", domain.EducationLevelAll),
			DegreeSubject:    c.Query("degreeSubject"),
		},
		SortBy: domain.SortKey(c.DefaultQuery("sortBy", string(domain.SortByMatchScore))),
		Page:   atLeastOne(intQuery(c, "page", 1), 1),
		Limit:  atLeastOne(intQuery(c, "limit", 20), 20),
	}

	listing, err := h.screeningUC.ListCandidates(c.Request.Context(), query)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, listing)
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intQuery(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return value
}

func atLeastOne(value, fallback int) int {
	if value < 1 {
		return fallback
	}
	return value
}
