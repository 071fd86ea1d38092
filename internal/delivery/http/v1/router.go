package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/RitikJ22/hirewise/config"
	"github.com/RitikJ22/hirewise/internal/delivery/http/middleware"
	"github.com/RitikJ22/hirewise/internal/delivery/http/response"
	"github.com/RitikJ22/hirewise/internal/domain"
)

type RouterDeps struct {
	ScreeningUC domain.ScreeningUsecase
	ShortlistUC domain.ShortlistUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewCandidateHandler(v1, deps.ScreeningUC, deps.Config)
	NewShortlistHandler(v1, deps.ShortlistUC)

	return r
}
