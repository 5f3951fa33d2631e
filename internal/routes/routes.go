package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/idanaslund/final-project-backend/internal/audit"
	"github.com/idanaslund/final-project-backend/internal/db"
	"github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/domain/restaurant"
	"github.com/idanaslund/final-project-backend/internal/handlers"
	"github.com/idanaslund/final-project-backend/internal/infra/cache"
	infraRepo "github.com/idanaslund/final-project-backend/internal/infra/repository"
	"github.com/idanaslund/final-project-backend/internal/middleware"
	ucAccount "github.com/idanaslund/final-project-backend/internal/usecase/account"
	ucReview "github.com/idanaslund/final-project-backend/internal/usecase/review"
)

// Deps are the process-wide handles built by cmd/api. Redis and Images may be nil.
type Deps struct {
	DB         *gorm.DB
	Redis      *redis.Client
	CacheTTL   time.Duration
	Images     account.ImageStore
	Audit      *audit.Dispatcher
	PingBudget time.Duration
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.StoreGate(db.NewPinger(d.DB), d.PingBudget))

	// ======================================================
	// INFRA
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(d.DB)
	reviewRepo := infraRepo.NewReviewGormRepository(d.DB)

	var restaurantRepo restaurant.Repository = infraRepo.NewRestaurantGormRepository(d.DB)
	if d.Redis != nil {
		restaurantRepo = cache.NewRestaurantCache(restaurantRepo, d.Redis, d.CacheTTL)
	}

	auditLogger := audit.New(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	signupUC := ucAccount.NewSignup(userRepo, d.Audit)
	loginUC := ucAccount.NewLogin(userRepo)
	getProfileUC := ucAccount.NewGetProfile(userRepo)
	updateProfileUC := ucAccount.NewUpdateProfile(userRepo, d.Audit)
	uploadImageUC := ucAccount.NewUploadProfileImage(userRepo, d.Images, d.Audit)

	createReviewUC := ucReview.NewCreateReview(reviewRepo, restaurantRepo, d.Audit)
	listReviewsUC := ucReview.NewListReviews(reviewRepo, restaurantRepo)
	likeReviewUC := ucReview.NewLikeReview(reviewRepo, d.Audit)
	deleteReviewUC := ucReview.NewDeleteReview(reviewRepo, d.Audit)

	// ======================================================
	// HANDLERS
	// ======================================================
	indexHandler := handlers.NewIndexHandler(r)
	authHandler := handlers.NewAuthHandler(signupUC, loginUC)
	profileHandler := handlers.NewProfileHandler(getProfileUC, updateProfileUC, uploadImageUC)
	restaurantHandler := handlers.NewRestaurantHandler(restaurantRepo, listReviewsUC)
	reviewHandler := handlers.NewReviewHandler(createReviewUC, listReviewsUC, likeReviewUC, deleteReviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.GET("/", indexHandler.List)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.POST("/signup", authHandler.Signup)
	r.POST("/login", authHandler.Login)

	r.GET("/restaurants", restaurantHandler.List)
	r.GET("/restaurants/:id", restaurantHandler.GetByID)
	r.GET("/restaurants/name/:name", restaurantHandler.GetByName)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.Authenticate(userRepo))
	{
		secured.GET("/profile/:id", profileHandler.Get)
		secured.PATCH("/profile/:id", profileHandler.Patch)
		secured.POST("/profile/:id/image", profileHandler.UploadImage)

		secured.GET("/reviews", reviewHandler.List)
		secured.POST("/reviews", reviewHandler.Create)
		secured.POST("/reviews/:id/like", reviewHandler.Like)
		secured.DELETE("/reviews/:id", reviewHandler.Delete)

		secured.GET("/restaurants/:id/reviews", restaurantHandler.Reviews)

		secured.GET("/me/audit-logs", auditLogsHandler.List)
	}
}
