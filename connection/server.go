package connection

import (
	"context"
	"log"
	"log/slog"

	"minesafety/controller/auth"
	"minesafety/controller/checklist"
	"minesafety/controller/user"
	"minesafety/scheduler"
	"minesafety/services"
	"minesafety/tracker"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func StartServer() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	DB, err := DBConnection(cfg.DBDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var store tracker.ChecklistStore
	switch cfg.ChecklistStore {
	case StoreMemory:
		slog.Warn("using in-memory checklist store, checklists are lost on restart")
		store = services.NewMemoryChecklistStore()
	default:
		FB, err := FBConnection(context.Background(), cfg.FirebaseCredentials, cfg.FirebaseProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize Firestore client: %v", err)
		}
		defer FB.Close()
		store = services.NewFirestoreChecklistStore(FB)
	}

	users := services.NewGormUserDirectory(DB)
	svc := tracker.NewService(users, store)

	if cfg.DigestCron != "" {
		digest, err := scheduler.StartScheduler(cfg.DigestCron, svc)
		if err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
		defer digest.Stop()
	}

	router := NewRouter(cfg, users, svc)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func NewRouter(cfg Config, users *services.GormUserDirectory, svc *tracker.Service) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	auth.AuthController(router, users, cfg.JWTSecret)
	checklist.ChecklistController(router, svc, cfg.JWTSecret)
	user.UserController(router, users, cfg.JWTSecret)

	return router
}
