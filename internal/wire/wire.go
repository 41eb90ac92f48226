package wire

import (
	"Dresscode/internal/api"
	"Dresscode/internal/api/config"
	"Dresscode/internal/api/handler"
	"Dresscode/internal/job"
	"Dresscode/internal/pkg/billing"
	"Dresscode/internal/pkg/cron"
	"Dresscode/internal/pkg/llm"
	"Dresscode/internal/pkg/minio"
	mongodoc "Dresscode/internal/pkg/mongo"
	"Dresscode/internal/pkg/push"
	"Dresscode/internal/pkg/redis"
	"Dresscode/internal/repository"
	"Dresscode/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	outfitRepo := repository.NewOutfitRepo(db)
	analysisRepo := mongodoc.NewStyleAnalysisRepo(mongoDB)

	storage := minio.NewStorage()
	styleModel := llm.NewStyleModel()
	locker := redis.NewDistLocker()
	cache := redis.NewStore()
	billingClient := billing.NewClient()
	pushClient := push.NewClient()

	userService := service.NewUserService(userRepo)
	outfitService := service.NewOutfitService(outfitRepo, storage, styleModel, locker, cache)
	analysisService := service.NewAnalysisService(userRepo, outfitRepo, analysisRepo, storage, styleModel, locker)
	progressService := service.NewProgressService(outfitRepo, cache)
	billingService := service.NewBillingService(userRepo, billingClient)

	handlers := &api.HandlersGroup{
		UserHandler:     handler.NewUserHandler(userService),
		OutfitHandler:   handler.NewOutfitHandler(outfitService, analysisService),
		ProgressHandler: handler.NewProgressHandler(progressService),
		BillingHandler:  handler.NewBillingHandler(billingService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewReminderJob(userRepo, pushClient),
		job.NewOutfitCleanupJob(),
	)

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
