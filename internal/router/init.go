package router

import (
	"github.com/healthdiary/api/internal/application"
	"github.com/healthdiary/api/internal/container"
	pginfra "github.com/healthdiary/api/internal/infrastructure/postgres"
	handlers "github.com/healthdiary/api/internal/interface/http"
	"github.com/healthdiary/api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with
// the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	jwt := container.GetJWT()
	cache := container.GetRedis()

	users := pginfra.NewUserRepository(pool)
	symptoms := pginfra.NewSymptomRepository(pool)
	medications := pginfra.NewMedicationRepository(pool)

	authSvc := application.NewAuthService(users, jwt, logger)
	diarySvc := application.NewDiaryService(symptoms, medications, cache, logger)
	statsSvc := application.NewStatsService(symptoms, medications, cache, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewDiaryModule(
		handlers.NewSymptomHandler(diarySvc, logger),
		handlers.NewMedicationHandler(diarySvc, logger),
		handlers.NewStatsHandler(statsSvc, logger),
		jwt,
	))
	r.Add(modules.NewSystemModule(handlers.NewSystemHandler(pool, logger, container.GetConfig()), r.Engine))
}
