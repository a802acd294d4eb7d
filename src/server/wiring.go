package server

import (
	"github.com/khabaroff/thesis-management/src/config"
	"github.com/khabaroff/thesis-management/src/repositories/postgres"
	"github.com/khabaroff/thesis-management/src/services"
)

// Services bundles the application services built on one store
type Services struct {
	Tokens      *services.TokenService
	Admins      *services.AdminService
	Departments *services.DepartmentService
	Supervisors *services.SupervisorService
	Students    *services.StudentService
	Theses      *services.ThesisService
}

// NewServices wires PostgreSQL repositories into services
func NewServices(db postgres.DBTX, cfg *config.Config) *Services {
	theses := postgres.NewThesisRepository(db)
	tokens := services.NewTokenService(cfg.JWTSecret)

	return &Services{
		Tokens:      tokens,
		Admins:      services.NewAdminService(postgres.NewAdminRepository(db), services.NewPasswordHasher(cfg.BcryptCost), tokens),
		Departments: services.NewDepartmentService(postgres.NewDepartmentRepository(db)),
		Supervisors: services.NewSupervisorService(postgres.NewSupervisorRepository(db), theses),
		Students:    services.NewStudentService(postgres.NewStudentRepository(db), theses),
		Theses:      services.NewThesisService(theses),
	}
}
