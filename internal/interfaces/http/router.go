package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Gimnasio-api/internal/application/auth"
	"github.com/jhoicas/Gimnasio-api/internal/application/payments"
	"github.com/jhoicas/Gimnasio-api/internal/application/routine"
	"github.com/jhoicas/Gimnasio-api/internal/application/usecase"
	"github.com/jhoicas/Gimnasio-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	MemberUC  *usecase.MemberUseCase
	RenewUC   *payments.RenewUseCase
	HistoryUC *payments.HistoryUseCase
	ReceiptUC *payments.ReceiptPDFUseCase
	RoutineUC *routine.RoutineUseCase
	Avatars   *storage.AvatarStore
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Login (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/login", authHandler.Login)

	// Rutas de admin (Bearer Token + rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleAdmin))

	memberHandler := NewMemberHandler(deps.MemberUC, deps.Avatars)
	admin.Post("/members", memberHandler.Create)
	admin.Get("/members", memberHandler.List)
	admin.Get("/members/:id", memberHandler.GetByID)
	admin.Delete("/members/:id", memberHandler.Deactivate)

	paymentHandler := NewPaymentHandler(deps.RenewUC, deps.HistoryUC, deps.ReceiptUC)
	admin.Post("/payments", paymentHandler.Renew)
	admin.Get("/payments", paymentHandler.List)
	admin.Get("/payments/:id/receipt", paymentHandler.Receipt)

	// Rutas del propio miembro (Bearer Token + rol member)
	member := api.Group("/member", AuthMiddleware(deps.JWTSecret), RequireRole(auth.RoleMember))

	profileHandler := NewProfileHandler(deps.MemberUC, deps.Avatars)
	member.Get("/me", profileHandler.Me)
	member.Post("/profile", profileHandler.Update)

	routineHandler := NewRoutineHandler(deps.RoutineUC)
	member.Get("/routines-template", routineHandler.ListTemplates)
	member.Post("/routines-template", routineHandler.UpsertTemplate)
	member.Get("/workouts/week", routineHandler.Week)
}
