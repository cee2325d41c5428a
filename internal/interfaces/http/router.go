package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/transfers"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AssetUC    *assets.UseCase
	TransferUC *transfers.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todo el API es protegido: el registro y
// la baja de activos exigen admin; aprobar/rechazar/completar exigen rol aprobador.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Assets
	assetGroup := api.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assetGroup.Post("/", RequireRole(RoleAdmin), assetHandler.Create)
	assetGroup.Get("/", assetHandler.List)
	assetGroup.Get("/:id", assetHandler.GetByID)
	assetGroup.Post("/:id/assign", assetHandler.Assign)
	assetGroup.Post("/:id/unassign", assetHandler.Unassign)
	assetGroup.Post("/:id/status", assetHandler.MarkStatus)
	assetGroup.Patch("/:id/value", RequireRole(RoleAdmin, RoleSupervisor), assetHandler.UpdateValue)
	assetGroup.Delete("/:id", RequireRole(RoleAdmin), assetHandler.Decommission)

	// Transfers
	transferGroup := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC)
	transferGroup.Post("/", transferHandler.Request)
	transferGroup.Get("/", transferHandler.List)
	transferGroup.Get("/:id", transferHandler.GetByID)
	transferGroup.Post("/:id/approve", RequireRole(RoleAdmin, RoleSupervisor), transferHandler.Approve)
	transferGroup.Post("/:id/reject", RequireRole(RoleAdmin, RoleSupervisor), transferHandler.Reject)
	transferGroup.Post("/:id/accept", transferHandler.Accept)
	transferGroup.Post("/:id/complete", RequireRole(RoleAdmin, RoleSupervisor), transferHandler.Complete)
	transferGroup.Post("/:id/cancel", transferHandler.Cancel)
}
