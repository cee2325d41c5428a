package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Activos-api/internal/application/assets"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/repository"
)

// AssetHandler maneja las peticiones HTTP del registro de activos (protegido).
type AssetHandler struct {
	uc *assets.UseCase
}

// NewAssetHandler construye el handler.
func NewAssetHandler(uc *assets.UseCase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un activo
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssetRequest  true  "name, category, valores de compra y actual"
// @Success      201   {object}  dto.AssetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.uc.Register(c.Context(), assets.RegisterInput{
		Name:          in.Name,
		Category:      in.Category,
		Manufacturer:  in.Manufacturer,
		Model:         in.Model,
		SerialNumber:  in.SerialNumber,
		Condition:     in.Condition,
		PurchaseValue: in.PurchaseValue,
		CurrentValue:  in.CurrentValue,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewAssetResponse(asset))
}

// List godoc
// @Summary      Listar activos
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        status    query  string  false  "Filtrar por estado"
// @Param        category  query  string  false  "Filtrar por categoría"
// @Success      200  {array}   dto.AssetResponse
// @Router       /api/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	filter := repository.AssetFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
	}
	list, err := h.uc.List(c.Context(), filter, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"total":  len(list),
		"assets": dto.NewAssetResponseList(list),
	})
}

// GetByID godoc
// @Summary      Detalle de un activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Asset ID"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [get]
func (h *AssetHandler) GetByID(c *fiber.Ctx) error {
	asset, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAssetResponse(asset))
}

// Assign godoc
// @Summary      Asignar un activo a un empleado
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "Asset ID"
// @Param        body  body  dto.AssignAssetRequest  true  "employee_id"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/assign [post]
func (h *AssetHandler) Assign(c *fiber.Ctx) error {
	var in dto.AssignAssetRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.uc.Assign(c.Context(), c.Params("id"), in.EmployeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAssetResponse(asset))
}

// Unassign godoc
// @Summary      Quitar la asignación de un activo
// @Tags         assets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "Asset ID"
// @Success      200  {object}  dto.AssetResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/unassign [post]
func (h *AssetHandler) Unassign(c *fiber.Ctx) error {
	asset, err := h.uc.Unassign(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAssetResponse(asset))
}

// MarkStatus godoc
// @Summary      Mover un activo entre estados operativos simples
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "Asset ID"
// @Param        body  body  dto.MarkAssetStatusRequest  true  "status: MAINTENANCE | LOST | DISPOSED | IN_STOCK"
// @Success      200  {object}  dto.AssetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/status [post]
func (h *AssetHandler) MarkStatus(c *fiber.Ctx) error {
	var in dto.MarkAssetStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.uc.MarkStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAssetResponse(asset))
}

// UpdateValue godoc
// @Summary      Actualizar el valor actual (depreciado) de un activo
// @Description  Los traslados ya solicitados conservan su fotografía de valores.
// @Tags         assets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "Asset ID"
// @Param        body  body  dto.UpdateAssetValueRequest  true  "current_value"
// @Success      200  {object}  dto.AssetResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id}/value [patch]
func (h *AssetHandler) UpdateValue(c *fiber.Ctx) error {
	var in dto.UpdateAssetValueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asset, err := h.uc.UpdateValue(c.Context(), c.Params("id"), in.CurrentValue)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewAssetResponse(asset))
}

// Decommission godoc
// @Summary      Dar de baja un activo (soft delete)
// @Tags         assets
// @Security     Bearer
// @Param        id  path  string  true  "Asset ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/assets/{id} [delete]
func (h *AssetHandler) Decommission(c *fiber.Ctx) error {
	if err := h.uc.Decommission(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
