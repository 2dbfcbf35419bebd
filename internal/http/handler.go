package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"desguace-service/internal/catalog"
	"desguace-service/internal/db"
	"desguace-service/internal/forms"
	"desguace-service/internal/model"
	"desguace-service/internal/seed"
	"desguace-service/internal/service"
)

type Handler struct {
	vehicleService   *service.VehicleService
	partService      *service.PartService
	inventoryService *service.InventoryService
	seeder           *seed.Seeder
	store            *db.Store
	log              zerolog.Logger
}

func NewHandler(
	vehicleService *service.VehicleService,
	partService *service.PartService,
	inventoryService *service.InventoryService,
	seeder *seed.Seeder,
	store *db.Store,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		vehicleService:   vehicleService,
		partService:      partService,
		inventoryService: inventoryService,
		seeder:           seeder,
		store:            store,
		log:              log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")
	api.Use(authMiddleware)

	vehicles := api.Group("/vehicles")
	{
		vehicles.GET("", h.listVehicles)
		vehicles.POST("", h.createVehicle)
		vehicles.GET("/search", h.searchVehicles)
		vehicles.GET("/exists", h.vehiclePlateExists)
		vehicles.GET("/status/:status", h.listVehiclesByStatus)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deleteVehicle)
		vehicles.GET("/:id/summary", h.getVehicleSummary)
		vehicles.GET("/:id/parts", h.listVehicleParts)
		vehicles.POST("/:id/extract", h.extractPart)
	}

	parts := api.Group("/parts")
	{
		parts.GET("", h.listParts)
		parts.POST("", h.createPart)
		parts.GET("/search", h.searchParts)
		parts.GET("/exists", h.partCodeExists)
		parts.GET("/low-stock", h.listLowStockParts)
		parts.GET("/category/:category", h.listPartsByCategory)
		parts.GET("/:id", h.getPart)
		parts.PUT("/:id", h.updatePart)
		parts.DELETE("/:id", h.deletePart)
		parts.GET("/:id/vehicles", h.listPartVehicles)
	}

	inventory := api.Group("/inventory")
	{
		inventory.GET("", h.listAssignments)
		inventory.POST("", h.createAssignment)
		inventory.PUT("/:vehicle_id/:part_id", h.updateAssignment)
		inventory.DELETE("/:id", h.deleteAssignment)
	}

	stats := api.Group("/stats")
	{
		stats.GET("/vehicles-by-make", h.vehiclesByMake)
		stats.GET("/parts-by-category", h.partsByCategory)
		stats.GET("/top-mileage", h.topMileage)
		stats.GET("/total-extracted", h.totalExtracted)
	}

	reference := api.Group("/catalog")
	{
		reference.GET("/makes", h.listMakes)
		reference.GET("/makes/:make/models", h.listModels)
		reference.GET("/locations/vehicles", h.listVehicleLocations)
		reference.GET("/locations/parts", h.listPartLocations)
	}

	// Development helpers; destructive, keep behind auth.
	dev := api.Group("/dev")
	{
		dev.POST("/seed", h.seedDatabase)
		dev.POST("/reset", h.resetDatabase)
	}
}

// Vehicle handlers

func (h *Handler) createVehicle(c *gin.Context) {
	var form forms.VehicleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := form.ToVehicle()
	if err != nil {
		h.handleError(c, err)
		return
	}

	id, err := h.vehicleService.Create(c.Request.Context(), vehicle)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{"id": id}))
}

func (h *Handler) listVehicles(c *gin.Context) {
	input := service.ListVehiclesInput{
		Page:       queryInt(c, "page", 1),
		PageSize:   queryInt(c, "page_size", service.DefaultPageSize),
		SearchTerm: strings.TrimSpace(c.Query("search")),
	}

	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, ok := model.ParseVehicleStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, errorResponse("unknown status"))
			return
		}
		input.Status = &status
	}

	page, err := h.vehicleService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(page))
}

func (h *Handler) getVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if vehicle == nil {
		c.JSON(http.StatusNotFound, errorResponse("vehicle not found"))
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicle))
}

func (h *Handler) getVehicleSummary(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	summary, err := h.vehicleService.GetWithPartCount(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, errorResponse("vehicle not found"))
		return
	}

	c.JSON(http.StatusOK, successResponse(summary))
}

func (h *Handler) updateVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var form forms.VehicleForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	vehicle, err := form.ToVehicle()
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.vehicleService.Update(c.Request.Context(), id, vehicle); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "vehicle updated"}))
}

func (h *Handler) deleteVehicle(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.vehicleService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) searchVehicles(c *gin.Context) {
	vehicles, err := h.vehicleService.Search(c.Request.Context(), strings.TrimSpace(c.Query("term")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) listVehiclesByStatus(c *gin.Context) {
	status, ok := model.ParseVehicleStatus(c.Param("status"))
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse("unknown status"))
		return
	}

	vehicles, err := h.vehicleService.GetByStatus(c.Request.Context(), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) vehiclePlateExists(c *gin.Context) {
	plate := strings.ToUpper(strings.TrimSpace(c.Query("plate")))
	if plate == "" {
		c.JSON(http.StatusBadRequest, errorResponse("plate is required"))
		return
	}

	exists, err := h.vehicleService.ExistsPlate(c.Request.Context(), plate, int64(queryInt(c, "exclude_id", 0)))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"exists": exists}))
}

// extractPart creates a part and assigns it to the vehicle atomically.
func (h *Handler) extractPart(c *gin.Context) {
	vehicleID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req struct {
		Part       forms.PartForm       `json:"part"`
		Assignment forms.AssignmentForm `json:"assignment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	part, err := req.Part.ToPart()
	if err != nil {
		h.handleError(c, err)
		return
	}

	// The vehicle id comes from the route; the part id is assigned inside
	// the extraction transaction, so any positive placeholder works here.
	req.Assignment.VehicleID = strconv.FormatInt(vehicleID, 10)
	req.Assignment.PartID = "1"
	assignment, err := req.Assignment.ToAssignment()
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.inventoryService.ExtractPart(c.Request.Context(), vehicleID, part, assignment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(result))
}

// Part handlers

func (h *Handler) createPart(c *gin.Context) {
	var form forms.PartForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	part, err := form.ToPart()
	if err != nil {
		h.handleError(c, err)
		return
	}

	id, err := h.partService.Create(c.Request.Context(), part)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{"id": id}))
}

func (h *Handler) listParts(c *gin.Context) {
	input := service.ListPartsInput{
		Page:       queryInt(c, "page", 1),
		PageSize:   queryInt(c, "page_size", service.DefaultPageSize),
		SearchTerm: strings.TrimSpace(c.Query("search")),
	}

	page, err := h.partService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(page))
}

func (h *Handler) getPart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	part, err := h.partService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if part == nil {
		c.JSON(http.StatusNotFound, errorResponse("part not found"))
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{
		"part":         part,
		"stock_status": part.StockStatus(),
	}))
}

func (h *Handler) updatePart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var form forms.PartForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	part, err := form.ToPart()
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.partService.Update(c.Request.Context(), id, part); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "part updated"}))
}

func (h *Handler) deletePart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.partService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) searchParts(c *gin.Context) {
	parts, err := h.partService.Search(c.Request.Context(), strings.TrimSpace(c.Query("term")))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(parts))
}

func (h *Handler) partCodeExists(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, errorResponse("code is required"))
		return
	}

	exists, err := h.partService.ExistsCode(c.Request.Context(), code, int64(queryInt(c, "exclude_id", 0)))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"exists": exists}))
}

func (h *Handler) listLowStockParts(c *gin.Context) {
	parts, err := h.partService.GetLowStock(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(parts))
}

func (h *Handler) listPartsByCategory(c *gin.Context) {
	category, ok := model.ParsePartCategory(c.Param("category"))
	if !ok {
		c.JSON(http.StatusBadRequest, errorResponse("unknown category"))
		return
	}

	parts, err := h.partService.GetByCategory(c.Request.Context(), category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(parts))
}

// Inventory handlers

func (h *Handler) listAssignments(c *gin.Context) {
	details, err := h.inventoryService.ListAll(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) listVehicleParts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.inventoryService.ListByVehicle(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) listPartVehicles(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.inventoryService.ListByPart(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(details))
}

func (h *Handler) createAssignment(c *gin.Context) {
	var form forms.AssignmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	assignment, err := form.ToAssignment()
	if err != nil {
		h.handleError(c, err)
		return
	}

	id, err := h.inventoryService.Create(c.Request.Context(), assignment)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, successResponse(gin.H{"id": id}))
}

func (h *Handler) updateAssignment(c *gin.Context) {
	vehicleID, ok := pathID(c, "vehicle_id")
	if !ok {
		return
	}
	partID, ok := pathID(c, "part_id")
	if !ok {
		return
	}

	var form forms.AssignmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	form.VehicleID = strconv.FormatInt(vehicleID, 10)
	form.PartID = strconv.FormatInt(partID, 10)
	assignment, err := form.ToAssignment()
	if err != nil {
		h.handleError(c, err)
		return
	}

	if err := h.inventoryService.Update(c.Request.Context(), vehicleID, partID, assignment); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"message": "assignment updated"}))
}

func (h *Handler) deleteAssignment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.inventoryService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Statistics handlers

func (h *Handler) vehiclesByMake(c *gin.Context) {
	counts, err := h.vehicleService.CountByMake(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(counts))
}

func (h *Handler) partsByCategory(c *gin.Context) {
	counts, err := h.partService.CountByCategory(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(counts))
}

func (h *Handler) topMileage(c *gin.Context) {
	vehicles, err := h.vehicleService.TopByMileage(c.Request.Context(), queryInt(c, "limit", 5))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(vehicles))
}

func (h *Handler) totalExtracted(c *gin.Context) {
	total, err := h.inventoryService.TotalPartsExtracted(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"total": total}))
}

// Catalog handlers

func (h *Handler) listMakes(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(catalog.Makes()))
}

func (h *Handler) listModels(c *gin.Context) {
	make := c.Param("make")
	if !catalog.MakeExists(make) {
		c.JSON(http.StatusNotFound, errorResponse("unknown make"))
		return
	}
	c.JSON(http.StatusOK, successResponse(catalog.Models(make)))
}

func (h *Handler) listVehicleLocations(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(catalog.VehicleLocations()))
}

func (h *Handler) listPartLocations(c *gin.Context) {
	c.JSON(http.StatusOK, successResponse(catalog.PartLocations()))
}

// Development handlers

func (h *Handler) seedDatabase(c *gin.Context) {
	h.seeder.SeedIfEmpty(c.Request.Context())
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "seed requested"}))
}

func (h *Handler) resetDatabase(c *gin.Context) {
	if err := h.store.Reset(); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse(gin.H{"message": "database reset"}))
}

// Helpers

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, errorResponse("invalid "+name))
		return 0, false
	}
	return id, true
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var validationErr *forms.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, errorResponse(validationErr.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrDuplicatePlate),
		errors.Is(err, service.ErrDuplicateCode),
		errors.Is(err, service.ErrDuplicateAssignment):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}
