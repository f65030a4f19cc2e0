package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rakha/simaset/internal/app/models/dto"
	"github.com/rakha/simaset/internal/app/services"
	"github.com/rakha/simaset/internal/middleware"
	"github.com/rakha/simaset/internal/pkg/helpers"
)

// AssetController handles inventory endpoints. One controller serves every
// faculty dataset; the target dataset comes from the :faculty route parameter.
type AssetController struct {
	assetService services.AssetService
}

// NewAssetController creates a new AssetController
func NewAssetController(assetService services.AssetService) *AssetController {
	return &AssetController{
		assetService: assetService,
	}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// List retrieves a filtered, paginated page of records
// @Summary List inventory records
// @Description Retrieves records for one faculty dataset with skip/limit pagination and optional equality filters
// @Tags fakultas
// @Produce json
// @Security BearerAuth
// @Param faculty path string true "Faculty slug"
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows returned" default(100)
// @Param gedung query string false "Filter by building"
// @Param lantai query int false "Filter by floor"
// @Param fk query string false "Filter by faculty code"
// @Param subUnit query string false "Filter by sub-unit"
// @Success 200 {object} dto.APIResponse{data=[]models.AssetRecord}
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Unknown faculty"
// @Router /fakultas/{faculty} [get]
func (c *AssetController) List(ctx *gin.Context) {
	opts := helpers.ParseListOptions(ctx)

	records, err := c.assetService.List(ctx, ctx.Param("faculty"), opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      records,
		Timestamp: time.Now(),
	})
}

// GetByID retrieves a record by primary key
// @Summary Get a record by ID
// @Tags fakultas
// @Produce json
// @Security BearerAuth
// @Param faculty path string true "Faculty slug"
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=models.AssetRecord}
// @Failure 404 {object} dto.ErrorResponse "Data not found"
// @Router /fakultas/{faculty}/{id} [get]
func (c *AssetController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	record, err := c.assetService.GetByID(ctx, ctx.Param("faculty"), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// GetByNo retrieves a record by its caller-assigned sequence number
// @Summary Get a record by nomor
// @Tags fakultas
// @Produce json
// @Security BearerAuth
// @Param faculty path string true "Faculty slug"
// @Param no path int true "Record nomor"
// @Success 200 {object} dto.APIResponse{data=models.AssetRecord}
// @Failure 404 {object} dto.ErrorResponse "Data not found"
// @Router /fakultas/{faculty}/no/{no} [get]
func (c *AssetController) GetByNo(ctx *gin.Context) {
	no, ok := parseIDParam(ctx, "no")
	if !ok {
		return
	}

	record, err := c.assetService.GetByNo(ctx, ctx.Param("faculty"), no)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// Create inserts a new record
// @Summary Create a record
// @Description Creates a record in the faculty dataset; the nomor must not collide with an existing row
// @Tags fakultas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param faculty path string true "Faculty slug"
// @Param request body dto.CreateAssetRequest true "Record data"
// @Success 200 {object} dto.APIResponse{data=models.AssetRecord}
// @Failure 400 {object} dto.ErrorResponse "Nomor already exists"
// @Failure 403 {object} dto.ErrorResponse
// @Router /fakultas/{faculty} [post]
func (c *AssetController) Create(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.assetService.Create(ctx, ctx.Param("faculty"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// Update merges the supplied fields into an existing record
// @Summary Update a record
// @Tags fakultas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param faculty path string true "Faculty slug"
// @Param id path int true "Record ID"
// @Param request body dto.UpdateAssetRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.AssetRecord}
// @Failure 400 {object} dto.ErrorResponse "Nomor already exists"
// @Failure 404 {object} dto.ErrorResponse "Data not found"
// @Router /fakultas/{faculty}/{id} [put]
func (c *AssetController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid record data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.assetService.Update(ctx, ctx.Param("faculty"), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      record,
		Timestamp: time.Now(),
	})
}

// Delete removes a record
// @Summary Delete a record
// @Tags fakultas
// @Produce json
// @Security BearerAuth
// @Param faculty path string true "Faculty slug"
// @Param id path int true "Record ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 404 {object} dto.ErrorResponse "Data not found"
// @Router /fakultas/{faculty}/{id} [delete]
func (c *AssetController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.assetService.Delete(ctx, ctx.Param("faculty"), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Data deleted successfully"},
		Timestamp: time.Now(),
	})
}

// Search fans a query out across every faculty dataset
// @Summary Search across all faculties
// @Tags fakultas
// @Produce json
// @Security BearerAuth
// @Param query query string true "Search term (min 2 characters)"
// @Param gedung query string false "Filter by building"
// @Param lantai query int false "Filter by floor"
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultySearchResult}
// @Failure 400 {object} dto.ErrorResponse
// @Router /fakultas/search [get]
func (c *AssetController) Search(ctx *gin.Context) {
	opts := helpers.ParseListOptions(ctx)

	results, err := c.assetService.Search(ctx, ctx.Query("query"), opts)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      results,
		Timestamp: time.Now(),
	})
}
