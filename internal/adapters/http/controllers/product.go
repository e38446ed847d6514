package controllers

import (
	"net/http"
	"time"

	"github.com/JCH97/Catalog-APIs/internal/adapters/http/handlers"
	"github.com/JCH97/Catalog-APIs/internal/adapters/http/middleware"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/dto"
	"github.com/JCH97/Catalog-APIs/internal/core/result"
	"github.com/JCH97/Catalog-APIs/internal/core/service"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService *service.ProductService
}

type NetWeightResponse struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type ProductResponse struct {
	ID            string             `json:"id"`
	GTIN          string             `json:"gtin"`
	Name          string             `json:"name"`
	Description   *string            `json:"description"`
	Brand         *string            `json:"brand"`
	Manufacturer  *string            `json:"manufacturer"`
	NetWeight     *NetWeightResponse `json:"netWeight"`
	Status        string             `json:"status"`
	CreatedByRole string             `json:"createdByRole"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
	Version       int                `json:"version"`
}

func NewProductResponse(product *domain.Product) ProductResponse {
	s := product.Snapshot()

	var weight *NetWeightResponse
	if s.NetWeight != nil {
		weight = &NetWeightResponse{Value: s.NetWeight.Value, Unit: string(s.NetWeight.Unit)}
	}

	return ProductResponse{
		ID:            s.ID,
		GTIN:          s.GTIN,
		Name:          s.Name,
		Description:   s.Description,
		Brand:         s.Brand,
		Manufacturer:  s.Manufacturer,
		NetWeight:     weight,
		Status:        string(s.Status),
		CreatedByRole: string(s.CreatedByRole),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		Version:       s.Version,
	}
}

func NewProductController(productService *service.ProductService) *ProductController {
	return &ProductController{productService: productService}
}

func actorRole(c *gin.Context) (domain.Role, bool) {
	role, ok := middleware.ActorRole(c)
	if !ok {
		handlers.HandleError(c, serviceerrors.NewUnauthorizedError("missing actor role"))
		return "", false
	}
	return role, true
}

func respond[T any](c *gin.Context, status int, res result.Result[T], toBody func(T) any) {
	if err, failed := res.ErrorValue(); failed {
		handlers.HandleError(c, err)
		return
	}
	value, _ := res.Value()
	c.JSON(status, toBody(value))
}

// CreateProduct godoc
// @Summary     Create a product
// @Description Creates a catalog product; editors publish immediately, providers start in review
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body     dto.CreateProductRequest true "Product data"
// @Success     201     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     401     {object} handlers.ErrorResponse
// @Failure     409     {object} handlers.ErrorResponse
// @Router      /api/v1/products [post]
func (pc *ProductController) CreateProduct(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	var request dto.CreateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	res := pc.productService.CreateProduct(c.Request.Context(), request.ToDomain(), role)
	respond(c, http.StatusCreated, res, func(p *domain.Product) any { return NewProductResponse(p) })
}

// UpdateProduct godoc
// @Summary     Update a product
// @Description Applies a partial update; providers may only edit products pending review
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     string                   true "Product id (GTIN)"
// @Param       request body     dto.UpdateProductRequest true "Fields to update"
// @Success     200     {object} ProductResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Failure     401     {object} handlers.ErrorResponse
// @Failure     404     {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [patch]
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	var request dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	res := pc.productService.UpdateProduct(c.Request.Context(), c.Param("id"), request.ToDomain(), role)
	respond(c, http.StatusOK, res, func(p *domain.Product) any { return NewProductResponse(p) })
}

// ApproveProduct godoc
// @Summary     Approve a product
// @Description Publishes a pending product; editors only, idempotent on published products
// @Tags        products
// @Produce     json
// @Param       id path string true "Product id (GTIN)"
// @Success     200 {object} ProductResponse
// @Failure     400 {object} handlers.ErrorResponse
// @Failure     401 {object} handlers.ErrorResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id}/approve [post]
func (pc *ProductController) ApproveProduct(c *gin.Context) {
	role, ok := actorRole(c)
	if !ok {
		return
	}

	res := pc.productService.ApproveProduct(c.Request.Context(), c.Param("id"), role)
	respond(c, http.StatusOK, res, func(p *domain.Product) any { return NewProductResponse(p) })
}

// GetProduct godoc
// @Summary     Get a product
// @Tags        products
// @Produce     json
// @Param       id path string true "Product id (GTIN)"
// @Success     200 {object} ProductResponse
// @Failure     404 {object} handlers.ErrorResponse
// @Router      /api/v1/products/{id} [get]
func (pc *ProductController) GetProduct(c *gin.Context) {
	res := pc.productService.GetProduct(c.Request.Context(), c.Param("id"))
	respond(c, http.StatusOK, res, func(p *domain.Product) any { return NewProductResponse(p) })
}

// GetAll godoc
// @Summary     List all products
// @Tags        products
// @Produce     json
// @Success     200 {array} ProductResponse
// @Failure     500 {object} handlers.ErrorResponse
// @Router      /api/v1/products [get]
func (pc *ProductController) GetAll(c *gin.Context) {
	res := pc.productService.GetAllProducts(c.Request.Context())
	respond(c, http.StatusOK, res, func(products []*domain.Product) any {
		response := make([]ProductResponse, len(products))
		for i, product := range products {
			response[i] = NewProductResponse(product)
		}
		return response
	})
}
