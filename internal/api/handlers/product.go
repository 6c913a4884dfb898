package handlers

import (
	"log/slog"
	"net/http"

	"github.com/factura-dev/invoicing-api/internal/api/middleware"
	"github.com/factura-dev/invoicing-api/internal/models"
	"github.com/factura-dev/invoicing-api/internal/services"
	"github.com/factura-dev/invoicing-api/internal/utils"
	"github.com/factura-dev/invoicing-api/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type ProductHandler struct {
	service  services.ProductService
	validate *validator.Validate
}

func NewProductHandler(service services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: utils.NewValidator(),
	}
}

// List godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	response.PaginatedResponse{data=[]models.ProductResource}
//	@Router		/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	products, err := h.service.ListProducts(r.Context(), page)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Paginated(w, page, models.NewProductCollection(products))
}

// Create godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		models.CreateProductRequest	true	"Product details"
//	@Success	201		{object}	response.APIResponse{data=models.ProductResource}
//	@Failure	422		{object}	response.APIResponse
//	@Router		/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var req models.CreateProductRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		logger.Error("Product creation failed", slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Product created", slog.Int64("productId", product.ID))
	response.Success(w, http.StatusCreated, "Product created successfully", models.NewProductResource(product))
}

// Get godoc
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	response.APIResponse{data=models.ProductResource}
//	@Failure	404	{object}	response.APIResponse
//	@Router		/products/{id} [get]
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	product, err := h.service.GetProductByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Success(w, http.StatusOK, "", models.NewProductResource(product))
}

// Update godoc
//
//	@Summary	Update a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"Product ID"
//	@Param		request	body		models.UpdateProductRequest	true	"Product details"
//	@Success	200		{object}	response.APIResponse{data=models.ProductResource}
//	@Failure	404		{object}	response.APIResponse
//	@Failure	422		{object}	response.APIResponse
//	@Router		/products/{id} [put]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	var req models.UpdateProductRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		logger.Error("Product update failed", slog.Int64("productId", id), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Product updated", slog.Int64("productId", id))
	response.Success(w, http.StatusOK, "Product updated successfully", models.NewProductResource(product))
}

// Delete godoc
//
//	@Summary	Delete a product
//	@Description	Soft-deletes the product; it stops appearing in any listing
//	@Tags		products
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Product ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	404	{object}	response.APIResponse
//	@Router		/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		response.Error(w, err)

		return
	}

	logger.Info("Product deleted", slog.Int64("productId", id))
	response.Success(w, http.StatusOK, "Product deleted successfully", nil)
}
