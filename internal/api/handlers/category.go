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

type CategoryHandler struct {
	service  services.CategoryService
	validate *validator.Validate
}

func NewCategoryHandler(service services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: utils.NewValidator(),
	}
}

// List godoc
//
//	@Summary	List categories
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	response.PaginatedResponse{data=[]models.CategoryResource}
//	@Router		/categories [get]
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	categories, err := h.service.ListCategories(r.Context(), page)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Paginated(w, page, models.NewCategoryCollection(categories))
}

// Create godoc
//
//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		models.CreateCategoryRequest	true	"Category details"
//	@Success	201		{object}	response.APIResponse{data=models.CategoryResource}
//	@Failure	422		{object}	response.APIResponse
//	@Router		/categories [post]
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var req models.CreateCategoryRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		logger.Error("Category creation failed", slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Category created", slog.Int64("categoryId", category.ID))
	response.Success(w, http.StatusCreated, "Category created successfully", models.NewCategoryResource(category))
}

// Get godoc
//
//	@Summary	Get a category
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	response.APIResponse{data=models.CategoryResource}
//	@Failure	404	{object}	response.APIResponse
//	@Router		/categories/{id} [get]
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	category, err := h.service.GetCategoryByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Success(w, http.StatusOK, "", models.NewCategoryResource(category))
}

// Update godoc
//
//	@Summary	Update a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int								true	"Category ID"
//	@Param		request	body		models.UpdateCategoryRequest	true	"Category details"
//	@Success	200		{object}	response.APIResponse{data=models.CategoryResource}
//	@Failure	404		{object}	response.APIResponse
//	@Failure	422		{object}	response.APIResponse
//	@Router		/categories/{id} [put]
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	var req models.UpdateCategoryRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		logger.Error("Category update failed", slog.Int64("categoryId", id), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Category updated", slog.Int64("categoryId", id))
	response.Success(w, http.StatusOK, "Category updated successfully", models.NewCategoryResource(category))
}

// Delete godoc
//
//	@Summary	Delete a category
//	@Tags		categories
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Category ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	404	{object}	response.APIResponse
//	@Router		/categories/{id} [delete]
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	if err := h.service.DeleteCategory(r.Context(), id); err != nil {
		response.Error(w, err)

		return
	}

	logger.Info("Category deleted", slog.Int64("categoryId", id))
	response.Success(w, http.StatusOK, "Category deleted successfully", nil)
}
