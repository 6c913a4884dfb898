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

type CustomerHandler struct {
	service  services.CustomerService
	validate *validator.Validate
}

func NewCustomerHandler(service services.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		validate: utils.NewValidator(),
	}
}

// List godoc
//
//	@Summary	List customers
//	@Tags		customers
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	response.PaginatedResponse{data=[]models.CustomerResource}
//	@Router		/customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	customers, err := h.service.ListCustomers(r.Context(), page)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Paginated(w, page, models.NewCustomerCollection(customers))
}

// Create godoc
//
//	@Summary	Create a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		models.CreateCustomerRequest	true	"Customer details"
//	@Success	201		{object}	response.APIResponse{data=models.CustomerResource}
//	@Failure	422		{object}	response.APIResponse
//	@Router		/customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var req models.CreateCustomerRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		logger.Error("Customer creation failed", slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Customer created", slog.Int64("customerId", customer.ID))
	response.Success(w, http.StatusCreated, "Customer created successfully", models.NewCustomerResource(customer))
}

// Get godoc
//
//	@Summary	Get a customer
//	@Tags		customers
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	response.APIResponse{data=models.CustomerResource}
//	@Failure	404	{object}	response.APIResponse
//	@Router		/customers/{id} [get]
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	customer, err := h.service.GetCustomerByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Success(w, http.StatusOK, "", models.NewCustomerResource(customer))
}

// Update godoc
//
//	@Summary	Update a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int								true	"Customer ID"
//	@Param		request	body		models.UpdateCustomerRequest	true	"Customer details"
//	@Success	200		{object}	response.APIResponse{data=models.CustomerResource}
//	@Failure	404		{object}	response.APIResponse
//	@Failure	422		{object}	response.APIResponse
//	@Router		/customers/{id} [put]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	var req models.UpdateCustomerRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), id, &req)
	if err != nil {
		logger.Error("Customer update failed", slog.Int64("customerId", id), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Customer updated", slog.Int64("customerId", id))
	response.Success(w, http.StatusOK, "Customer updated successfully", models.NewCustomerResource(customer))
}

// Delete godoc
//
//	@Summary	Delete a customer
//	@Tags		customers
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Customer ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	404	{object}	response.APIResponse
//	@Router		/customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		response.Error(w, err)

		return
	}

	logger.Info("Customer deleted", slog.Int64("customerId", id))
	response.Success(w, http.StatusOK, "Customer deleted successfully", nil)
}
