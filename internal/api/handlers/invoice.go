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

type InvoiceHandler struct {
	service  services.InvoiceService
	validate *validator.Validate
}

func NewInvoiceHandler(service services.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{
		service:  service,
		validate: utils.NewValidator(),
	}
}

// List godoc
//
//	@Summary	List invoices
//	@Tags		invoices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page	query		int	false	"Page number"	default(1)
//	@Success	200		{object}	response.PaginatedResponse{data=[]models.InvoiceResource}
//	@Router		/invoices [get]
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageParam(r)

	invoices, err := h.service.ListInvoices(r.Context(), page)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Paginated(w, page, models.NewInvoiceCollection(invoices))
}

// Create godoc
//
//	@Summary	Create an invoice
//	@Description	Creates an invoice, optionally linking products in the same request
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		models.CreateInvoiceRequest	true	"Invoice details"
//	@Success	201		{object}	response.APIResponse{data=models.InvoiceResource}
//	@Failure	422		{object}	response.APIResponse
//	@Router		/invoices [post]
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	var req models.CreateInvoiceRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	invoice, err := h.service.CreateInvoice(r.Context(), &req)
	if err != nil {
		logger.Error("Invoice creation failed", slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Invoice created", slog.Int64("invoiceId", invoice.ID))
	response.Success(w, http.StatusCreated, "Invoice created successfully", models.NewInvoiceResource(invoice))
}

// Get godoc
//
//	@Summary	Get an invoice
//	@Tags		invoices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Invoice ID"
//	@Success	200	{object}	response.APIResponse{data=models.InvoiceResource}
//	@Failure	404	{object}	response.APIResponse
//	@Router		/invoices/{id} [get]
func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	invoice, err := h.service.GetInvoiceByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)

		return
	}

	response.Success(w, http.StatusOK, "", models.NewInvoiceResource(invoice))
}

// Update godoc
//
//	@Summary	Update an invoice
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int							true	"Invoice ID"
//	@Param		request	body		models.UpdateInvoiceRequest	true	"Invoice details"
//	@Success	200		{object}	response.APIResponse{data=models.InvoiceResource}
//	@Failure	404		{object}	response.APIResponse
//	@Failure	422		{object}	response.APIResponse
//	@Router		/invoices/{id} [put]
func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	var req models.UpdateInvoiceRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	invoice, err := h.service.UpdateInvoice(r.Context(), id, &req)
	if err != nil {
		logger.Error("Invoice update failed", slog.Int64("invoiceId", id), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Invoice updated", slog.Int64("invoiceId", id))
	response.Success(w, http.StatusOK, "Invoice updated successfully", models.NewInvoiceResource(invoice))
}

// Delete godoc
//
//	@Summary	Delete an invoice
//	@Description	Soft-deletes the invoice; it stops appearing in any listing
//	@Tags		invoices
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		int	true	"Invoice ID"
//	@Success	200	{object}	response.APIResponse
//	@Failure	404	{object}	response.APIResponse
//	@Router		/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	if err := h.service.DeleteInvoice(r.Context(), id); err != nil {
		response.Error(w, err)

		return
	}

	logger.Info("Invoice deleted", slog.Int64("invoiceId", id))
	response.Success(w, http.StatusOK, "Invoice deleted successfully", nil)
}

// AddProducts godoc
//
//	@Summary	Link products to an invoice
//	@Description	Links each product once; products already linked are skipped
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int								true	"Invoice ID"
//	@Param		request	body		models.InvoiceProductsRequest	true	"Product IDs"
//	@Success	200		{object}	response.APIResponse
//	@Failure	404		{object}	response.APIResponse
//	@Failure	422		{object}	response.APIResponse
//	@Router		/invoices/{id}/products [post]
func (h *InvoiceHandler) AddProducts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	var req models.InvoiceProductsRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	if err := h.service.AddProducts(r.Context(), id, req.Products); err != nil {
		logger.Error("Product attach failed", slog.Int64("invoiceId", id), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Products attached", slog.Int64("invoiceId", id), slog.Int("count", len(req.Products)))
	response.Success(w, http.StatusOK, "Products added successfully", nil)
}

// RemoveProducts godoc
//
//	@Summary	Unlink products from an invoice
//	@Tags		invoices
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		int								true	"Invoice ID"
//	@Param		request	body		models.InvoiceProductsRequest	true	"Product IDs"
//	@Success	200		{object}	response.APIResponse
//	@Failure	404		{object}	response.APIResponse
//	@Failure	422		{object}	response.APIResponse
//	@Router		/invoices/{id}/products [delete]
func (h *InvoiceHandler) RemoveProducts(w http.ResponseWriter, r *http.Request) {
	logger := middleware.LoggerFromContext(r.Context())

	id, err := utils.ParseID(r, "id")
	if err != nil {
		response.Error(w, err)

		return
	}

	var req models.InvoiceProductsRequest
	if !utils.ParseAndValidate(r, w, &req, h.validate) {
		return
	}

	if err := h.service.RemoveProducts(r.Context(), id, req.Products); err != nil {
		logger.Error("Product detach failed", slog.Int64("invoiceId", id), slog.Any("error", err))
		response.Error(w, err)

		return
	}

	logger.Info("Products detached", slog.Int64("invoiceId", id), slog.Int("count", len(req.Products)))
	response.Success(w, http.StatusOK, "Products removed successfully", nil)
}
