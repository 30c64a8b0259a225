package handlers

import (
	"net/http"

	"invoice-api/internal/services"
	"invoice-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvoiceHandler holds dependencies for invoice operations.
type InvoiceHandler struct {
	service   services.InvoiceService
	validator *validator.Validate
	responder *ErrorResponder
	log       zerolog.Logger
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(service services.InvoiceService, validate *validator.Validate, responder *ErrorResponder, log zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service:   service,
		validator: validate,
		responder: responder,
		log:       log.With().Str("component", "invoice_handler").Logger(),
	}
}

// parseInvoiceID validates the path identifier before anything touches
// storage. A malformed identifier is a 400, not a 404.
func (h *InvoiceHandler) parseInvoiceID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		h.responder.Respond(c, http.StatusBadRequest, "Invalid invoice ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Validates the full invoice body, derives the total, the short code and the payment due date server-side, and persists the invoice.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice body      dto.CreateInvoiceRequest true  "Invoice to create"
// @Success      201 {object}  dto.InvoiceResponse "Invoice created (paymentDue formatted as DD MMM YYYY)"
// @Failure      400 {object}  map[string]string "Validation failed"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoice [post]
// @Security     BearerAuth
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, FormatValidationErrors(err), nil)
		return
	}

	created, err := h.service.CreateInvoice(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create invoice")
		h.responder.RespondService(c, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, MapInvoiceToResponse(created, createdDueLayout))
}

// CreateDraftInvoice godoc
// @Summary      Save an invoice as draft
// @Description  Accepts a partial invoice body (every field optional) and persists it with status draft. The same server-side derivations apply.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoice body      dto.DraftInvoiceRequest true  "Draft invoice"
// @Success      201 {object}  models.Invoice "Draft created"
// @Failure      400 {object}  map[string]string "Validation failed"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Failed to save draft invoice"
// @Router       /invoice/saveAsDraft [post]
// @Security     BearerAuth
func (h *InvoiceHandler) CreateDraftInvoice(c *gin.Context) {
	var req dto.DraftInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, FormatValidationErrors(err), nil)
		return
	}

	created, err := h.service.CreateDraftInvoice(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to save draft invoice")
		h.responder.Respond(c, http.StatusInternalServerError, "Failed to save draft invoice.", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateInvoice godoc
// @Summary      Edit an invoice
// @Description  Full replacement of the invoice's business fields. A submitted draft status is coerced to pending; the total is recomputed from the submitted items.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        invoiceId path      string true  "Invoice primary key" Format(uuid)
// @Param        invoice body      dto.CreateInvoiceRequest true  "Replacement invoice fields"
// @Success      200 {object}  models.Invoice "Updated invoice"
// @Failure      400 {object}  map[string]string "Invalid ID or validation failed"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoice/{invoiceId} [post]
// @Security     BearerAuth
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id, ok := h.parseInvoiceID(c, "invoiceId")
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.responder.Respond(c, http.StatusBadRequest, FormatValidationErrors(err), nil)
		return
	}

	updated, err := h.service.UpdateInvoice(c.Request.Context(), id, &req)
	if err != nil {
		h.responder.RespondService(c, err, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// MarkInvoiceAsPaid godoc
// @Summary      Mark an invoice as paid
// @Description  Sets the invoice status to paid regardless of its prior status. No body is required.
// @Tags         invoices
// @Produce      json
// @Param        invoiceId path      string true  "Invoice primary key" Format(uuid)
// @Success      200 {object}  models.Invoice "Updated invoice"
// @Failure      400 {object}  map[string]string "Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoice/markAsPaid/{invoiceId} [put]
// @Security     BearerAuth
func (h *InvoiceHandler) MarkInvoiceAsPaid(c *gin.Context) {
	id, ok := h.parseInvoiceID(c, "invoiceId")
	if !ok {
		return
	}

	updated, err := h.service.MarkInvoiceAsPaid(c.Request.Context(), id)
	if err != nil {
		h.responder.RespondService(c, err, "Failed to mark invoice as paid")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListInvoices godoc
// @Summary      List all invoices
// @Description  Returns every invoice with paymentDue formatted as YYYY-MM-DD.
// @Tags         invoices
// @Produce      json
// @Success      200 {array}   dto.InvoiceResponse "All invoices"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices [get]
// @Security     BearerAuth
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.service.ListInvoices(c.Request.Context())
	if err != nil {
		h.responder.RespondService(c, err, "Failed to retrieve invoices")
		return
	}

	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, MapInvoiceToResponse(&invoices[i], listDueLayout))
	}

	c.JSON(http.StatusOK, responses)
}

// ListOverdueInvoices godoc
// @Summary      List overdue invoices
// @Description  Returns unpaid invoices whose payment due date has passed.
// @Tags         invoices
// @Produce      json
// @Success      200 {array}   dto.InvoiceResponse "Overdue invoices"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoices/overdue [get]
// @Security     BearerAuth
func (h *InvoiceHandler) ListOverdueInvoices(c *gin.Context) {
	invoices, err := h.service.ListOverdueInvoices(c.Request.Context())
	if err != nil {
		h.responder.RespondService(c, err, "Failed to retrieve invoices")
		return
	}

	responses := make([]dto.InvoiceResponse, 0, len(invoices))
	for i := range invoices {
		responses = append(responses, MapInvoiceToResponse(&invoices[i], listDueLayout))
	}

	c.JSON(http.StatusOK, responses)
}

// GetInvoiceByID godoc
// @Summary      Get an invoice by ID
// @Description  Returns the raw invoice entity. paymentDue is not reformatted on this endpoint.
// @Tags         invoices
// @Produce      json
// @Param        id path      string true  "Invoice primary key" Format(uuid)
// @Success      200 {object}  models.Invoice "Invoice"
// @Failure      400 {object}  map[string]string "Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoice/{id} [get]
// @Security     BearerAuth
func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	id, ok := h.parseInvoiceID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.service.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		h.responder.RespondService(c, err, "Failed to retrieve invoice")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Description  Removes the invoice and returns a success acknowledgement. Deletion is terminal; there is no soft delete.
// @Tags         invoices
// @Produce      json
// @Param        id path      string true  "Invoice primary key" Format(uuid)
// @Success      200 {object}  dto.DeleteInvoiceResponse "Deleted"
// @Failure      400 {object}  map[string]string "Invalid ID"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Invoice not found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /invoice/{id} [delete]
// @Security     BearerAuth
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, ok := h.parseInvoiceID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteInvoice(c.Request.Context(), id); err != nil {
		h.responder.RespondService(c, err, "Failed to delete invoice")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteInvoiceResponse{Message: "Invoice deleted successfully"})
}
