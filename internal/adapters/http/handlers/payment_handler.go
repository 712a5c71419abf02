package handlers

import (
	"errors"
	"strconv"

	"swiftpay/internal/adapters/persistence/models"
	"swiftpay/internal/core/domain"
	"swiftpay/internal/core/services"
	"swiftpay/internal/pkg/pagination"
	"swiftpay/internal/pkg/response"
	"swiftpay/internal/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment lifecycle endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// CreatePaymentRequest represents payment creation request body
type CreatePaymentRequest struct {
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Provider           string `json:"provider"`
	PayeeName          string `json:"payee_name"`
	PayeeAccountNumber string `json:"payee_account_number"`
	SwiftCode          string `json:"swift_code"`
}

// UpdateStatusRequest represents status transition request body
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Create creates a new payment
// @Summary Create payment
// @Description Submit a new international payment (customers only)
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreatePaymentRequest true "Payment data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	customerID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	input := &services.CreatePaymentInput{
		Amount:             req.Amount,
		Currency:           req.Currency,
		Provider:           req.Provider,
		PayeeName:          req.PayeeName,
		PayeeAccountNumber: req.PayeeAccountNumber,
		SwiftCode:          req.SwiftCode,
	}

	payment, err := h.paymentService.Create(c.Context(), customerID, input)
	if err != nil {
		var verr *validator.ValidationError
		if errors.As(err, &verr) {
			return response.BadRequest(c, verr.Error())
		}
		return response.InternalServerError(c, "Failed to make payment")
	}

	return response.Created(c, "Payment submitted for verification", fiber.Map{
		"payment": payment.ToResponse(),
	})
}

// List lists payments for the employee queue
// @Summary List payments
// @Description List payments filtered by status; defaults to Pending, pass status=all for everything (employees only)
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter (Pending, Verified, Rejected, Submitted or all)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /payments [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	input := &services.ListInput{
		Status: c.Query("status"),
		Offset: params.Offset,
		Limit:  params.Limit,
	}

	payments, total, err := h.paymentService.List(c.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStatus) {
			return response.BadRequest(c, "Unknown payment status")
		}
		return response.InternalServerError(c, "Failed to fetch payments")
	}

	return response.Success(c, "Payments retrieved successfully", fiber.Map{
		"payments": toPaymentResponses(payments),
		"meta":     pagination.GetMeta(params, total),
	})
}

// ListMine lists the calling customer's own payments
// @Summary List my payments
// @Description List the authenticated customer's payments, any status
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /payments/my [get]
func (h *PaymentHandler) ListMine(c *fiber.Ctx) error {
	customerID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)

	payments, total, err := h.paymentService.ListByCustomer(c.Context(), customerID, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to fetch payments")
	}

	return response.Success(c, "Payments retrieved successfully", fiber.Map{
		"payments": toPaymentResponses(payments),
		"meta":     pagination.GetMeta(params, total),
	})
}

// UpdateStatus applies a status transition
// @Summary Update payment status
// @Description Apply one state-machine transition to a payment (employees only)
// @Tags Payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param body body UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /payments/{id}/status [patch]
func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid payment ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Status == "" {
		return response.BadRequest(c, "No status change detected")
	}

	actorID, _ := c.Locals("userID").(uint)

	payment, err := h.paymentService.UpdateStatus(c.Context(), uint(id), req.Status, actorID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownStatus):
			return response.BadRequest(c, "Unknown payment status")
		case errors.Is(err, domain.ErrInvalidTransition):
			return response.BadRequest(c, "Status transition not allowed")
		case errors.Is(err, domain.ErrPaymentNotFound):
			return response.NotFound(c, "Payment not found")
		default:
			return response.InternalServerError(c, "Failed to update payment status")
		}
	}

	return response.Success(c, "Payment status updated successfully", fiber.Map{
		"payment": payment.ToResponse(),
	})
}

// SubmitToSwift bulk-submits all verified payments
// @Summary Submit verified payments to SWIFT
// @Description Transition every Verified payment to Submitted; best-effort batch (employees only)
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /payments/submit-swift [post]
func (h *PaymentHandler) SubmitToSwift(c *fiber.Ctx) error {
	actorID, _ := c.Locals("userID").(uint)

	submitted, err := h.paymentService.SubmitVerifiedToSwift(c.Context(), actorID)
	if err != nil {
		return response.InternalServerError(c, "Failed to submit payments to SWIFT")
	}

	return response.Success(c, "Verified payments submitted to SWIFT", fiber.Map{
		"submitted": toPaymentResponses(submitted),
		"count":     len(submitted),
	})
}

// ClearAll deletes all payments
// @Summary Clear all payments
// @Description Administrative escape hatch deleting every payment (employees only)
// @Tags Payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /payments [delete]
func (h *PaymentHandler) ClearAll(c *fiber.Ctx) error {
	actorID, _ := c.Locals("userID").(uint)

	deleted, err := h.paymentService.ClearAll(c.Context(), actorID)
	if err != nil {
		return response.InternalServerError(c, "Failed to clear payments")
	}

	return response.Success(c, "All payments cleared", fiber.Map{
		"deleted": deleted,
	})
}

func toPaymentResponses(payments []*models.Payment) []*models.PaymentResponse {
	responses := make([]*models.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, p.ToResponse())
	}
	return responses
}
