package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "beanpay/internal/adapter/http/dto/request"
	response "beanpay/internal/adapter/http/dto/response"
	"beanpay/internal/domain/entities"
	"beanpay/internal/usecase"
	"beanpay/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for one-time payments and their
// follow-up operations.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Purchase authorizes and captures in a single call.
func (h *PaymentHandler) Purchase(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] purchase invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	instr, err := req.ToInstruction()
	if err != nil {
		log.Printf("[payment][handler] purchase rejected err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Purchase(c.Request.Context(), instr)
	if err != nil {
		log.Printf("[payment][handler] purchase failed order_number=%s err=%v", instr.OrderNumber, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] purchase done transaction_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Authorize reserves funds without capturing them.
func (h *PaymentHandler) Authorize(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] authorize invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	instr, err := req.ToInstruction()
	if err != nil {
		log.Printf("[payment][handler] authorize rejected err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Authorize(c.Request.Context(), instr)
	if err != nil {
		log.Printf("[payment][handler] authorize failed order_number=%s err=%v", instr.OrderNumber, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] authorize done transaction_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Capture completes a prior authorization.
func (h *PaymentHandler) Capture(c *gin.Context) {
	h.followUp(c, "capture", h.usecase.Capture)
}

// Refund returns funds from a prior purchase or capture.
func (h *PaymentHandler) Refund(c *gin.Context) {
	h.followUp(c, "refund", h.usecase.Refund)
}

// Void cancels the original transaction in full.
func (h *PaymentHandler) Void(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] void start transaction_id=%s", id)

	created, err := h.usecase.Void(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] void failed transaction_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] void done transaction_id=%s status=%s", id, created.Status)

	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// GetByID returns a single transaction record.
func (h *PaymentHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	tx, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed transaction_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListByOrderNumber returns every transaction recorded for an order.
func (h *PaymentHandler) ListByOrderNumber(c *gin.Context) {
	orderNumber := c.Query("order_number")
	if orderNumber == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "order_number query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	txs, err := h.usecase.ListByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		log.Printf("[payment][handler] list failed order_number=%s err=%v", orderNumber, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

type followUpFunc func(ctx context.Context, transactionID string, amount entities.Money) (entities.Transaction, error)

func (h *PaymentHandler) followUp(c *gin.Context, op string, fn followUpFunc) {
	id := c.Param("id")

	var req request.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[payment][handler] %s invalid payload transaction_id=%s err=%v", op, id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	amount, err := req.ToMoney()
	if err != nil {
		log.Printf("[payment][handler] %s rejected transaction_id=%s err=%v", op, id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] %s start transaction_id=%s amount=%s", op, id, amount.String())
	created, err := fn(c.Request.Context(), id, amount)
	if err != nil {
		log.Printf("[payment][handler] %s failed transaction_id=%s err=%v", op, id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] %s done transaction_id=%s status=%s", op, id, created.Status)

	c.JSON(http.StatusOK, response.FromTransaction(created))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, request.ErrAmountInvalid), errors.Is(err, request.ErrSourceRequired),
		errors.Is(err, request.ErrIntervalUnitInvalid), errors.Is(err, request.ErrStartDateInvalid),
		errors.Is(err, request.ErrStartDateRequired):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPaymentSource):
		return pkg.NewDomainErrorSimple("MISSING_PAYMENT_SOURCE", "A payment source is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMissingAuthorization):
		return pkg.NewDomainErrorSimple("MISSING_AUTHORIZATION", "Transaction has no authorization token", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
