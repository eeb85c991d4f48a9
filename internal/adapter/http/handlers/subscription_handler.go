package handlers

import (
	"errors"
	"log"
	"net/http"

	request "beanpay/internal/adapter/http/dto/request"
	response "beanpay/internal/adapter/http/dto/response"
	"beanpay/internal/usecase"
	"beanpay/pkg"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles HTTP requests for recurring billing accounts.

type SubscriptionHandler struct {
	usecase usecase.ISubscriptionUseCase
}

func NewSubscriptionHandler(uc usecase.ISubscriptionUseCase) *SubscriptionHandler {
	return &SubscriptionHandler{usecase: uc}
}

// Create opens a recurring billing account and runs the first billing.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[subscription][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	instr, err := req.ToInstruction()
	if err != nil {
		log.Printf("[subscription][handler] create rejected err=%v", err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), instr)
	if err != nil {
		log.Printf("[subscription][handler] create failed order_number=%s err=%v", instr.OrderNumber, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] create done transaction_id=%s status=%s", created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromTransaction(created))
}

// Update changes the billed amount of an existing account.
func (h *SubscriptionHandler) Update(c *gin.Context) {
	accountID := c.Param("account_id")

	var req request.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[subscription][handler] update invalid payload account_id=%s err=%v", accountID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	amount, err := req.ToMoney()
	if err != nil {
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Update(c.Request.Context(), accountID, amount)
	if err != nil {
		log.Printf("[subscription][handler] update failed account_id=%s err=%v", accountID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] update done account_id=%s success=%t", accountID, result.Success)

	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

// Cancel closes an existing recurring billing account.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	accountID := c.Param("account_id")

	result, err := h.usecase.Cancel(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[subscription][handler] cancel failed account_id=%s err=%v", accountID, err)
		appErr := mapSubscriptionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[subscription][handler] cancel done account_id=%s success=%t", accountID, result.Success)

	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

func mapSubscriptionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingSchedule):
		return pkg.NewDomainErrorSimple("MISSING_SCHEDULE", "A recurring schedule is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingSubscriptionID):
		return pkg.NewDomainErrorSimple("MISSING_ACCOUNT_ID", "A subscription account id is required", http.StatusBadRequest)
	default:
		return mapPaymentError(err)
	}
}
