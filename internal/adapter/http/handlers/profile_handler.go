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

// ProfileHandler handles HTTP requests for gateway-hosted secure payment
// profiles.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// Create stores a new payment profile at the gateway.
func (h *ProfileHandler) Create(c *gin.Context) {
	var req request.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[profile][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	instr, err := req.ToInstruction()
	if err != nil {
		log.Printf("[profile][handler] create rejected err=%v", err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Create(c.Request.Context(), instr)
	if err != nil {
		log.Printf("[profile][handler] create failed err=%v", err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[profile][handler] create done success=%t customer_code=%s", result.Success, result.Fields["customer_vault_id"])

	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

// Update modifies an existing profile addressed by customer code.
func (h *ProfileHandler) Update(c *gin.Context) {
	customerCode := c.Param("customer_code")

	var req request.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[profile][handler] update invalid payload customer_code=%s err=%v", customerCode, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	instr, err := req.ToInstruction()
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Update(c.Request.Context(), customerCode, instr)
	if err != nil {
		log.Printf("[profile][handler] update failed customer_code=%s err=%v", customerCode, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[profile][handler] update done customer_code=%s success=%t", customerCode, result.Success)

	c.JSON(http.StatusOK, response.FromGatewayResult(result))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCustomerCode):
		return pkg.NewDomainErrorSimple("MISSING_CUSTOMER_CODE", "A customer code is required", http.StatusBadRequest)
	default:
		return mapPaymentError(err)
	}
}
