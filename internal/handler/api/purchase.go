package api

import (
	"errors"
	"net/http"
	"strconv"

	"cashback-tracker/internal/domain/purchase"
	"cashback-tracker/internal/domain/reseller"
	reqdto "cashback-tracker/internal/handler/dto/request"
	resdto "cashback-tracker/internal/handler/dto/response"
	"cashback-tracker/internal/handler/httperr"
	"cashback-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PurchaseHandler struct {
	purchaseUseCase usecase.PurchaseUseCase
}

func NewPurchaseHandler(purchaseUseCase usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUseCase: purchaseUseCase,
	}
}

// @Summary Submit purchase
// @Description Submit a purchase for the reseller identified in the route
// @Tags purchases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cpf path string true "Reseller CPF"
// @Param request body reqdto.CreatePurchaseRequest true "Create purchase request"
// @Success 201 {object} resdto.PurchaseResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /resellers/{cpf}/purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req reqdto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if c.Param("cpf") != req.ResellerCPF {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Route and payload CPF mismatch", nil)
		return
	}

	view, err := h.purchaseUseCase.Submit(c.Request.Context(), usecase.SubmitPurchaseInput{
		Code:        req.Code,
		ResellerCPF: req.ResellerCPF,
		Value:       decimal.NewFromFloat(*req.Value),
		PurchasedAt: req.PurchasedAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResellerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reseller not found", nil)
		case errors.Is(err, usecase.ErrDuplicatePurchase):
			httperr.AbortWithError(c, http.StatusConflict, err, "Purchase already recorded", nil)
		case errors.Is(err, purchase.ErrInvalidCode),
			errors.Is(err, purchase.ErrInvalidValue),
			errors.Is(err, reseller.ErrInvalidCPF):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseView(view))
}

// @Summary List purchases
// @Description List the reseller's purchases with cashback, one fixed-size page at a time
// @Tags purchases
// @Produce json
// @Security BearerAuth
// @Param cpf path string true "Reseller CPF"
// @Param offset query int false "Zero-based offset (default 0)"
// @Success 200 {object} resdto.PurchasePageResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /resellers/{cpf}/purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	offset := 0
	if v := c.Query("offset"); v != "" {
		iv, err := strconv.Atoi(v)
		if err != nil || iv < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offset", nil)
			return
		}
		offset = iv
	}

	page, err := h.purchaseUseCase.ListPage(c.Request.Context(), c.Param("cpf"), offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPurchasePageView(page))
}
