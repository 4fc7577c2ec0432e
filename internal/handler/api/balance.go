package api

import (
	"errors"
	"net/http"

	resdto "cashback-tracker/internal/handler/dto/response"
	"cashback-tracker/internal/handler/httperr"
	"cashback-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	balanceUseCase usecase.BalanceUseCase
}

func NewBalanceHandler(balanceUseCase usecase.BalanceUseCase) *BalanceHandler {
	return &BalanceHandler{
		balanceUseCase: balanceUseCase,
	}
}

// @Summary Accumulated cashback
// @Description Get the reseller's accumulated cashback balance from the external ledger
// @Tags cashback
// @Produce json
// @Security BearerAuth
// @Param cpf path string true "Reseller CPF"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /resellers/{cpf}/cashback [get]
func (h *BalanceHandler) Get(c *gin.Context) {
	view, err := h.balanceUseCase.AccumulatedCashback(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrResellerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reseller not found", nil)
		case errors.Is(err, usecase.ErrLedgerUnavailable):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Cashback ledger unavailable", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
