package api

import (
	"errors"
	"net/http"

	"cashback-tracker/internal/domain/reseller"
	reqdto "cashback-tracker/internal/handler/dto/request"
	resdto "cashback-tracker/internal/handler/dto/response"
	"cashback-tracker/internal/handler/httperr"
	"cashback-tracker/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ResellerHandler struct {
	resellerUseCase usecase.ResellerUseCase
}

func NewResellerHandler(resellerUseCase usecase.ResellerUseCase) *ResellerHandler {
	return &ResellerHandler{
		resellerUseCase: resellerUseCase,
	}
}

// @Summary Register reseller
// @Description Register a new reseller account
// @Tags resellers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateResellerRequest true "Create reseller request"
// @Success 201 {object} resdto.ResellerResponse
// @Failure 400 {object} map[string]string
// @Router /resellers [post]
func (h *ResellerHandler) Create(c *gin.Context) {
	var req reqdto.CreateResellerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.resellerUseCase.Register(c.Request.Context(), usecase.RegisterResellerInput{
		Name:     req.Name,
		CPF:      req.CPF,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, reseller.ErrInvalidCPF),
			errors.Is(err, reseller.ErrInvalidName),
			errors.Is(err, reseller.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromResellerView(view))
}

// @Summary Reseller login
// @Description Login with CPF and password
// @Tags resellers
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /resellers/login [post]
func (h *ResellerHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	token, err := h.resellerUseCase.Login(c.Request.Context(), req.CPF, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid cpf or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{Token: token})
}
