//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"cashback-tracker/internal/handler/api"
	resdto "cashback-tracker/internal/handler/dto/response"
	"cashback-tracker/internal/usecase"
	"cashback-tracker/internal/usecase/queries"
	"cashback-tracker/tests/common/builder"
	"cashback-tracker/tests/common/httptest"
	"cashback-tracker/tests/common/testutil"
	usecasemock "cashback-tracker/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PurchaseHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockPurchaseUseCase
	handler     *api.PurchaseHandler
}

func (s *PurchaseHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockPurchaseUseCase(s.mockCtrl)
	s.handler = api.NewPurchaseHandler(s.mockUseCase)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("reseller_cpf", c.Param("cpf"))
		c.Next()
	}

	s.router.POST("/api/resellers/:cpf/purchases", authMiddleware, s.handler.Create)
	s.router.GET("/api/resellers/:cpf/purchases", authMiddleware, s.handler.List)
}

func (s *PurchaseHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPurchaseHandlerSuite(t *testing.T) {
	suite.Run(t, new(PurchaseHandlerTestSuite))
}

type testCasePurchase struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *PurchaseHandlerTestSuite) TestCreate() {
	b := builder.NewPurchaseBuilder()
	url := "/api/resellers/" + b.ResellerCPF + "/purchases"
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.PurchaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.Code, resp.Code)
		s.Equal(b.ResellerCPF, resp.ResellerCPF)
		s.Equal("EmValidação", resp.Status)
	})

	s.Run("validation: malformed payloads never reach the use case", func() {
		cases := []testCasePurchase{
			{name: "missing field: codigo", mutate: testutil.Field("codigo", nil), expectCode: http.StatusBadRequest},
			{name: "codigo too long (51 chars)", mutate: testutil.Field("codigo", strings.Repeat("a", 51)), expectCode: http.StatusBadRequest},
			{name: "missing field: valor", mutate: testutil.Field("valor", nil), expectCode: http.StatusBadRequest},
			{name: "negative valor", mutate: testutil.Field("valor", -1.5), expectCode: http.StatusBadRequest},
			{name: "missing field: data", mutate: testutil.Field("data", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: cpf_revendedor", mutate: testutil.Field("cpf_revendedor", nil), expectCode: http.StatusBadRequest},
			{name: "zero valor is accepted", mutate: testutil.Field("valor", 0.0), expectCode: http.StatusCreated},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				if tc.expectCode == http.StatusCreated {
					s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
						Return(b.BuildView(), nil).Times(1)
				}
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("route and payload cpf mismatch is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/api/resellers/67976752006/purchases", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "CPF mismatch")
	})

	s.Run("unknown reseller maps to 404", func() {
		s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrResellerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reseller not found")
	})

	s.Run("duplicate code maps to 409", func() {
		s.mockUseCase.EXPECT().Submit(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDuplicatePurchase)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already recorded")
	})

	s.Run("missing token is unauthorized", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *PurchaseHandlerTestSuite) TestList() {
	cpf := "86342733775"
	url := "/api/resellers/" + cpf + "/purchases"

	s.Run("success: returns annotated page with total", func() {
		view := builder.NewPurchaseBuilder().BuildView()
		page := &queries.PurchasePageView{
			Purchases: []*queries.PurchaseWithCashbackView{{
				PurchaseView:       *view,
				CashbackPercentage: 10,
				CashbackValue:      decimal.RequireFromString("10.00"),
			}},
			Total: 42,
		}

		s.mockUseCase.EXPECT().ListPage(gomock.Any(), cpf, 0).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var resp resdto.PurchasePageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(42), resp.Total)
		s.Require().Len(resp.Purchases, 1)
		s.Equal(10, resp.Purchases[0].CashbackPercentage)
		s.InDelta(10.00, resp.Purchases[0].CashbackValue, 0.001)
	})

	s.Run("offset query is forwarded", func() {
		s.mockUseCase.EXPECT().ListPage(gomock.Any(), cpf, 200).
			Return(&queries.PurchasePageView{Total: 3}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?offset=200", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("non-numeric offset is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?offset=abc", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid offset")
	})

	s.Run("negative offset is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?offset=-1", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing token is unauthorized", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}
