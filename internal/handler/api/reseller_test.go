//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"cashback-tracker/internal/domain/reseller"
	"cashback-tracker/internal/handler/api"
	resdto "cashback-tracker/internal/handler/dto/response"
	"cashback-tracker/internal/usecase"
	"cashback-tracker/tests/common/builder"
	"cashback-tracker/tests/common/httptest"
	"cashback-tracker/tests/common/testutil"
	usecasemock "cashback-tracker/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResellerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockResellerUseCase
	handler     *api.ResellerHandler
}

func (s *ResellerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockResellerUseCase(s.mockCtrl)
	s.handler = api.NewResellerHandler(s.mockUseCase)

	s.router.POST("/api/resellers", s.handler.Create)
	s.router.POST("/api/resellers/login", s.handler.Login)
}

func (s *ResellerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResellerHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResellerHandlerTestSuite))
}

func (s *ResellerHandlerTestSuite) TestCreate() {
	url := "/api/resellers"
	b := builder.NewResellerBuilder()
	reqBody := b.BuildCreateRequestDTO()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(b.BuildView(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.ResellerResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(b.CPF, resp.CPF)
		s.Equal(b.Name, resp.Name)
	})

	s.Run("validation: malformed payloads never reach the use case", func() {
		cases := []struct {
			name       string
			mutate     func(m map[string]any)
			expectCode int
		}{
			{name: "missing field: nome", mutate: testutil.Field("nome", nil), expectCode: http.StatusBadRequest},
			{name: "nome too short (1 char)", mutate: testutil.Field("nome", "M"), expectCode: http.StatusBadRequest},
			{name: "nome too long (101 chars)", mutate: testutil.Field("nome", strings.Repeat("a", 101)), expectCode: http.StatusBadRequest},
			{name: "missing field: cpf", mutate: testutil.Field("cpf", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email"), expectCode: http.StatusBadRequest},
			{name: "senha too short (7 chars)", mutate: testutil.Field("senha", "1234567"), expectCode: http.StatusBadRequest},
			{name: "senha too long (11 chars)", mutate: testutil.Field("senha", "12345678901"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(tc.expectCode, rec.Code, rec.Body.String())
			})
		}
	})

	s.Run("cpf failing the checksum maps to 400", func() {
		s.mockUseCase.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, reseller.ErrInvalidCPF)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request data")
	})
}

func (s *ResellerHandlerTestSuite) TestLogin() {
	url := "/api/resellers/login"
	b := builder.NewResellerBuilder()
	reqBody := b.BuildLoginRequestDTO()

	s.Run("success: returns the opaque token", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), b.CPF, b.Password).
			Return("opaque-token", nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var resp resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("opaque-token", resp.Token)
	})

	s.Run("bad credentials map to 401", func() {
		s.mockUseCase.EXPECT().Login(gomock.Any(), b.CPF, b.Password).
			Return("", usecase.ErrInvalidCredentials)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid cpf or password")
	})

	s.Run("missing senha is rejected before the use case", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("senha", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
