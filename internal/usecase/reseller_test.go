//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"cashback-tracker/internal/domain/reseller"
	"cashback-tracker/internal/pkg/clock"
	"cashback-tracker/internal/pkg/password"
	"cashback-tracker/internal/usecase"
	"cashback-tracker/tests/common/builder"
	usecasemock "cashback-tracker/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResellerUseCaseTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	repo    *usecasemock.MockResellerRepository
	tokens  *usecasemock.MockTokenStore
	useCase usecase.ResellerUseCase
}

func (s *ResellerUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockResellerRepository(s.ctrl)
	s.tokens = usecasemock.NewMockTokenStore(s.ctrl)
	fixed := clock.NewMockClock(time.Date(2020, time.March, 1, 9, 0, 0, 0, time.UTC))
	s.useCase = usecase.NewResellerUseCase(s.repo, s.tokens, fixed, 24*time.Hour)
}

func (s *ResellerUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestResellerUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ResellerUseCaseTestSuite))
}

func (s *ResellerUseCaseTestSuite) TestRegister() {
	ctx := context.Background()

	s.Run("new reseller is persisted", func() {
		input := builder.NewResellerBuilder().BuildRegisterInput()

		s.repo.EXPECT().FindByCPF(gomock.Any(), input.CPF).
			Return(nil, "", notFound("reseller not found"))
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, entity *reseller.Reseller) error {
				s.Equal(input.CPF, entity.CPF().Value())
				s.Equal(input.Name, entity.Name().Value())
				s.NoError(password.ComparePassword(entity.PasswordHash(), input.Password))
				return nil
			})

		view, err := s.useCase.Register(ctx, input)
		s.Require().NoError(err)
		s.Equal(input.CPF, view.CPF)
		s.Equal(input.Email, view.Email)
	})

	s.Run("re-registering a known cpf returns the existing record", func() {
		b := builder.NewResellerBuilder()
		input := b.BuildRegisterInput()
		existing := b.BuildView()

		s.repo.EXPECT().FindByCPF(gomock.Any(), input.CPF).
			Return(existing, "hash", nil)
		// Create must not be called.

		view, err := s.useCase.Register(ctx, input)
		s.Require().NoError(err)
		s.Equal(existing.ID, view.ID)
	})

	s.Run("losing the unique-index race falls back to the winner's record", func() {
		b := builder.NewResellerBuilder()
		input := b.BuildRegisterInput()
		winner := b.BuildView()

		gomock.InOrder(
			s.repo.EXPECT().FindByCPF(gomock.Any(), input.CPF).
				Return(nil, "", notFound("reseller not found")),
			s.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
				Return(duplicateKey("cpf already registered")),
			s.repo.EXPECT().FindByCPF(gomock.Any(), input.CPF).
				Return(winner, "hash", nil),
		)

		view, err := s.useCase.Register(ctx, input)
		s.Require().NoError(err)
		s.Equal(winner.ID, view.ID)
	})

	s.Run("invalid cpf is rejected before any lookup", func() {
		input := builder.NewResellerBuilder().With(func(b *builder.ResellerBuilder) {
			b.CPF = "67976752005"
		}).BuildRegisterInput()

		_, err := s.useCase.Register(ctx, input)
		s.Require().ErrorIs(err, reseller.ErrInvalidCPF)
	})

	s.Run("short name is rejected", func() {
		input := builder.NewResellerBuilder().With(func(b *builder.ResellerBuilder) {
			b.Name = "M"
		}).BuildRegisterInput()

		_, err := s.useCase.Register(ctx, input)
		s.Require().ErrorIs(err, reseller.ErrInvalidName)
	})

	s.Run("malformed email is rejected", func() {
		input := builder.NewResellerBuilder().With(func(b *builder.ResellerBuilder) {
			b.Email = "not-an-email"
		}).BuildRegisterInput()

		_, err := s.useCase.Register(ctx, input)
		s.Require().ErrorIs(err, reseller.ErrInvalidEmail)
	})
}

func (s *ResellerUseCaseTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("valid credentials mint a token with the configured ttl", func() {
		b := builder.NewResellerBuilder()
		hash, err := password.HashPassword(b.Password)
		s.Require().NoError(err)

		s.repo.EXPECT().FindByCPF(gomock.Any(), b.CPF).
			Return(b.BuildView(), hash, nil)
		s.tokens.EXPECT().Get(gomock.Any(), b.CPF).Return("", nil)
		s.tokens.EXPECT().Save(gomock.Any(), b.CPF, gomock.Any(), 24*time.Hour).Return(nil)

		token, err := s.useCase.Login(ctx, b.CPF, b.Password)
		s.Require().NoError(err)
		s.NotEmpty(token)
	})

	s.Run("an unexpired token is reused", func() {
		b := builder.NewResellerBuilder()
		hash, err := password.HashPassword(b.Password)
		s.Require().NoError(err)

		s.repo.EXPECT().FindByCPF(gomock.Any(), b.CPF).
			Return(b.BuildView(), hash, nil)
		s.tokens.EXPECT().Get(gomock.Any(), b.CPF).Return("live-token", nil)
		// Save must not be called.

		token, err := s.useCase.Login(ctx, b.CPF, b.Password)
		s.Require().NoError(err)
		s.Equal("live-token", token)
	})

	s.Run("wrong password is invalid credentials", func() {
		b := builder.NewResellerBuilder()
		hash, err := password.HashPassword(b.Password)
		s.Require().NoError(err)

		s.repo.EXPECT().FindByCPF(gomock.Any(), b.CPF).
			Return(b.BuildView(), hash, nil)

		_, err = s.useCase.Login(ctx, b.CPF, "wrong-pass")
		s.Require().ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("unknown cpf is invalid credentials, not a 404", func() {
		s.repo.EXPECT().FindByCPF(gomock.Any(), "86342733775").
			Return(nil, "", notFound("reseller not found"))

		_, err := s.useCase.Login(ctx, "86342733775", "whatever")
		s.Require().ErrorIs(err, usecase.ErrInvalidCredentials)
	})
}
