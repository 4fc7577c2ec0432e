//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"cashback-tracker/internal/infra"
	"cashback-tracker/internal/usecase"
	usecasemock "cashback-tracker/tests/mock/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTokenValidator(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves a live token to its cpf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := usecasemock.NewMockTokenStore(ctrl)
		tokens.EXPECT().ResolveCPF(gomock.Any(), "live-token").Return("67976752006", nil)

		cpf, err := usecase.NewTokenValidator(tokens).ValidateToken(ctx, "live-token")
		require.NoError(t, err)
		require.Equal(t, "67976752006", cpf)
	})

	t.Run("unknown or expired token fails validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tokens := usecasemock.NewMockTokenStore(ctrl)
		tokens.EXPECT().ResolveCPF(gomock.Any(), "stale").
			Return("", infra.WrapRepoErr("token not found", nil, infra.KindNotFound))

		_, err := usecase.NewTokenValidator(tokens).ValidateToken(ctx, "stale")
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}
