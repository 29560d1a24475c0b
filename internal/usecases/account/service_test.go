package account

import (
	"context"
	"testing"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/gateway"
	gatewaymocks "github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/gateway/mocks"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository/mocks"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_CreateSubscription(t *testing.T) {
	ctx := context.Background()

	t.Run("Plano é obrigatório", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockUserRepository(ctrl), gatewaymocks.NewMockIntegrator(ctrl))

		err := service.CreateSubscription(ctx, 1, "")
		assert.ErrorIs(t, err, ErrMissingPayload)
	})

	t.Run("Payload deve levar usuário e email junto com o plano", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		integrator := gatewaymocks.NewMockIntegrator(ctrl)
		service := NewService(userRepo, integrator)

		userRepo.EXPECT().GetUserByID(42).Return(&domain.User{ID: 42, Email: "ana@nextapps.com.br"}, nil)

		integrator.EXPECT().
			Invoke(gomock.Any(), gateway.ActionCreateSubscription, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, payload map[string]interface{}) (*gateway.Response, error) {
				assert.Equal(t, "premium", payload["plan"])
				assert.Equal(t, 42, payload["user_id"])
				assert.Equal(t, "ana@nextapps.com.br", payload["email"])
				return &gateway.Response{Success: true}, nil
			})

		assert.NoError(t, service.CreateSubscription(ctx, 42, "premium"))
	})

	t.Run("Resposta sem sucesso vira erro de gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		integrator := gatewaymocks.NewMockIntegrator(ctrl)
		service := NewService(userRepo, integrator)

		userRepo.EXPECT().GetUserByID(42).Return(&domain.User{ID: 42}, nil)
		integrator.EXPECT().
			Invoke(gomock.Any(), gateway.ActionCreateSubscription, gomock.Any()).
			Return(&gateway.Response{Success: false, Message: "cartão recusado"}, nil)

		err := service.CreateSubscription(ctx, 42, "premium")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGatewayRejected)

		accountErr := &AccountError{}
		require.ErrorAs(t, err, &accountErr)
		assert.Equal(t, 42, accountErr.UserID)
		assert.Equal(t, "cartão recusado", accountErr.Details)
	})
}

func TestService_InvokeForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Usuário zero é rejeitado sem consultar o banco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		service := NewService(mocks.NewMockUserRepository(ctrl), gatewaymocks.NewMockIntegrator(ctrl))

		err := service.CancelSubscription(ctx, 0)
		assert.ErrorIs(t, err, ErrUserIDRequired)
	})

	t.Run("Usuário inexistente é rejeitado antes de chamar o gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		service := NewService(userRepo, gatewaymocks.NewMockIntegrator(ctrl))

		userRepo.EXPECT().GetUserByID(7).Return(nil, nil)

		err := service.CancelSubscription(ctx, 7)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Falha de comunicação vira erro de integração", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		integrator := gatewaymocks.NewMockIntegrator(ctrl)
		service := NewService(userRepo, integrator)

		userRepo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7}, nil)
		integrator.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		err := service.CancelSubscription(ctx, 7)
		assert.ErrorIs(t, err, ErrGatewayIntegration)
	})
}

func TestService_DeleteAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Marca o usuário como removido após confirmação do gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		integrator := gatewaymocks.NewMockIntegrator(ctrl)
		service := NewService(userRepo, integrator)

		user := &domain.User{ID: 9, Active: true}

		// Uma busca para o invoke, outra para a remoção local
		userRepo.EXPECT().GetUserByID(9).Return(user, nil).Times(2)
		integrator.EXPECT().
			Invoke(gomock.Any(), gateway.ActionDeleteAccount, gomock.Any()).
			Return(&gateway.Response{Success: true}, nil)

		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(u *domain.User) error {
				assert.False(t, u.Active)
				assert.True(t, u.Deleted)
				return nil
			})

		assert.NoError(t, service.DeleteAccount(ctx, 9))
	})

	t.Run("Gateway recusando não remove o usuário local", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		integrator := gatewaymocks.NewMockIntegrator(ctrl)
		service := NewService(userRepo, integrator)

		userRepo.EXPECT().GetUserByID(9).Return(&domain.User{ID: 9}, nil)
		integrator.EXPECT().
			Invoke(gomock.Any(), gateway.ActionDeleteAccount, gomock.Any()).
			Return(&gateway.Response{Success: false, Message: "conta com débitos"}, nil)

		err := service.DeleteAccount(ctx, 9)
		assert.ErrorIs(t, err, ErrGatewayRejected)
	})
}
