// Package account administra assinatura e métodos de pagamento da conta
// de um usuário através do serviço externo de cobrança
package account

import (
	"context"

	"github.com/nextapps-br/sales-dashboard-api/infrastructure/integrator/gateway"
	"github.com/nextapps-br/sales-dashboard-api/infrastructure/repository"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

type AccountManager interface {
	CreateSubscription(ctx context.Context, userID int, plan string) error
	CancelSubscription(ctx context.Context, userID int) error
	DeleteAccount(ctx context.Context, userID int) error
	AddPaymentMethod(ctx context.Context, userID int, paymentMethodID string) error
	RemovePaymentMethod(ctx context.Context, userID int, paymentMethodID string) error
	SetDefaultPaymentMethod(ctx context.Context, userID int, paymentMethodID string) error
}

type Service struct {
	userRepo   repository.UserRepository
	integrator gateway.Integrator
}

func NewService(userRepo repository.UserRepository, integrator gateway.Integrator) AccountManager {
	return &Service{
		userRepo:   userRepo,
		integrator: integrator,
	}
}

func (s *Service) CreateSubscription(ctx context.Context, userID int, plan string) error {
	if plan == "" {
		return NewAccountError(ErrMissingPayload, apiErrors.ErrMissingRequiredData, "Plano é obrigatório")
	}

	return s.invokeForUser(ctx, userID, gateway.ActionCreateSubscription, map[string]interface{}{
		"plan": plan,
	})
}

func (s *Service) CancelSubscription(ctx context.Context, userID int) error {
	return s.invokeForUser(ctx, userID, gateway.ActionCancelSubscription, nil)
}

// DeleteAccount cancela a conta no serviço de cobrança e marca o usuário
// como removido no banco. A remoção local só acontece depois que o
// serviço externo confirma.
func (s *Service) DeleteAccount(ctx context.Context, userID int) error {
	if err := s.invokeForUser(ctx, userID, gateway.ActionDeleteAccount, nil); err != nil {
		return err
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao buscar usuário para remoção")
	}
	if user == nil {
		return NewAccountErrorWithID(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	user.Active = false
	user.Deleted = true
	if err := s.userRepo.UpdateUser(user); err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao marcar usuário como removido")
	}

	return nil
}

func (s *Service) AddPaymentMethod(ctx context.Context, userID int, paymentMethodID string) error {
	if paymentMethodID == "" {
		return NewAccountError(ErrMissingPayload, apiErrors.ErrMissingRequiredData, "Método de pagamento é obrigatório")
	}

	return s.invokeForUser(ctx, userID, gateway.ActionAddPaymentMethod, map[string]interface{}{
		"payment_method_id": paymentMethodID,
	})
}

func (s *Service) RemovePaymentMethod(ctx context.Context, userID int, paymentMethodID string) error {
	if paymentMethodID == "" {
		return NewAccountError(ErrMissingPayload, apiErrors.ErrMissingRequiredData, "Método de pagamento é obrigatório")
	}

	return s.invokeForUser(ctx, userID, gateway.ActionRemovePaymentMethod, map[string]interface{}{
		"payment_method_id": paymentMethodID,
	})
}

func (s *Service) SetDefaultPaymentMethod(ctx context.Context, userID int, paymentMethodID string) error {
	if paymentMethodID == "" {
		return NewAccountError(ErrMissingPayload, apiErrors.ErrMissingRequiredData, "Método de pagamento é obrigatório")
	}

	return s.invokeForUser(ctx, userID, gateway.ActionSetDefaultPaymentMethod, map[string]interface{}{
		"payment_method_id": paymentMethodID,
	})
}

// invokeForUser valida o usuário e repassa a ação ao serviço de cobrança
func (s *Service) invokeForUser(ctx context.Context, userID int, action string, payload map[string]interface{}) error {
	if userID == 0 {
		return NewAccountError(ErrUserIDRequired, apiErrors.ErrMissingRequiredData, "ID do usuário é obrigatório")
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewAccountErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "Erro ao buscar usuário no banco de dados")
	}
	if user == nil {
		return NewAccountErrorWithID(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "Usuário não encontrado")
	}

	if payload == nil {
		payload = map[string]interface{}{}
	}
	payload["user_id"] = user.ID
	payload["email"] = user.Email

	resp, err := s.integrator.Invoke(ctx, action, payload)
	if err != nil {
		logrus.Errorf("Erro ao executar ação %s no serviço de cobrança para o usuário %d: %v", action, userID, err)
		return NewAccountErrorWithID(ErrGatewayIntegration, apiErrors.ErrExternalService, userID, "Falha ao comunicar com o serviço de cobrança")
	}

	if !resp.Success {
		return NewAccountErrorWithID(ErrGatewayRejected, apiErrors.ErrExternalService, userID, resp.Message)
	}

	return nil
}
