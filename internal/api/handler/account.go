package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/nextapps-br/sales-dashboard-api/internal/usecases/account"
	"github.com/nextapps-br/sales-dashboard-api/pkg/apiErrors"
	"github.com/nextapps-br/sales-dashboard-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

type CreateSubscriptionRequest struct {
	Plan string `json:"plan"`
}

type PaymentMethodRequest struct {
	PaymentMethodID string `json:"payment_method_id"`
}

func CreateSubscription(service account.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateSubscription")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var request CreateSubscriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.CreateSubscription(r.Context(), userClaims.UserID, request.Plan); err != nil {
			writeAccountError(w, err, "Erro ao criar assinatura")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func CancelSubscription(service account.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CancelSubscription")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		if err := service.CancelSubscription(r.Context(), userClaims.UserID); err != nil {
			writeAccountError(w, err, "Erro ao cancelar assinatura")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// DeleteAccount cancela a conta no serviço de cobrança e desativa o
// usuário localmente
func DeleteAccount(service account.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAccount")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		if err := service.DeleteAccount(r.Context(), userClaims.UserID); err != nil {
			writeAccountError(w, err, "Erro ao remover conta")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func AddPaymentMethod(service account.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddPaymentMethod")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		var request PaymentMethodRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		if err := service.AddPaymentMethod(r.Context(), userClaims.UserID, request.PaymentMethodID); err != nil {
			writeAccountError(w, err, "Erro ao adicionar método de pagamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func RemovePaymentMethod(service account.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemovePaymentMethod")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		paymentMethodID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.RemovePaymentMethod(r.Context(), userClaims.UserID, paymentMethodID); err != nil {
			writeAccountError(w, err, "Erro ao remover método de pagamento")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func SetDefaultPaymentMethod(service account.AccountManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SetDefaultPaymentMethod")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Não autorizado", nil)
			return
		}

		paymentMethodID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.SetDefaultPaymentMethod(r.Context(), userClaims.UserID, paymentMethodID); err != nil {
			writeAccountError(w, err, "Erro ao definir método de pagamento padrão")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeAccountError converte os erros do contexto de contas em respostas
// padronizadas
func writeAccountError(w http.ResponseWriter, err error, fallback string) {
	logrus.Error(fallback, ": ", err)

	var accountErr *account.AccountError
	if errors.As(err, &accountErr) {
		apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
