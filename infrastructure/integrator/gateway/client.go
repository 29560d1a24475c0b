// Package gateway fala com o serviço externo de cobrança que administra
// assinaturas e métodos de pagamento das contas
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/nextapps-br/sales-dashboard-api/internal/config"
	"github.com/nextapps-br/sales-dashboard-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Ações aceitas pelo serviço de cobrança
const (
	ActionCancelSubscription      = "cancel_subscription"
	ActionCreateSubscription      = "create_subscription"
	ActionDeleteAccount           = "delete_account"
	ActionAddPaymentMethod        = "add_payment_method"
	ActionRemovePaymentMethod     = "remove_payment_method"
	ActionSetDefaultPaymentMethod = "set_default_payment_method"
)

type Request struct {
	Action  string                 `json:"action"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    jsoniter.RawMessage `json:"data,omitempty"`
}

type Integrator interface {
	Invoke(ctx context.Context, action string, payload map[string]interface{}) (*Response, error)
}

type Client struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Integrator {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Invoke envia uma ação nomeada para o serviço de cobrança. A ação
// precisa ser uma das constantes deste pacote; o serviço rejeita as
// demais.
func (c *Client) Invoke(ctx context.Context, action string, payload map[string]interface{}) (*Response, error) {
	if c.cfg.Gateway.URL == "" {
		return nil, fmt.Errorf("serviço de cobrança não configurado")
	}

	body, err := json.Marshal(Request{Action: action, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Gateway.URL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.cfg.Gateway.ServiceKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("serviço de cobrança respondeu %s: %s", resp.Status, raw)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.WithField("action", action).Debugf("Resposta do serviço de cobrança: %s", utils.PrettyJson(raw))
	}

	response := &Response{}
	if err := json.Unmarshal(raw, response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
