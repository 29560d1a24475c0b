package handler

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/nextapps-br/sales-dashboard-api/internal/domain"
	"github.com/sirupsen/logrus"
)

// DashboardWSMessage é o envelope enviado aos telões conectados
type DashboardWSMessage struct {
	Type        string                    `json:"type"` // snapshot ou celebration
	Snapshot    *domain.DashboardSnapshot `json:"snapshot,omitempty"`
	Celebration *domain.CelebrationEvent  `json:"celebration,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DashboardHub mantém as conexões websocket dos telões e repassa o
// resultado de cada ciclo de atualização. Implementa scheduler.Notifier.
type DashboardHub struct {
	mutex   sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

func (h *DashboardHub) NotifySnapshot(snapshot *domain.DashboardSnapshot) {
	h.broadcast(DashboardWSMessage{Type: "snapshot", Snapshot: snapshot})
}

func (h *DashboardHub) NotifyCelebration(event *domain.CelebrationEvent) {
	h.broadcast(DashboardWSMessage{Type: "celebration", Celebration: event})
}

// broadcast envia a mensagem a todos os telões; conexões com erro de
// escrita são derrubadas na hora
func (h *DashboardHub) broadcast(msg DashboardWSMessage) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		if err := client.WriteJSON(msg); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

// DashboardWebSocket faz o upgrade da conexão e mantém o telão inscrito
// até a desconexão. O telão só recebe; mensagens recebidas são lidas
// apenas para detectar o fechamento da conexão.
func DashboardWebSocket(hub *DashboardHub, snapshot func() *domain.DashboardSnapshot) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Warn("Erro no upgrade da conexão websocket do telão")
			return
		}
		defer conn.Close()

		// Entregar o estado atual na conexão, sem esperar o próximo ciclo
		if current := snapshot(); current != nil {
			if err := conn.WriteJSON(DashboardWSMessage{Type: "snapshot", Snapshot: current}); err != nil {
				return
			}
		}

		hub.mutex.Lock()
		hub.clients[conn] = true
		hub.mutex.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}

		hub.mutex.Lock()
		delete(hub.clients, conn)
		hub.mutex.Unlock()
	})
}
