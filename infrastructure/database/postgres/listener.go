package postgres

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	listenerMinReconnect = 10 * time.Second
	listenerMaxReconnect = time.Minute
)

// ChangeListener escuta canais NOTIFY do Postgres e entrega o nome da
// tabela alterada. Triggers no banco emitem pg_notify no canal da tabela
// a cada insert/update/delete. Falhas do canal não são distinguidas de
// ausência de alterações: o intervalo fixo do agendador é a garantia de
// consistência eventual.
type ChangeListener struct {
	listener *pq.Listener
	channels []string
	events   chan string
}

func NewChangeListener(dsn string, channels []string) *ChangeListener {
	listener := pq.NewListener(dsn, listenerMinReconnect, listenerMaxReconnect, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).Warn("Evento do listener de alterações do Postgres com erro")
		}
	})

	return &ChangeListener{
		listener: listener,
		channels: channels,
		events:   make(chan string, 16),
	}
}

// Start registra os canais e repassa notificações até o contexto encerrar
func (l *ChangeListener) Start(ctx context.Context) error {
	for _, channel := range l.channels {
		if err := l.listener.Listen(channel); err != nil {
			return errors.Wrapf(err, "erro ao registrar LISTEN no canal %s", channel)
		}
	}

	logrus.WithField("channels", l.channels).Info("Listener de alterações do Postgres registrado")

	go func() {
		defer close(l.events)

		for {
			select {
			case <-ctx.Done():
				if err := l.listener.Close(); err != nil {
					logrus.WithError(err).Warn("Erro ao fechar listener de alterações")
				}
				return
			case notification := <-l.listener.Notify:
				// Reconexões entregam nil; o ping abaixo cobre esse caso
				if notification == nil {
					continue
				}

				select {
				case l.events <- notification.Channel:
				default:
					// Consumidor ocupado: o ciclo em andamento já vai reagregar
				}
			case <-time.After(90 * time.Second):
				go func() {
					if err := l.listener.Ping(); err != nil {
						logrus.WithError(err).Warn("Ping do listener de alterações falhou")
					}
				}()
			}
		}
	}()

	return nil
}

// Events retorna o canal com os nomes das tabelas alteradas
func (l *ChangeListener) Events() <-chan string {
	return l.events
}
