package registration

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Werneck0live/cadastro-empresa-acessivel/internal/models"
)

// Eventos são best-effort: falha de publicação só gera log.
func (s *Service) publishEvent(acao string, c *models.Company) {
	if s.pub == nil || c == nil {
		return
	}
	empresa := c.Name
	if empresa == "" {
		empresa = c.Email
	}
	s.publish(fmt.Sprintf("%s de EMPRESA %s", acao, empresa), amqp.Table{
		"action":     strings.ToLower(acao),
		"company_id": c.ID,
		"email":      c.Email,
		"nome":       empresa,
		"timestamp":  s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) publishAccessibilityEvent(companyID int64) {
	if s.pub == nil {
		return
	}
	s.publish("Edição de ACESSIBILIDADE da empresa "+strconv.FormatInt(companyID, 10), amqp.Table{
		"action":     "acessibilidade",
		"company_id": companyID,
		"timestamp":  s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) publish(body string, headers amqp.Table) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.pub.Publish(ctx, body, headers); err != nil {
		s.log.Warn("event_publish_failed", "err", err, "action", headers["action"])
	}
}
