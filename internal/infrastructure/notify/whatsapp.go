package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ZaidAbuSamraa/alaml/internal/infrastructure/config"
)

// Notifier sends a short text message to the business owner. Implementations
// are best-effort: callers log and swallow failures.
type Notifier interface {
	Send(ctx context.Context, message string) error
}

// WhatsAppNotifier delivers messages through a WhatsApp HTTP gateway.
// An unconfigured endpoint turns every send into a logged no-op.
type WhatsAppNotifier struct {
	endpoint   string
	apiKey     string
	adminPhone string
	client     *http.Client
	logger     *zap.Logger
}

// NewWhatsAppNotifier creates a notifier from configuration
func NewWhatsAppNotifier(cfg config.WhatsAppConfig, logger *zap.Logger) *WhatsAppNotifier {
	return &WhatsAppNotifier{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		adminPhone: cfg.AdminPhone,
		client:     &http.Client{Timeout: cfg.Timeout},
		logger:     logger.Named("whatsapp"),
	}
}

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Send posts the message to the gateway
func (n *WhatsAppNotifier) Send(ctx context.Context, message string) error {
	if n.endpoint == "" {
		n.logger.Debug("WhatsApp gateway not configured, skipping dispatch",
			zap.String("message", message))
		return nil
	}

	body, err := json.Marshal(sendRequest{Phone: n.adminPhone, Message: message})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	n.logger.Info("WhatsApp message dispatched", zap.String("phone", n.adminPhone))
	return nil
}

var _ Notifier = (*WhatsAppNotifier)(nil)
