package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
	"github.com/webfolio/contact-backend/config"
	"github.com/webfolio/contact-backend/logger"
	"github.com/webfolio/contact-backend/types"
)

// NotificationSender dispatches one outbound email per call. A single attempt
// is made; there is no retry and no delivery confirmation beyond the
// transport accepting the send.
type NotificationSender interface {
	SendContactNotification(ctx context.Context, n types.Notification) error
}

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService relays contact notifications through Resend.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

var _ NotificationSender = (*EmailService)(nil)

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", logger.MaskEmail(cfg.FromAddress), "to", logger.MaskEmail(cfg.ToAddress))
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "contact_backend_email_send_duration_seconds",
			Help:    "Time taken to send notification emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contact_backend_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "contact_backend_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// SendContactNotification sends one plain-text notification email. Exactly
// one attempt is made per call.
func (s *EmailService) SendContactNotification(ctx context.Context, n types.Notification) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.config.FromName, n.From),
		To:      []string{n.To},
		Subject: n.Subject,
		Text:    n.Text,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send notification email",
			"error", err,
			"to", logger.MaskEmail(n.To),
			"subject", n.Subject)
		return fmt.Errorf("email send failed: %w", err)
	}

	s.metrics.sentCount.Inc()
	log.Infow("Notification email sent",
		"to", logger.MaskEmail(n.To),
		"subject", n.Subject)

	return nil
}
