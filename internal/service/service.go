package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
	"github.com/neuralforge-ai/consultation-api/pkg/config"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Sender interface {
	Send(subject, to, textBody, htmlBody string) error
}

type Producer interface {
	ConsultationReceived(ctx context.Context, c entity.Consultation, receivedAt time.Time)
}

type Service struct {
	cfg      config.Config
	sender   Sender
	producer Producer // nil when event publishing is disabled
}

func New(cfg config.Config, sender Sender, producer Producer) *Service {
	return &Service{
		cfg:      cfg,
		sender:   sender,
		producer: producer,
	}
}

// SubmitConsultation validates the submission, then attempts two
// independent sends: the internal notification and the submitter
// confirmation. Each send is a single best-effort try over its own relay
// session; one failing does not abort the other. The submission is
// accepted as long as at least one send went through.
func (s *Service) SubmitConsultation(ctx context.Context, c entity.Consultation) error {
	if err := Validate(c); err != nil {
		return err
	}

	l := loggerFromCtx(ctx)
	receivedAt := time.Now()

	notificationErr := s.sender.Send(
		fmt.Sprintf("New Consultation Request from %s", c.Name),
		s.cfg.ReceiverEmail,
		RenderNotificationText(c, receivedAt),
		RenderNotificationHTML(c, receivedAt),
	)
	if notificationErr != nil {
		l.Error("send notification email", "error", notificationErr, "from", c.Email)
	} else {
		l.Info("notification email sent", "to", s.cfg.ReceiverEmail, "from", c.Email)
	}

	confirmationErr := s.sender.Send(
		"Thank you for your consultation request - NeuralForge AI",
		c.Email,
		"",
		RenderConfirmationHTML(c),
	)
	if confirmationErr != nil {
		l.Error("send confirmation email", "error", confirmationErr, "to", c.Email)
	} else {
		l.Info("confirmation email sent", "to", c.Email)
	}

	if notificationErr != nil && confirmationErr != nil {
		return entity.ErrAllSendsFailed
	}

	if s.producer != nil {
		s.producer.ConsultationReceived(ctx, c, receivedAt)
	}

	return nil
}

func loggerFromCtx(ctx context.Context) *slog.Logger {
	l, ok := ctx.Value(entity.CtxKeyLogger{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}

	return l
}
