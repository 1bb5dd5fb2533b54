package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
	"github.com/neuralforge-ai/consultation-api/internal/mocks"
	"github.com/neuralforge-ai/consultation-api/internal/service"
	"github.com/neuralforge-ai/consultation-api/pkg/config"
)

var errRelayDown = errors.New("dial tcp: connection refused")

func testConfig() config.Config {
	return config.Config{
		SMTPServer:    "smtp.example.com",
		SMTPPort:      587,
		SenderEmail:   "noreply@neuralforge.ai",
		SenderName:    "NeuralForge AI",
		ReceiverEmail: "hello@neuralforge.ai",
	}
}

func testConsultation() entity.Consultation {
	return entity.Consultation{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "Acme",
		Message: "We need help with an ML pipeline.",
	}
}

func TestService_SubmitConsultation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	c := testConsultation()

	sender.EXPECT().
		Send("New Consultation Request from Jane Doe", "hello@neuralforge.ai", gomock.Any(), gomock.Any()).
		Return(nil)
	sender.EXPECT().
		Send("Thank you for your consultation request - NeuralForge AI", c.Email, "", gomock.Any()).
		Return(nil)
	producer.EXPECT().
		ConsultationReceived(gomock.Any(), c, gomock.Any())

	s := service.New(testConfig(), sender, producer)

	err := s.SubmitConsultation(context.Background(), c)
	require.NoError(t, err)
}

func TestService_SubmitConsultation_PartialFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		notificationErr error
		confirmationErr error
	}{
		{"Notification fails", errRelayDown, nil},
		{"Confirmation fails", nil, errRelayDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			sender := mocks.NewMockSender(ctrl)
			producer := mocks.NewMockProducer(ctrl)

			c := testConsultation()

			sender.EXPECT().
				Send(gomock.Any(), "hello@neuralforge.ai", gomock.Any(), gomock.Any()).
				Return(tt.notificationErr)
			sender.EXPECT().
				Send(gomock.Any(), c.Email, gomock.Any(), gomock.Any()).
				Return(tt.confirmationErr)
			producer.EXPECT().
				ConsultationReceived(gomock.Any(), c, gomock.Any())

			s := service.New(testConfig(), sender, producer)

			err := s.SubmitConsultation(context.Background(), c)
			require.NoError(t, err)
		})
	}
}

func TestService_SubmitConsultation_AllSendsFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	c := testConsultation()

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errRelayDown).
		Times(2)

	// no ConsultationReceived expectation: a fully failed request is not published

	s := service.New(testConfig(), sender, producer)

	err := s.SubmitConsultation(context.Background(), c)
	require.ErrorIs(t, err, entity.ErrAllSendsFailed)
}

func TestService_SubmitConsultation_InvalidInput(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	// no Send expectations: a rejected request must cause zero sends

	c := testConsultation()
	c.Email = "not-an-email"

	s := service.New(testConfig(), sender, nil)

	err := s.SubmitConsultation(context.Background(), c)
	require.ErrorIs(t, err, entity.ErrValidation)
}

func TestService_SubmitConsultation_ConcurrentCallers(t *testing.T) {
	t.Parallel()

	const callers = 16

	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2 * callers)
	producer.EXPECT().
		ConsultationReceived(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(callers)

	s := service.New(testConfig(), sender, producer)

	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		go func(i int) {
			c := entity.Consultation{
				Name:    fmt.Sprintf("Caller %d", i),
				Email:   fmt.Sprintf("caller%d@example.com", i),
				Message: "We need help with an ML pipeline.",
			}

			errs <- s.SubmitConsultation(context.Background(), c)
		}(i)
	}

	for i := 0; i < callers; i++ {
		require.NoError(t, <-errs)
	}
}

func TestService_SubmitConsultation_NoProducer(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	sender := mocks.NewMockSender(ctrl)

	c := testConsultation()

	sender.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(2)

	s := service.New(testConfig(), sender, nil)

	err := s.SubmitConsultation(context.Background(), c)
	require.NoError(t, err)
}
