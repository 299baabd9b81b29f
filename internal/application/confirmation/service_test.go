package confirmation

import (
	"context"
	"errors"
	"testing"

	"github.com/learnnect/otp-backend/internal/domain"
	"github.com/learnnect/otp-backend/internal/infrastructure/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGateway struct{ mock.Mock }

func (m *mockGateway) Send(ctx context.Context, msg email.Message) (email.Dispatch, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(email.Dispatch), args.Error(1)
}

func TestSend_Welcome(t *testing.T) {
	gw := &mockGateway{}
	var sent email.Message
	gw.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(email.Message)
	}).Return(email.Dispatch{EmailID: "em_9"}, nil)

	svc := NewService(gw, "support@learnnect.com")
	d, err := svc.Send(context.Background(), domain.EmailWelcome, "a@x.com", domain.TemplateData{Name: "Alice"})

	require.NoError(t, err)
	assert.Equal(t, "em_9", d.EmailID)
	assert.Equal(t, "a@x.com", sent.To)
	assert.Equal(t, "Learnnect - Support Team <support@learnnect.com>", sent.From)
	assert.Contains(t, sent.HTML, "Alice")
	gw.AssertExpectations(t)
}

func TestSend_NewsletterUsesNewsletterFromName(t *testing.T) {
	gw := &mockGateway{}
	var sent email.Message
	gw.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(email.Message)
	}).Return(email.Dispatch{EmailID: "em_10"}, nil)

	svc := NewService(gw, "support@learnnect.com")
	_, err := svc.Send(context.Background(), domain.EmailNewsletter, "a@x.com", domain.TemplateData{})

	require.NoError(t, err)
	assert.Equal(t, "Learnnect Newsletter <support@learnnect.com>", sent.From)
}

func TestSend_UnknownType_NoDispatch(t *testing.T) {
	gw := &mockGateway{}
	svc := NewService(gw, "support@learnnect.com")

	_, err := svc.Send(context.Background(), domain.EmailType("bogus"), "a@x.com", domain.TemplateData{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	gw.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSend_DevelopmentMode(t *testing.T) {
	svc := NewService(email.NewDevGateway(), "support@learnnect.com")
	d, err := svc.Send(context.Background(), domain.EmailContact, "a@x.com", domain.TemplateData{Message: "hi"})
	require.NoError(t, err)
	assert.True(t, d.Skipped)
}

func TestSend_GatewayFailure(t *testing.T) {
	gw := &mockGateway{}
	gw.On("Send", mock.Anything, mock.Anything).Return(email.Dispatch{}, domain.ErrDispatch)

	svc := NewService(gw, "support@learnnect.com")
	_, err := svc.Send(context.Background(), domain.EmailEnquiry, "a@x.com", domain.TemplateData{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDispatch))
}
