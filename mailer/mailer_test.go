package mailer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sendgrid/rest"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/mailer"
	"github.com/linesmerrill/fleetcheck/models"
)

type fakeClient struct {
	sent     []*sgmail.SGMailV3
	response *rest.Response
	err      error
}

func (f *fakeClient) SendWithContext(_ context.Context, email *sgmail.SGMailV3) (*rest.Response, error) {
	f.sent = append(f.sent, email)
	return f.response, f.err
}

func TestNew(t *testing.T) {
	conf := config.Default()
	assert.Nil(t, mailer.New(conf))

	conf.SendgridAPIKey = "SG.test"
	assert.NotNil(t, mailer.New(conf))
}

func TestSendgrid_Send(t *testing.T) {
	client := &fakeClient{response: &rest.Response{StatusCode: 202}}
	m := mailer.NewSendgrid(client, "fleet@example.com")

	err := m.Send(context.Background(), "Sam <sam@example.com>", models.Email{
		Subject: "Vehicle check 2026-10-19 - Van 1",
		Body:    "Vehicle check\nDate: 2026-10-19",
	})
	require.NoError(t, err)
	require.Len(t, client.sent, 1)

	msg := client.sent[0]
	assert.Equal(t, "Vehicle check 2026-10-19 - Van 1", msg.Subject)
	assert.Equal(t, "fleet@example.com", msg.From.Address)
	require.Len(t, msg.Personalizations, 1)
	assert.Equal(t, "sam@example.com", msg.Personalizations[0].To[0].Address)
	assert.Equal(t, "Sam", msg.Personalizations[0].To[0].Name)
	require.Len(t, msg.Content, 2)
	assert.Equal(t, "Vehicle check\nDate: 2026-10-19", msg.Content[0].Value)
	assert.Contains(t, msg.Content[1].Value, "<pre>")
}

func TestSendgrid_SendErrors(t *testing.T) {
	m := mailer.NewSendgrid(&fakeClient{}, "fleet@example.com")
	assert.Error(t, m.Send(context.Background(), "not an address", models.Email{}))

	m = mailer.NewSendgrid(&fakeClient{err: errors.New("dial tcp: timeout")}, "fleet@example.com")
	assert.EqualError(t, m.Send(context.Background(), "a@example.com", models.Email{}), "send mail: dial tcp: timeout")

	m = mailer.NewSendgrid(&fakeClient{response: &rest.Response{StatusCode: 401}}, "fleet@example.com")
	assert.EqualError(t, m.Send(context.Background(), "a@example.com", models.Email{}), "sendgrid returned status 401")
}
