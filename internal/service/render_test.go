package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
	"github.com/neuralforge-ai/consultation-api/internal/service"
)

var renderStamp = time.Date(2024, 6, 1, 15, 4, 5, 0, time.UTC)

func TestRenderNotificationText(t *testing.T) {
	t.Parallel()

	c := entity.Consultation{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Company: "Acme",
		Message: "We need help with an ML pipeline.",
	}

	body := service.RenderNotificationText(c, renderStamp)

	require.Contains(t, body, "Name: Jane Doe")
	require.Contains(t, body, "Email: jane@example.com")
	require.Contains(t, body, "Company: Acme")
	require.Contains(t, body, "We need help with an ML pipeline.")
	require.Contains(t, body, "Received at: 2024-06-01 15:04:05")
}

func TestRenderNotificationText_CompanyPlaceholder(t *testing.T) {
	t.Parallel()

	c := entity.Consultation{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	}

	body := service.RenderNotificationText(c, renderStamp)

	require.Contains(t, body, "Company: "+service.CompanyPlaceholder)
}

func TestRenderNotificationHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		company  string
		contains string
	}{
		{"Company provided", "Acme", "<p><strong>Company:</strong> Acme</p>"},
		{"Company omitted", "", "<p><strong>Company:</strong> Not provided</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := entity.Consultation{
				Name:    "Jane Doe",
				Email:   "jane@example.com",
				Company: tt.company,
				Message: "Hello",
			}

			body := service.RenderNotificationHTML(c, renderStamp)

			require.Contains(t, body, tt.contains)
			require.Contains(t, body, `<a href="mailto:jane@example.com">jane@example.com</a>`)
			require.Contains(t, body, "Received at: 2024-06-01 15:04:05")
		})
	}
}

func TestRenderNotificationHTML_EscapesInput(t *testing.T) {
	t.Parallel()

	c := entity.Consultation{
		Name:    "<script>alert(1)</script>",
		Email:   "jane@example.com",
		Message: "a < b & b > c",
	}

	body := service.RenderNotificationHTML(c, renderStamp)

	require.NotContains(t, body, "<script>")
	require.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
	require.Contains(t, body, "a &lt; b &amp; b &gt; c")
}

func TestRenderConfirmationHTML(t *testing.T) {
	t.Parallel()

	c := entity.Consultation{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello",
	}

	body := service.RenderConfirmationHTML(c)

	require.Contains(t, body, "Thank you for reaching out, Jane Doe!")
	require.Contains(t, body, "What happens next?")
	require.Contains(t, body, "This is an automated response.")
}
