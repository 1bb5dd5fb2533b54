package service

import (
	"fmt"
	"html"
	"time"

	"github.com/neuralforge-ai/consultation-api/internal/entity"
)

// CompanyPlaceholder substitutes an omitted company field in rendered bodies.
const CompanyPlaceholder = "Not provided"

const receivedAtLayout = "2006-01-02 15:04:05"

// The renderers below are pure: submission plus receipt timestamp in,
// message body out. All user-supplied fields are HTML-escaped.

func RenderNotificationText(c entity.Consultation, receivedAt time.Time) string {
	return fmt.Sprintf(`New Consultation Request

Name: %s
Email: %s
Company: %s

Message:
%s

Received at: %s
`,
		c.Name,
		c.Email,
		companyOrPlaceholder(c),
		c.Message,
		receivedAt.Format(receivedAtLayout),
	)
}

func RenderNotificationHTML(c entity.Consultation, receivedAt time.Time) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h2 style="color: #667eea; border-bottom: 2px solid #667eea; padding-bottom: 10px;">
        New Consultation Request
      </h2>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <p><strong>Name:</strong> %s</p>
        <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
        <p><strong>Company:</strong> %s</p>
      </div>

      <div style="background-color: #ffffff; padding: 20px; border: 1px solid #e9ecef; border-radius: 8px;">
        <h3 style="color: #495057; margin-top: 0;">Message:</h3>
        <p style="white-space: pre-wrap;">%s</p>
      </div>

      <div style="margin-top: 20px; padding-top: 20px; border-top: 1px solid #e9ecef; color: #6c757d; font-size: 14px;">
        <p>Received at: %s</p>
      </div>
    </div>
  </body>
</html>`,
		html.EscapeString(c.Name),
		html.EscapeString(c.Email),
		html.EscapeString(c.Email),
		html.EscapeString(companyOrPlaceholder(c)),
		html.EscapeString(c.Message),
		receivedAt.Format(receivedAtLayout),
	)
}

func RenderConfirmationHTML(c entity.Consultation) string {
	return fmt.Sprintf(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <div style="text-align: center; margin-bottom: 30px;">
        <h1 style="color: #667eea; margin: 0;">Neural<span style="color: #764ba2;">Forge</span></h1>
        <p style="color: #6c757d; margin-top: 5px;">Intelligence at Scale</p>
      </div>

      <h2 style="color: #495057;">Thank you for reaching out, %s!</h2>

      <p>We've received your consultation request and appreciate your interest in NeuralForge AI solutions.</p>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin: 20px 0;">
        <h3 style="color: #667eea; margin-top: 0;">What happens next?</h3>
        <ul style="color: #495057;">
          <li>Our team will review your request within 24 hours</li>
          <li>A specialist will reach out to schedule a consultation</li>
          <li>We'll prepare a customized AI solution proposal for your needs</li>
        </ul>
      </div>

      <p>In the meantime, feel free to explore our website for more information about our AI and data science services.</p>

      <div style="margin-top: 40px; padding-top: 20px; border-top: 1px solid #e9ecef; text-align: center; color: #6c757d; font-size: 14px;">
        <p>© 2024 NeuralForge AI. All rights reserved.</p>
        <p>This is an automated response. Please do not reply to this email.</p>
      </div>
    </div>
  </body>
</html>`,
		html.EscapeString(c.Name),
	)
}

func companyOrPlaceholder(c entity.Consultation) string {
	if c.Company == "" {
		return CompanyPlaceholder
	}

	return c.Company
}
