package mail

import (
	"fmt"
	"html/template"
	"strings"

	"softwarehouse.dev/internal/models"
)

var notifyTmpl = template.Must(template.New("notify").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #333;">New Contact Form Submission</h2>
  <div style="background-color: #f5f5f5; padding: 20px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong></p>
    <div style="background-color: white; padding: 15px; border-radius: 3px; border-left: 4px solid #007bff;">
      {{.Message}}
    </div>
  </div>
  <p style="color: #666; font-size: 12px;">
    This message was sent from the Software House website contact form.
  </p>
</div>`))

var autoReplyTmpl = template.Must(template.New("autoreply").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #007bff;">Thank You for Reaching Out!</h2>
  <p>Dear {{.Name}},</p>
  <p>Thank you for contacting Software House. We have received your message and will get back to you within 24 hours.</p>
  <p>Here's a summary of your message:</p>
  <div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong> {{.Message}}</p>
  </div>
  <p>Best regards,<br>Software House Team</p>
</div>`))

type templateData struct {
	Name    string
	Email   string
	Subject string
	Message template.HTML
}

// NotifyMessage renders the business-notification email for a submission.
func NotifyMessage(to string, msg models.ContactMessage) (Message, error) {
	body, err := render(notifyTmpl, msg)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: "Contact Form: " + msg.Subject,
		HTML:    body,
	}, nil
}

// AutoReplyMessage renders the confirmation email sent back to the sender.
func AutoReplyMessage(msg models.ContactMessage) (Message, error) {
	body, err := render(autoReplyTmpl, msg)
	if err != nil {
		return Message{}, err
	}
	return Message{
		To:      msg.Email,
		Subject: "Thank you for contacting Software House",
		HTML:    body,
	}, nil
}

func render(tmpl *template.Template, msg models.ContactMessage) (string, error) {
	var sb strings.Builder
	err := tmpl.Execute(&sb, templateData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: nl2br(msg.Message),
	})
	if err != nil {
		return "", fmt.Errorf("render %s template: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

// nl2br escapes the message body and converts newlines to <br> so multi-line
// messages keep their formatting in the HTML email.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
