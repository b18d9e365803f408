package mailer

import (
	"context"
	"fmt"
	"html"
	"strings"

	"kayan/internal/config"
	"kayan/internal/model"

	"github.com/rs/zerolog/log"
)

// EmailLogStore persists delivery attempts
type EmailLogStore interface {
	SaveEmailLog(ctx context.Context, l *model.EmailLog) error
}

// Notifier composes and sends the notification emails for new submissions.
// Every attempt, successful or not, gets an email_logs row; failures are
// logged and never retried, and never propagate to the caller.
type Notifier struct {
	mailer Mailer
	logs   EmailLogStore
	cfg    *config.MailConfig
}

// NewNotifier creates a new Notifier
func NewNotifier(mailer Mailer, logs EmailLogStore, cfg *config.MailConfig) *Notifier {
	return &Notifier{
		mailer: mailer,
		logs:   logs,
		cfg:    cfg,
	}
}

// NotifyContactMessage sends the admin notification for a new contact
// message, plus an auto-reply to the sender
func (n *Notifier) NotifyContactMessage(ctx context.Context, m *model.ContactMessage) {
	subject := fmt.Sprintf("رسالة جديدة من %s - موقع كيان الخليج", m.Name)
	body := contactNotificationBody(m)
	n.send(ctx, n.cfg.AdminEmail, subject, body, model.EmailTypeContactNotification, m.ID)

	n.send(ctx, m.Email, "شكراً لك - كيان الخليج للصناعة", contactAutoReplyBody(m.Name), model.EmailTypeAutoReply, m.ID)
}

// NotifyTestimonial sends the admin notification for a new testimonial, plus
// an auto-reply when the reviewer left an address
func (n *Notifier) NotifyTestimonial(ctx context.Context, t *model.Testimonial) {
	subject := fmt.Sprintf("تقييم جديد من %s - موقع كيان الخليج", t.Name)
	body := testimonialNotificationBody(t)
	n.send(ctx, n.cfg.AdminEmail, subject, body, model.EmailTypeTestimonialNotification, t.ID)

	if t.Email != "" {
		n.send(ctx, t.Email, "شكراً لتقييمك - كيان الخليج للصناعة", testimonialAutoReplyBody(t.Name), model.EmailTypeAutoReply, t.ID)
	}
}

func (n *Notifier) send(ctx context.Context, to, subject, body, emailType string, relatedID int64) {
	entry := &model.EmailLog{
		ToEmail:   to,
		Subject:   subject,
		Type:      emailType,
		Status:    model.EmailStatusSent,
		RelatedID: relatedID,
	}

	if err := n.mailer.Send(ctx, to, subject, body); err != nil {
		log.Error().Err(err).Str("to", to).Str("type", emailType).Msg("Failed to send notification email")
		entry.Status = model.EmailStatusFailed
		entry.ErrorMessage = err.Error()
	}

	if err := n.logs.SaveEmailLog(ctx, entry); err != nil {
		log.Error().Err(err).Str("type", emailType).Msg("Failed to record email log")
	}
}

func contactNotificationBody(m *model.ContactMessage) string {
	var b strings.Builder
	b.WriteString(`<html dir="rtl" lang="ar"><body>`)
	b.WriteString("<h1>رسالة جديدة من موقع كيان الخليج</h1>")
	fmt.Fprintf(&b, "<p><strong>الاسم:</strong> %s</p>", html.EscapeString(m.Name))
	fmt.Fprintf(&b, "<p><strong>البريد الإلكتروني:</strong> %s</p>", html.EscapeString(m.Email))
	if m.Phone != "" {
		fmt.Fprintf(&b, "<p><strong>رقم الهاتف:</strong> %s</p>", html.EscapeString(m.Phone))
	}
	fmt.Fprintf(&b, "<p><strong>الرسالة:</strong></p><div>%s</div>", html.EscapeString(m.Message))
	b.WriteString("<p>تم إرسال هذه الرسالة تلقائياً من موقع كيان الخليج للصناعة</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func testimonialNotificationBody(t *model.Testimonial) string {
	serviceName := model.ServiceNames[t.Service]
	if serviceName == "" {
		serviceName = t.Service
	}
	stars := strings.Repeat("⭐", t.Rating) + strings.Repeat("☆", 5-t.Rating)

	var b strings.Builder
	b.WriteString(`<html dir="rtl" lang="ar"><body>`)
	b.WriteString("<h1>تقييم جديد من موقع كيان الخليج</h1>")
	fmt.Fprintf(&b, "<p><strong>الاسم:</strong> %s</p>", html.EscapeString(t.Name))
	fmt.Fprintf(&b, "<p><strong>الخدمة:</strong> %s</p>", html.EscapeString(serviceName))
	fmt.Fprintf(&b, "<p><strong>التقييم:</strong> %s</p>", stars)
	fmt.Fprintf(&b, "<p><strong>التعليق:</strong></p><div>%s</div>", html.EscapeString(t.Message))
	b.WriteString("</body></html>")
	return b.String()
}

func contactAutoReplyBody(name string) string {
	var b strings.Builder
	b.WriteString(`<html dir="rtl" lang="ar"><body>`)
	fmt.Fprintf(&b, "<h1>شكراً لك %s!</h1>", html.EscapeString(name))
	b.WriteString("<p>نشكرك على تواصلك معنا في كيان الخليج للصناعة. لقد تم استلام رسالتك بنجاح وسنقوم بالرد عليك في أقرب وقت ممكن.</p>")
	b.WriteString("</body></html>")
	return b.String()
}

func testimonialAutoReplyBody(name string) string {
	var b strings.Builder
	b.WriteString(`<html dir="rtl" lang="ar"><body>`)
	fmt.Fprintf(&b, "<h1>شكراً لك %s!</h1>", html.EscapeString(name))
	b.WriteString("<p>نشكرك على تقييمك لخدماتنا في كيان الخليج للصناعة. سيتم مراجعة التقييم قبل النشر.</p>")
	b.WriteString("</body></html>")
	return b.String()
}
