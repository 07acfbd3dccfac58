package services

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/Nyagwenchar/bmsafaris/config"
	"github.com/Nyagwenchar/bmsafaris/models"
	"github.com/microcosm-cc/bluemonday"
)

const dateFormat = "Jan 02, 2006"

// NotificationService formats and dispatches the site's transactional
// emails. Delivery failure policy differs per flow: review notifications are
// fire-and-forget, booking confirmations degrade to a warning at the caller,
// and contact inquiry failures propagate.
type NotificationService struct {
	mailer Mailer
	cfg    *config.Config
}

func NewNotificationService(mailer Mailer, cfg *config.Config) *NotificationService {
	return &NotificationService{mailer: mailer, cfg: cfg}
}

// NotifyNewReview emails the admin inbox about a freshly submitted review.
// Failures are logged and swallowed so the submission never fails on them.
func (s *NotificationService) NotifyNewReview(review *models.Review) {
	subject := fmt.Sprintf("New Review Submitted by %s", review.DisplayName())
	body := fmt.Sprintf(
		"A new review has been submitted:\n\nName: %s\nContent: %s\nDate: %s\n",
		review.DisplayName(), review.Content, review.CreatedAt.Format(dateFormat),
	)

	msg := &Message{
		From:    s.cfg.DefaultFromEmail,
		To:      s.cfg.AdminEmail,
		Subject: subject,
		Body:    body,
	}
	if err := s.mailer.Send(msg); err != nil {
		log.Printf("failed to send review notification: %v", err)
	}
}

func (s *NotificationService) SendBookingConfirmation(email, fullName, tourName string, attendees int) error {
	subject := fmt.Sprintf("Your booking for %s", tourName)
	body := fmt.Sprintf(
		"Hi %s,\n\nThanks for booking the %s safari for %d guest(s). "+
			"Our team will reach out shortly to confirm the details.\n\n"+
			"Warm regards,\nMB Travels Team\n",
		fullName, tourName, attendees,
	)

	return s.mailer.Send(&Message{
		From:    s.cfg.DefaultFromEmail,
		To:      email,
		Subject: subject,
		Body:    body,
	})
}

// SendInquiry delivers a contact inquiry to the admin inbox, using the
// submitter's address as the from address when one was given.
func (s *NotificationService) SendInquiry(name, email, tourName, message string) error {
	if name == "" {
		name = "Anonymous"
	}
	from := email
	if from == "" {
		from = s.cfg.DefaultFromEmail
	}
	emailLine := email
	if emailLine == "" {
		emailLine = "Not provided"
	}
	tourLine := tourName
	if tourLine == "" {
		tourLine = "Not specified"
	}

	subject := fmt.Sprintf("New Safari Inquiry from %s", name)
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\nTour: %s\n\nMessage:\n%s\n",
		name, emailLine, tourLine, message,
	)

	return s.mailer.Send(&Message{
		From:    from,
		To:      s.cfg.AdminEmail,
		Subject: subject,
		Body:    body,
	})
}

func (s *NotificationService) SendInquiryConfirmation(name, email, tourName, message string) error {
	if name == "" {
		name = "Traveler"
	}
	aboutTour := ""
	if tourName != "" {
		aboutTour = fmt.Sprintf(" about the <strong>%s</strong> safari", html.EscapeString(tourName))
	}

	htmlBody := fmt.Sprintf(`
<html>
  <body style="font-family: Arial, sans-serif; background-color:#f9fafb; padding:20px;">
    <div style="max-width:600px; margin:auto; background:#ffffff; border-radius:8px;">
      <div style="background:#facc15; padding:20px; text-align:center;">
        <h1 style="margin:0; color:#000;">MB Travels</h1>
      </div>
      <div style="padding:20px; color:#333;">
        <p>Hi %s,</p>
        <p>Thanks for reaching out to <strong>MB Travels</strong>! We have received your inquiry%s and our team will get back to you shortly.</p>
        <p><strong>Your message:</strong></p>
        <blockquote style="border-left:4px solid #facc15; margin:10px 0; padding-left:10px; color:#555;">%s</blockquote>
        <p>In the meantime, feel free to explore more tours on our website.</p>
        <p style="margin-top:30px;">Warm regards,<br><strong>MB Travels Team</strong></p>
      </div>
      <div style="background:#111; color:#facc15; text-align:center; padding:10px; font-size:12px;">
        &copy; %d MB Travels. All rights reserved.
      </div>
    </div>
  </body>
</html>`,
		html.EscapeString(name), aboutTour, html.EscapeString(message), time.Now().Year())

	return s.mailer.Send(&Message{
		From:     s.cfg.DefaultFromEmail,
		To:       email,
		Subject:  "We've received your safari inquiry",
		Body:     stripTags(htmlBody),
		HTMLBody: htmlBody,
	})
}

var strictPolicy = bluemonday.StrictPolicy()

// stripTags derives the plain-text alternative from the styled HTML body.
func stripTags(s string) string {
	text := html.UnescapeString(strictPolicy.Sanitize(s))
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
