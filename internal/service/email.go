package service

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/campusarena/backend/config"
	"github.com/campusarena/backend/internal/models"
)

// EmailService sends account mail over SMTP. When no SMTP host is configured
// the verification link is logged instead, which is how development
// environments run.
type EmailService struct {
	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	appBaseURL   string
}

var _ IEmailService = (*EmailService)(nil)

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		smtpHost:     cfg.SMTPHost,
		smtpPort:     cfg.SMTPPort,
		smtpUsername: cfg.SMTPUsername,
		smtpPassword: cfg.SMTPPassword,
		fromEmail:    cfg.EmailFrom,
		appBaseURL:   cfg.AppBaseURL,
	}
}

func (s *EmailService) SendVerificationEmail(user *models.User, token string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.appBaseURL, token)

	if s.smtpHost == "" {
		log.Printf("SMTP not configured; verification link for %s: %s", user.Email, link)
		return nil
	}

	subject := "Confirm your CampusArena registration"
	body := fmt.Sprintf("Hi %s,\r\n\r\nConfirm your email to finish registering:\r\n%s\r\n", user.FullName, link)
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.fromEmail, user.Email, subject, body))

	auth := smtp.PlainAuth("", s.smtpUsername, s.smtpPassword, s.smtpHost)
	addr := fmt.Sprintf("%s:%s", s.smtpHost, s.smtpPort)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{user.Email}, msg); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}
