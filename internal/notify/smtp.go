// ShowTimeNow - Movie Ticketing and Personalized Content Platform
// Copyright 2026 ShowTimeNow contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/showtimenow/showtimenow

package notify

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/showtimenow/showtimenow/internal/config"
)

// SMTPSender delivers confirmation email over SMTP for deployments with a
// real mail relay.
type SMTPSender struct {
	cfg         *config.NotifyConfig
	dialTimeout time.Duration
}

// NewSMTPSender creates an SMTP sender from configuration.
func NewSMTPSender(cfg *config.NotifyConfig) *SMTPSender {
	return &SMTPSender{
		cfg:         cfg,
		dialTimeout: 30 * time.Second,
	}
}

// Name returns the sender identifier.
func (s *SMTPSender) Name() string { return "smtp" }

// validateConfig checks the SMTP connection settings.
func (s *SMTPSender) validateConfig() error {
	if s.cfg.SMTPHost == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if s.cfg.SMTPPort <= 0 || s.cfg.SMTPPort > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", s.cfg.SMTPPort)
	}
	if s.cfg.SMTPFrom == "" {
		return fmt.Errorf("SMTP from address is required")
	}
	return nil
}

// Send delivers the confirmation via SMTP.
func (s *SMTPSender) Send(ctx context.Context, params *SendParams) (*SendResult, error) {
	result := &SendResult{Recipient: params.To}

	if err := ValidateEmail(params.To); err != nil {
		result.ErrorMessage = err.Error()
		result.ErrorCode = ErrorCodeInvalidRecipient
		return result, nil //nolint:nilerr // Error is captured in result struct, not returned
	}
	if err := s.validateConfig(); err != nil {
		result.ErrorMessage = err.Error()
		result.ErrorCode = ErrorCodeInvalidConfig
		return result, nil //nolint:nilerr // Error is captured in result struct, not returned
	}

	msg := s.buildMessage(params)
	if err := s.sendSMTP(ctx, params.To, msg); err != nil {
		result.ErrorMessage = err.Error()
		result.ErrorCode = classifySendError(err)
		result.IsTransient = isTransientError(result.ErrorCode)
		return result, nil
	}

	now := time.Now()
	result.Success = true
	result.DeliveredAt = &now
	return result, nil
}

// buildMessage constructs the email message with headers.
func (s *SMTPSender) buildMessage(params *SendParams) string {
	var msg strings.Builder

	fromName := s.cfg.SMTPFromName
	if fromName == "" {
		fromName = "ShowTimeNow"
	}

	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", fromName, s.cfg.SMTPFrom))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", params.To))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", params.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	hasHTML := params.BodyHTML != ""
	hasText := params.BodyText != ""

	switch {
	case hasHTML && hasText:
		boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())
		msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary))
		msg.WriteString("\r\n")

		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(params.BodyText)
		msg.WriteString("\r\n")

		msg.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(params.BodyHTML)
		msg.WriteString("\r\n")

		msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	case hasHTML:
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(params.BodyHTML)
	default:
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(params.BodyText)
	}

	return msg.String()
}

// sendSMTP sends the email via SMTP.
func (s *SMTPSender) sendSMTP(ctx context.Context, to, msg string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	dialer := &net.Dialer{Timeout: s.dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer func() { _ = conn.Close() }() //nolint:errcheck // Best effort cleanup

	client, err := smtp.NewClient(conn, s.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer func() { _ = client.Close() }() //nolint:errcheck // Best effort cleanup

	if s.cfg.SMTPUseTLS {
		tlsConfig := &tls.Config{
			ServerName: s.cfg.SMTPHost,
			MinVersion: tls.VersionTLS12,
		}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.cfg.SMTPUser != "" && s.cfg.SMTPPassword != "" {
		auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPassword, s.cfg.SMTPHost)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.cfg.SMTPFrom); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start message: %w", err)
	}
	if _, err := writer.Write([]byte(msg)); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close message: %w", err)
	}

	// A failed Quit after an accepted message is not a delivery failure.
	_ = client.Quit() //nolint:errcheck

	return nil
}
