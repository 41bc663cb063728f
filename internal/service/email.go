package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
	enabled  bool
}

func NewEmailService(host string, port int, username, password, from string, enabled bool) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		enabled:  enabled,
	}
}

func (s *emailService) send(to, subject, body string) error {
	if !s.enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendTeamUpRequestNotification(ctx context.Context, receiverEmail, receiverName, senderName string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s sent you a team-up request on Quick Teams.\n\nLog in to accept or reject it.\n\nBest regards,\nThe Quick Teams Team", receiverName, senderName)
	return s.send(receiverEmail, fmt.Sprintf("New team-up request from %s", senderName), body)
}

func (s *emailService) SendRequestAcceptedNotification(ctx context.Context, senderEmail, senderName, receiverName, groupName string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s accepted your team-up request. Your new group is '%s'.\n\nBest regards,\nThe Quick Teams Team", senderName, receiverName, groupName)
	return s.send(senderEmail, "Your team-up request was accepted", body)
}

func (s *emailService) SendRequestRejectedNotification(ctx context.Context, senderEmail, senderName, receiverName string) error {
	body := fmt.Sprintf("Hello %s,\n\n%s declined your team-up request. You can send a new request to other available collaborators any time.\n\nBest regards,\nThe Quick Teams Team", senderName, receiverName)
	return s.send(senderEmail, "Your team-up request was declined", body)
}
