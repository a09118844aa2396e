package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/config"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/constants"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/dtos"
	"github.com/poofware/mono-repo/backend/services/housekeeping-service/internal/utils"
)

// EmailSender is satisfied by *sendgrid.Client.
type EmailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// SMSSender is satisfied by the Api field of *twilio.RestClient.
type SMSSender interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// ReportDeliveryService pushes the occupancy report to e-mail and SMS recipients.
type ReportDeliveryService struct {
	cfg     *config.Config
	reports *ReportService
	email   EmailSender
	sms     SMSSender
}

// NewReportDeliveryService accepts nil senders; that sink is then skipped.
func NewReportDeliveryService(cfg *config.Config, reports *ReportService, email EmailSender, sms SMSSender) *ReportDeliveryService {
	return &ReportDeliveryService{cfg: cfg, reports: reports, email: email, sms: sms}
}

func (s *ReportDeliveryService) emailEnabled() bool {
	return s.email != nil && s.cfg.LDFlag_SendgridFromEmail != "" && len(s.cfg.ReportEmailRecipients) > 0
}

func (s *ReportDeliveryService) smsEnabled() bool {
	return s.sms != nil && s.cfg.LDFlag_TwilioFromPhone != "" && len(s.cfg.ReportSMSRecipients) > 0
}

// SendOccupancyReport renders the current occupancy report and sends it
// to every configured recipient. Per-recipient failures are collected;
// the call only fails when nothing could be delivered.
func (s *ReportDeliveryService) SendOccupancyReport(ctx context.Context) (*dtos.ReportDeliveryResponse, error) {
	if !s.emailEnabled() && !s.smsEnabled() {
		return nil, &utils.AppError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "No report recipients are configured",
			Err:        utils.ErrNoReportSinks,
		}
	}

	text, err := s.reports.OccupancyText(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dtos.ReportDeliveryResponse{Emailed: []string{}, Texted: []string{}, Failed: []string{}}

	if s.emailEnabled() {
		html, err := s.reports.OccupancyPrint(ctx)
		if err != nil {
			return nil, err
		}
		subject := fmt.Sprintf(constants.ReportEmailSubjectFormat, s.reports.Today().Format("02-01-2006"))
		from := mail.NewEmail(s.cfg.OrganizationName, s.cfg.LDFlag_SendgridFromEmail)
		for _, addr := range s.cfg.ReportEmailRecipients {
			msg := mail.NewSingleEmail(from, subject, mail.NewEmail("", addr), text, html)
			if s.cfg.LDFlag_SendgridSandboxMode {
				ms := mail.NewMailSettings()
				ms.SetSandboxMode(mail.NewSetting(true))
				msg.MailSettings = ms
			}
			sgResp, sgErr := s.email.Send(msg)
			if sgErr == nil && sgResp != nil && sgResp.StatusCode >= 300 {
				sgErr = fmt.Errorf("sendgrid status %d: %s", sgResp.StatusCode, sgResp.Body)
			}
			if sgErr != nil {
				utils.Logger.WithError(sgErr).Warnf("Occupancy report e-mail to %s failed", addr)
				resp.Failed = append(resp.Failed, addr)
				continue
			}
			resp.Emailed = append(resp.Emailed, addr)
		}
	}

	if s.smsEnabled() {
		for _, phone := range s.cfg.ReportSMSRecipients {
			params := &twilioApi.CreateMessageParams{}
			params.SetTo(phone)
			params.SetFrom(s.cfg.LDFlag_TwilioFromPhone)
			params.SetBody(text)
			if _, smsErr := s.sms.CreateMessage(params); smsErr != nil {
				utils.Logger.WithError(smsErr).Warnf("Occupancy report SMS to %s failed", phone)
				resp.Failed = append(resp.Failed, phone)
				continue
			}
			resp.Texted = append(resp.Texted, phone)
		}
	}

	if len(resp.Emailed) == 0 && len(resp.Texted) == 0 {
		return resp, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Occupancy report could not be delivered",
			Err:        utils.ErrExternalServiceFailure,
		}
	}

	utils.Logger.Infof("Occupancy report delivered: %d e-mails, %d SMS, %d failures",
		len(resp.Emailed), len(resp.Texted), len(resp.Failed))
	return resp, nil
}
