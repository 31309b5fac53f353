package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"fieldops/internal/domain/notification"
	"fieldops/internal/domain/setting"
	"fieldops/internal/shared/config"
	"fieldops/internal/shared/logger"
)

// Dispatcher delivers status-change notifications over SMTP. It honors the
// company's notify_on_status_change switch and per-status template
// overrides; when email is disabled in config it logs and drops the event.
type Dispatcher struct {
	cfg          *config.EmailConfig
	dialer       *gomail.Dialer
	templates    *TemplateStore
	renderer     *Renderer
	settingsRepo setting.Repository
	logger       logger.Interface
}

func NewDispatcher(
	cfg *config.EmailConfig,
	templates *TemplateStore,
	settingsRepo setting.Repository,
	log logger.Interface,
) *Dispatcher {
	return &Dispatcher{
		cfg:          cfg,
		dialer:       gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		templates:    templates,
		renderer:     NewRenderer(),
		settingsRepo: settingsRepo,
		logger:       log,
	}
}

var _ notification.Dispatcher = (*Dispatcher)(nil)

func (d *Dispatcher) DispatchStatusChanged(ctx context.Context, event notification.StatusChangedEvent) error {
	if !d.cfg.Enabled {
		d.logger.Debugw("email disabled, dropping status change notification",
			"job_id", event.JobID, "to_status", event.ToStatus)
		return nil
	}
	if event.CustomerEmail == "" {
		d.logger.Debugw("no customer email on record, skipping notification",
			"job_id", event.JobID)
		return nil
	}

	override, err := d.templateOverride(ctx, event)
	if err != nil {
		return err
	}
	if override == nil {
		// Notifications are switched off for this company.
		return nil
	}

	tmpl := d.templates.Resolve(event.ToStatus, *override)

	subject, err := renderTemplate("subject", tmpl.Subject, event)
	if err != nil {
		return err
	}
	body, err := renderTemplate("body", tmpl.Body, event)
	if err != nil {
		return err
	}
	htmlBody, err := d.renderer.RenderHTML(body)
	if err != nil {
		return err
	}

	return d.send(event.CustomerEmail, subject, htmlBody, body)
}

// templateOverride loads company settings and returns the body override
// for the target status ("" when none). A nil pointer means notifications
// are disabled for the company.
func (d *Dispatcher) templateOverride(ctx context.Context, event notification.StatusChangedEvent) (*string, error) {
	settings, err := d.settingsRepo.GetByCompanyID(ctx, event.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load workshop settings for company %d: %w", event.CompanyID, err)
	}

	override := ""
	if settings != nil {
		if !settings.NotifyOnStatusChange() {
			d.logger.Debugw("status change notifications disabled for company",
				"company_id", event.CompanyID, "job_id", event.JobID)
			return nil, nil
		}
		if body, ok := settings.TemplateFor(event.ToStatus); ok {
			override = body
		}
	}
	return &override, nil
}

func (d *Dispatcher) send(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(d.cfg.FromAddress, d.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := d.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
