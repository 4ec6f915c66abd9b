// Package mailer delivers one-time codes for the identity flows over email.
package mailer

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"github.com/inkpress/inkpress/internal/pkg/clock"
	"github.com/inkpress/inkpress/internal/pkg/instrument"
	"github.com/inkpress/inkpress/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const registrationBody = `
<p>Hello,</p>
<p>Your verification code is <strong>{{.code}}</strong>.</p>
<p>It expires in {{.validity}}. If you did not request this, ignore this email.</p>
<p>— {{.site_name}}</p>`

const resetBody = `
<p>Hello,</p>
<p>Your password reset code is <strong>{{.code}}</strong>.</p>
<p>It expires in {{.validity}}. If you did not request this, ignore this email.</p>
<p>— {{.site_name}}</p>`

type Mailer struct {
	mail     mail.Mail
	clock    clock.Clocker
	ins      instrument.Instrumentation
	siteName string
}

func New(m mail.Mail, clk clock.Clocker, ins instrument.Instrumentation, siteName string) *Mailer {
	return &Mailer{
		mail:     m,
		clock:    clk,
		ins:      ins,
		siteName: siteName,
	}
}

func (m *Mailer) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return m.ins.Tracer("identity.outbound.mailer").Start(ctx, name)
}

func (m *Mailer) SendRegistrationCode(ctx context.Context, to, code string, validity time.Duration) (err error) {
	ctx, span := m.startSpan(ctx, "SendRegistrationCode")
	defer func() { m.endSpan(span, err) }()

	err = m.send(ctx, to, "Verify your "+m.siteName+" account", registrationBody, code, validity)
	return err
}

func (m *Mailer) SendResetCode(ctx context.Context, to, code string, validity time.Duration) (err error) {
	ctx, span := m.startSpan(ctx, "SendResetCode")
	defer func() { m.endSpan(span, err) }()

	err = m.send(ctx, to, "Reset your "+m.siteName+" password", resetBody, code, validity)
	return err
}

func (m *Mailer) send(ctx context.Context, to, subject, tpl, code string, validity time.Duration) error {
	body, err := m.renderTemplate(subject, tpl, map[string]any{
		"code":      code,
		"validity":  validity.Round(time.Second).String(),
		"site_name": m.siteName,
		"year":      m.clock.Now().Format("2006"),
	})
	if err != nil {
		return err
	}

	return m.mail.Send(ctx, mail.Message{
		To:       []string{to},
		Subject:  subject,
		HTMLBody: body,
	})
}

func (m *Mailer) renderTemplate(name, tpl string, data map[string]any) (string, error) {
	t, err := template.New(name).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (m *Mailer) endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
