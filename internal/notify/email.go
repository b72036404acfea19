// Package notify delivers generated documents to users by email.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"planmate-backend/internal/common/config"
	"planmate-backend/internal/common/errors"
	"planmate-backend/internal/common/logger"
)

// SESAPI is the slice of the SES client the sender uses. Kept small so
// tests can mock it.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailSender sends plan-ready notifications through Amazon SES.
type EmailSender struct {
	client SESAPI
	from   string
	logger logger.Logger
}

// NewEmailSender builds the SES client from ambient AWS config.
func NewEmailSender(ctx context.Context, cfg config.EmailConfig, log logger.Logger) (*EmailSender, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &EmailSender{
		client: ses.NewFromConfig(awsCfg),
		from:   cfg.FromEmail,
		logger: log,
	}, nil
}

// NewEmailSenderWithClient wires a prebuilt client, used in tests.
func NewEmailSenderWithClient(client SESAPI, from string, log logger.Logger) *EmailSender {
	return &EmailSender{client: client, from: from, logger: log}
}

const planEmailSubject = "사업계획서가 완성되었습니다"

// SendPlan delivers the generated document as a plain-text email.
func (s *EmailSender) SendPlan(ctx context.Context, to, plan string) error {
	body := fmt.Sprintf("요청하신 사업계획서가 완성되었습니다.\n\n---\n\n%s", plan)

	input := &ses.SendEmailInput{
		Source: aws.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(planEmailSubject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(body),
					Charset: aws.String("UTF-8"),
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		s.logger.WithError(err).Error("failed to send plan email", map[string]interface{}{
			"recipient": to,
		})
		return errors.NewEmailSendFailedError(err)
	}

	s.logger.Info("plan email sent", map[string]interface{}{
		"recipient": to,
	})
	return nil
}
