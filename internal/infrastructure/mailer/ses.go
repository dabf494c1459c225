// Package mailer sends interview-readiness notifications to HR over SES.
// Notification failures are logged by callers and never fail a request.
package mailer

import (
	"context"
	"fmt"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/google/uuid"
)

type SESNotifier struct {
	client *ses.Client
	from   string
	to     string
}

func NewSESNotifier(ctx context.Context, region, from, to string) (*SESNotifier, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESNotifier{client: ses.NewFromConfig(cfg), from: from, to: to}, nil
}

func (n *SESNotifier) NotifyInterviewReady(ctx context.Context, employeeID string, positionID uuid.UUID, score int) error {
	subject := fmt.Sprintf("Interview-ready candidate: employee %s", employeeID)
	body := fmt.Sprintf(
		"Employee %s scored %d against position %s and is classified interview-ready.",
		employeeID, score, positionID,
	)

	_, err := n.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: &n.from,
		Destination: &sestypes.Destination{
			ToAddresses: []string{n.to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: &subject},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: &body},
			},
		},
	})
	return err
}
