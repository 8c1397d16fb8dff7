// Package notify delivers the acknowledgement sent to an applicant after a
// referral form is saved.
package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Acknowledgement is everything the applicant submitted plus the tracking
// token and the stored attachment, if any.
type Acknowledgement struct {
	TokenNo        string `json:"tokenNo"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Contact        string `json:"contact"`
	Batch          string `json:"batch"`
	Location       string `json:"location"`
	Skillset       string `json:"skillset"`
	Company        string `json:"company"`
	Experience     string `json:"experience"`
	CTC            string `json:"ctc"`
	Message        string `json:"message"`
	AttachmentName string `json:"attachmentName,omitempty"`
	AttachmentPath string `json:"attachmentPath,omitempty"`
}

type Notifier interface {
	Notify(ctx context.Context, ack Acknowledgement) error
}

// LogNotifier only logs the acknowledgement. Used when no mail transport is
// configured.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Notify(ctx context.Context, ack Acknowledgement) error {
	n.Logger.Info().
		Str("token", ack.TokenNo).
		Str("to", ack.Email).
		Str("attachment", ack.AttachmentName).
		Msg("LogNotifier.Notify(): mail transport not configured, acknowledgement not sent")
	return nil
}
