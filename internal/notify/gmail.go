package notify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailNotifier sends acknowledgements through the Gmail API as the
// authorised account ("me").
type GmailNotifier struct {
	service *gmail.Service
	from    string
}

// NewGmailNotifier builds a Gmail client from an OAuth client secret file and
// a previously authorised token file. The server never prompts for consent;
// the token must be provisioned out of band.
func NewGmailNotifier(ctx context.Context, credentialsFile, tokenFile, from string) (*GmailNotifier, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("NewGmailNotifier(): unable to read client secret file: %w", err)
	}
	config, err := google.ConfigFromJSON(b, gmail.GmailSendScope)
	if err != nil {
		return nil, fmt.Errorf("NewGmailNotifier(): unable to parse client secret file: %w", err)
	}
	tok, err := tokenFromFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("NewGmailNotifier(): unable to read token file: %w", err)
	}

	return NewGmailNotifierWithOptions(ctx, from, option.WithHTTPClient(config.Client(ctx, tok)))
}

func NewGmailNotifierWithOptions(ctx context.Context, from string, opts ...option.ClientOption) (*GmailNotifier, error) {
	svc, err := gmail.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGmailNotifier(): failed to create Gmail service: %w", err)
	}
	return &GmailNotifier{service: svc, from: from}, nil
}

func (n *GmailNotifier) Notify(ctx context.Context, ack Acknowledgement) error {
	raw, err := BuildMessage(n.from, ack)
	if err != nil {
		return err
	}
	msg := &gmail.Message{Raw: base64.URLEncoding.EncodeToString(raw)}
	if _, err := n.service.Users.Messages.Send("me", msg).Context(ctx).Do(); err != nil {
		return fmt.Errorf("GmailNotifier.Notify(): send failed for token %s: %w", ack.TokenNo, err)
	}
	return nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}
