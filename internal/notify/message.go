package notify

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"text/template"
)

var ErrNoRecipient = errors.New("acknowledgement has no recipient email")

var bodyTemplate = template.Must(template.New("ack").Parse(`Dear {{.Name}},

Thank you for submitting your job referral request. We have received the following details:

Tracking token: {{.TokenNo}}
Name:           {{.Name}}
Email:          {{.Email}}
Contact:        {{.Contact}}
Batch:          {{.Batch}}
Location:       {{.Location}}
Skillset:       {{.Skillset}}
Company:        {{.Company}}
Experience:     {{.Experience}}
CTC:            {{.CTC}}
Message:        {{.Message}}
{{if .AttachmentName}}Attachment:     {{.AttachmentName}}
{{end}}
Keep your tracking token to view, update or delete your request later.

Regards,
Alumni Job Referral Team
`))

func subject(ack Acknowledgement) string {
	return "Job referral request received - Tracking token " + ack.TokenNo
}

// BuildMessage renders the acknowledgement as an RFC 5322 message. The stored
// attachment, when present, is added as a base64 MIME part.
func BuildMessage(from string, ack Acknowledgement) ([]byte, error) {
	if strings.TrimSpace(ack.Email) == "" {
		return nil, ErrNoRecipient
	}

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, ack); err != nil {
		return nil, fmt.Errorf("BuildMessage(): failed to render body: %w", err)
	}

	var msg bytes.Buffer
	if from != "" {
		fmt.Fprintf(&msg, "From: %s\r\n", from)
	}
	fmt.Fprintf(&msg, "To: %s\r\n", ack.Email)
	fmt.Fprintf(&msg, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject(ack)))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if ack.AttachmentPath == "" {
		msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
		msg.Write(body.Bytes())
		return msg.Bytes(), nil
	}

	data, err := os.ReadFile(ack.AttachmentPath)
	if err != nil {
		return nil, fmt.Errorf("BuildMessage(): failed to read attachment: %w", err)
	}
	name := ack.AttachmentName
	if name == "" {
		name = filepath.Base(ack.AttachmentPath)
	}

	mw := multipart.NewWriter(&msg)
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n\r\n", mw.Boundary())

	textPart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type": {"text/plain; charset=\"utf-8\""},
	})
	if err != nil {
		return nil, err
	}
	textPart.Write(body.Bytes())

	contentType := mime.TypeByExtension(filepath.Ext(name))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filePart, err := mw.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {contentType},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {mime.FormatMediaType("attachment", map[string]string{"filename": name})},
	})
	if err != nil {
		return nil, err
	}
	writeBase64Lines(filePart, data)

	if err := mw.Close(); err != nil {
		return nil, err
	}
	return msg.Bytes(), nil
}

// writeBase64Lines wraps encoded data at 76 characters per RFC 2045.
func writeBase64Lines(w io.Writer, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > 76 {
		w.Write([]byte(encoded[:76] + "\r\n"))
		encoded = encoded[76:]
	}
	w.Write([]byte(encoded + "\r\n"))
}
