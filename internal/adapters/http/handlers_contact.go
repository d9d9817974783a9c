package web

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"bigrock/internal/adapters/email"
	contactDomain "bigrock/internal/domain/contact"
)

// handleContact handles POST /api/contact, the demo-request form. The request
// is stored first; the notification email is best effort and never fails the
// submission.
func handleContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	isHTML := isHTMLRequest(r)

	req := contactDomain.Request{
		ID:        generateID(),
		CreatedAt: timeNow(),
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}
		req.Name = r.FormValue("name")
		req.Email = r.FormValue("email")
		req.Company = r.FormValue("company")
		req.Message = r.FormValue("message")
	} else {
		var input struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Company string `json:"company"`
			Message string `json:"message"`
		}
		if err := strictDecode(r, &input); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		req.Name = input.Name
		req.Email = input.Email
		req.Company = input.Company
		req.Message = input.Message
	}

	if err := req.Validate(); err != nil {
		if errors.Is(err, contactDomain.ErrMissingName) ||
			errors.Is(err, contactDomain.ErrInvalidEmail) ||
			errors.Is(err, contactDomain.ErrMissingMessage) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		internalError(w, err)
		return
	}

	if err := stores.ContactStore.Save(ctx, req); err != nil {
		internalError(w, err)
		return
	}

	sendContactNotification(ctx, req)

	if err := gate.TrackEvent(ctx, readConsent(r), "contact_submitted", "contact", "", 0); err != nil {
		slog.Warn("track_event_failed", "error", err.Error())
	}

	if isHTML {
		http.Redirect(w, r, "/?contact=sent#contact", http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": req.ID})
}

// sendContactNotification emails the sales inbox about a new request. A send
// failure is logged; the stored request is the source of truth.
func sendContactNotification(ctx context.Context, req contactDomain.Request) {
	if emailSender == nil || contactRecipient == "" {
		return
	}
	_, err := emailSender.Send(ctx, email.SendRequest{
		To:      []string{contactRecipient},
		From:    emailFromAddress,
		Subject: "New demo request from " + req.Name,
		HTML:    contactEmailHTML(req),
		ReplyTo: req.Email,
	})
	if err != nil {
		slog.Error("contact_notification_failed", "error", err.Error(), "request_id", req.ID)
	}
}

func contactEmailHTML(req contactDomain.Request) string {
	company := req.Company
	if company == "" {
		company = "(not given)"
	}
	return fmt.Sprintf(
		"<h2>New demo request</h2><p><strong>Name:</strong> %s<br><strong>Email:</strong> %s<br><strong>Company:</strong> %s</p><p>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(company),
		html.EscapeString(req.Message),
	)
}
