// Package template holds the notification template set: one message per
// order status plus the reserved company entry, with built-in defaults.
package template

import (
	"sort"

	"servis/internal/pkg/errs"
)

// CompanyKey is the reserved status key whose message holds the shop's
// display name instead of a transition template.
const CompanyKey = "company"

// DefaultCompany is the display name used until the store provides one.
const DefaultCompany = "Mobilni Servis Šabac"

// DefaultMessages returns the built-in templates for the known statuses.
// They are used until persisted rows override them, and they are what gets
// written back when the backing table turns out to be empty.
func DefaultMessages() map[string]string {
	return map[string]string{
		"primljen": "📱 Primljeno na servis!\nKorisnik: {{ime}}\nModel: {{brand}} {{model}}\nIMEI: {{imei}}\nProblem: {{opis}}\nRok: {{rok}}\n\nHvala!\n{{company}}",
		"neuspeh":  "⚠️ Nažalost, popravka uređaja {{brand}} {{model}} (IMEI: {{imei}}) nije uspela.\n{{company}}",
		"zavrsen":  "✅ Popravka završena! {{brand}} {{model}} (IMEI: {{imei}}) spreman za preuzimanje.\n{{company}}",
	}
}

// Entry is one persisted template row: a status key and its message.
// The CompanyKey entry carries the company name in its message.
type Entry struct {
	Status  string
	Message string
}

// Set is the resolved template configuration with the precedence
// built-in defaults < persisted rows < in-session edits.
// Set itself is not safe for concurrent use; the session layer wraps it.
type Set struct {
	company  string
	messages map[string]string
}

// NewSet returns a Set holding only the built-in defaults.
func NewSet() *Set {
	return &Set{
		company:  DefaultCompany,
		messages: DefaultMessages(),
	}
}

// Apply overlays entries onto the set. A CompanyKey entry replaces the
// company name; every other entry replaces the message for its status.
// Used both for persisted rows at session start and for in-session edits.
func (s *Set) Apply(entries []Entry) {
	for _, e := range entries {
		if e.Status == CompanyKey {
			if e.Message != "" {
				s.company = e.Message
			}
			continue
		}
		s.messages[e.Status] = e.Message
	}
}

// Resolve returns the message bound to the status, or the empty string when
// nothing is bound. An empty message means no notification goes out.
func (s *Set) Resolve(status string) string {
	return s.messages[status]
}

// Company returns the shop's display name.
func (s *Set) Company() string {
	return s.company
}

// SetCompany replaces the shop's display name.
func (s *Set) SetCompany(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	s.company = name
	return nil
}

// Entries returns every template row plus the CompanyKey row, the exact shape
// the store persists. Rows come back sorted by status so persistence order
// is stable.
func (s *Set) Entries() []Entry {
	statuses := make([]string, 0, len(s.messages))
	for status := range s.messages {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	entries := make([]Entry, 0, len(statuses)+1)
	for _, status := range statuses {
		entries = append(entries, Entry{Status: status, Message: s.messages[status]})
	}
	entries = append(entries, Entry{Status: CompanyKey, Message: s.company})
	return entries
}

// Clone returns an independent copy of the set.
func (s *Set) Clone() *Set {
	messages := make(map[string]string, len(s.messages))
	for k, v := range s.messages {
		messages[k] = v
	}
	return &Set{company: s.company, messages: messages}
}
