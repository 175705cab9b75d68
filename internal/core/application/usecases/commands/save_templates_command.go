package commands

import (
	"errors"
	"sort"

	"servis/internal/core/domain/model/template"
	"servis/internal/pkg/guard"
)

var (
	ErrSaveTemplatesCommandIsNotConstructed = errors.New(
		"SaveTemplatesCommand must be created via NewSaveTemplatesCommand constructor",
	)
	ErrCompanyIsRequired       = errors.New("company name is required")
	ErrTemplateStatusIsInvalid = errors.New("template status key must not be empty or reserved")
)

// SaveTemplatesCommand carries an edited template configuration: the message
// bound to each status plus the company name. The whole configuration is
// saved at once, the way the settings form submits it.
type SaveTemplatesCommand struct { //nolint:recvcheck //using for validation
	company  string
	messages map[string]string

	guard guard.ConstructorGuard
}

// NewSaveTemplatesCommand creates a command to persist the template
// configuration. The company name is required; message bodies may be empty,
// which disables the notification for that status. The reserved company key
// cannot be used as a status.
func NewSaveTemplatesCommand(company string, messages map[string]string) (SaveTemplatesCommand, error) {
	templatesCommand := SaveTemplatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		templatesCommand.setCompany(company),
		templatesCommand.setMessages(messages),
	); err != nil {
		return SaveTemplatesCommand{}, err
	}

	return templatesCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveTemplatesCommandIsNotConstructed if validation fails.
func (c SaveTemplatesCommand) Validate() error {
	return c.guard.Validate(ErrSaveTemplatesCommandIsNotConstructed)
}

// Company returns the shop display name to store under the reserved key.
func (c SaveTemplatesCommand) Company() string {
	return c.company
}

// Entries returns the configuration as rows ready for persistence, sorted by
// status with the company row last.
func (c SaveTemplatesCommand) Entries() []template.Entry {
	statuses := make([]string, 0, len(c.messages))
	for status := range c.messages {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	entries := make([]template.Entry, 0, len(statuses)+1)
	for _, status := range statuses {
		entries = append(entries, template.Entry{Status: status, Message: c.messages[status]})
	}
	entries = append(entries, template.Entry{Status: template.CompanyKey, Message: c.company})
	return entries
}

func (c *SaveTemplatesCommand) setCompany(company string) error {
	if company == "" {
		return ErrCompanyIsRequired
	}

	c.company = company
	return nil
}

func (c *SaveTemplatesCommand) setMessages(messages map[string]string) error {
	copied := make(map[string]string, len(messages))
	for status, message := range messages {
		if status == "" || status == template.CompanyKey {
			return ErrTemplateStatusIsInvalid
		}
		copied[status] = message
	}

	c.messages = copied
	return nil
}
