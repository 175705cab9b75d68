package services

import (
	"regexp"
	"strings"
)

// placeholderPattern matches one {{token}} occurrence. Whitespace inside the
// delimiters is tolerated and the token itself is matched case-insensitively
// by lower-casing it before lookup.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)

// MessageContext carries the per-dispatch values a template can reference.
// It is assembled from the order at the moment of a transition and never
// persisted. The due date arrives pre-formatted by the caller.
type MessageContext struct {
	Name    string // {{ime}}
	Brand   string // {{brand}}
	Model   string // {{model}}
	IMEI    string // {{imei}}, rendered as "N/A" when empty
	DueDate string // {{rok}}, pre-formatted date or the word for "soon"
	Problem string // {{opis}}
	Status  string // {{status}}
	OrderID string // {{order_id}}, the short order id suffix
}

// MessageRenderer renders notification templates. The company name is
// renderer configuration rather than context: it comes from the template
// store, not from the order being dispatched.
//
// Rendering is a single pass over the template: each recognized placeholder
// is replaced by its resolver exactly once, so substituted text is never
// re-scanned. Unrecognized placeholders stay verbatim, and recognized
// placeholders with no value resolve to the empty string — with the single
// exception of {{imei}}, which falls back to the literal "N/A".
type MessageRenderer struct {
	company string
}

// NewMessageRenderer creates a renderer bound to the given company name.
func NewMessageRenderer(company string) MessageRenderer {
	return MessageRenderer{company: company}
}

// Render substitutes every recognized placeholder in the template with its
// value from ctx. It is pure and deterministic; an empty template renders to
// the empty string.
func (r MessageRenderer) Render(tmpl string, ctx MessageContext) string {
	if tmpl == "" {
		return ""
	}

	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(match string) string {
		token := strings.ToLower(placeholderPattern.FindStringSubmatch(match)[1])

		switch token {
		case "ime":
			return ctx.Name
		case "brand":
			return ctx.Brand
		case "model":
			return ctx.Model
		case "imei":
			if ctx.IMEI == "" {
				return "N/A"
			}
			return ctx.IMEI
		case "rok":
			return ctx.DueDate
		case "opis":
			return ctx.Problem
		case "status":
			return ctx.Status
		case "order_id":
			return ctx.OrderID
		case "company":
			return r.company
		}

		// Unknown placeholder: leave the original text in place.
		return match
	})
}
