package services

import (
	"fmt"
	"strings"
	"time"

	"servis/internal/core/domain/model/order"
)

const receiptDivider = "==================="

// RenderReceipt produces the plain-text pickup receipt for an order, the
// slip the shop prints and hands over with the device. now is passed in so
// rendering stays deterministic.
func RenderReceipt(o *order.Order, company string, now time.Time) string {
	imei := o.Device().IMEI()
	if imei == "" {
		imei = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", company, receiptDivider)
	fmt.Fprintf(&b, "Korisnik: %s\n", o.Customer().Name())
	fmt.Fprintf(&b, "Uređaj: %s %s\n", o.Device().Brand(), o.Device().Model())
	fmt.Fprintf(&b, "IMEI: %s\n", imei)
	fmt.Fprintf(&b, "Problem: %s\n", o.Problem())
	fmt.Fprintf(&b, "Status: %s\n", strings.ToUpper(o.Status().String()))
	fmt.Fprintf(&b, "Datum: %s\n", now.Format("02.01.2006"))
	fmt.Fprintf(&b, "Br. naloga: #%s\n", strings.ToUpper(o.ShortID()))
	fmt.Fprintf(&b, "%s\nHvala na poverenju!\n", receiptDivider)
	return b.String()
}
