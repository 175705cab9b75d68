package queries_test

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"servis/internal/core/application/session"
	"servis/internal/core/application/usecases/queries"
	"servis/internal/core/domain/model/kernel"
	"servis/internal/core/domain/model/template"
	"servis/internal/pkg/errs"
)

var receiptColumns = []string{
	"id", "created_at", "status", "problem", "due_date",
	"customer_id", "name", "phone",
	"device_id", "brand", "model", "imei",
}

func TestGetReceiptQueryHandler_Handle(t *testing.T) {
	db, mock := newMockDB(t)

	orderID, err := kernel.UUIDFromString("aaaaaaaa-bbbb-cccc-dddd-eeeeffff0000")
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT(.|\n)+WHERE o.id =`).
		WithArgs(orderID.String()).
		WillReturnRows(sqlmock.NewRows(receiptColumns).
			AddRow(orderID.String(), time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
				"zavrsen", "ne pali se", nil,
				"11111111-2222-3333-4444-555566667777", "Ana", "+381651234567",
				"22222222-3333-4444-5555-666677778888", "Samsung", "S21", ""))

	templates := session.NewTemplateConfig()
	templates.Apply([]template.Entry{{Status: template.CompanyKey, Message: "Servis Centar"}})

	handler := queries.NewGetReceiptQueryHandler(db, templates)
	query, err := queries.NewGetReceiptQuery(orderID)
	require.NoError(t, err)

	receipt, err := handler.Handle(t.Context(), query)
	require.NoError(t, err)

	require.Contains(t, receipt, "Servis Centar")
	require.Contains(t, receipt, "Korisnik: Ana")
	require.Contains(t, receipt, "Uređaj: Samsung S21")
	require.Contains(t, receipt, "IMEI: N/A")
	require.Contains(t, receipt, "Status: ZAVRSEN")
	require.Contains(t, receipt, "Br. naloga: #FFFF0000")
	require.Contains(t, receipt, "Hvala na poverenju!")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetReceiptQueryHandler_Handle_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	orderID := kernel.NewUUID()
	mock.ExpectQuery(`SELECT(.|\n)+WHERE o.id =`).
		WithArgs(orderID.String()).
		WillReturnRows(sqlmock.NewRows(receiptColumns))

	handler := queries.NewGetReceiptQueryHandler(db, session.NewTemplateConfig())
	query, err := queries.NewGetReceiptQuery(orderID)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
