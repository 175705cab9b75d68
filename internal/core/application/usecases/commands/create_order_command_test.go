package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"servis/internal/core/application/usecases/commands"
)

func TestNewCreateOrderCommand(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateOrderCommand(
		"Ana", "+381651234567", "Samsung", "S21", "353915101234567", "ne pali se", &due)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "Ana", cmd.Name())
	require.Equal(t, "+381651234567", cmd.Phone())
	require.Equal(t, "Samsung", cmd.Brand())
	require.Equal(t, "S21", cmd.Model())
	require.Equal(t, "353915101234567", cmd.IMEI())
	require.Equal(t, "ne pali se", cmd.Problem())
	require.Equal(t, &due, cmd.DueDate())
}

func TestNewCreateOrderCommand_OptionalFieldsMayBeEmpty(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		"Ana", "+381651234567", "Samsung", "S21", "", "ne pali se", nil)
	require.NoError(t, err)
	require.Empty(t, cmd.IMEI())
	require.Nil(t, cmd.DueDate())
}

func TestNewCreateOrderCommand_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		fields  [6]string
		wantErr error
	}{
		{"missing name", [6]string{"", "+381651234567", "Samsung", "S21", "", "ne pali se"}, commands.ErrNameIsRequired},
		{"missing phone", [6]string{"Ana", "", "Samsung", "S21", "", "ne pali se"}, commands.ErrPhoneIsRequired},
		{"missing brand", [6]string{"Ana", "+381651234567", "", "S21", "", "ne pali se"}, commands.ErrBrandIsRequired},
		{"missing model", [6]string{"Ana", "+381651234567", "Samsung", "", "", "ne pali se"}, commands.ErrModelIsRequired},
		{"missing problem", [6]string{"Ana", "+381651234567", "Samsung", "S21", "", ""}, commands.ErrProblemIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateOrderCommand(
				tt.fields[0], tt.fields[1], tt.fields[2], tt.fields[3], tt.fields[4], tt.fields[5], nil)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
