package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketState(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TicketState
		wantErr bool
	}{
		{
			name:  "valid open state",
			input: "open",
			want:  StateOpen,
		},
		{
			name:  "valid close state",
			input: "close",
			want:  StateClosed,
		},
		{
			name:    "closed is not a valid spelling",
			input:   "closed",
			wantErr: true,
		},
		{
			name:    "empty state",
			input:   "",
			wantErr: true,
		},
		{
			name:    "unknown state",
			input:   "pending",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTicketState(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTicketState_Toggled(t *testing.T) {
	assert.Equal(t, StateClosed, StateOpen.Toggled())
	assert.Equal(t, StateOpen, StateClosed.Toggled())
}

func TestNewCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := NewCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := NewCategory("new feature")
	assert.Error(t, err, "space-separated spelling is not accepted")

	_, err = NewCategory("")
	assert.Error(t, err)
}
