package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "customer", want: RoleCustomer},
		{in: "vendor", want: RoleVendor},
		{in: "delivery", want: RoleDelivery},
		// legacy tag from older backend payloads
		{in: "delivery_boy", want: RoleDelivery},
		{in: "admin", wantErr: true},
		{in: "", wantErr: true},
		{in: "Customer", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMessageStatusValid(t *testing.T) {
	for _, s := range []MessageStatus{StatusSending, StatusSent, StatusDelivered, StatusRead, StatusFailed} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, MessageStatus("queued").Valid())
	assert.False(t, MessageStatus("").Valid())
}

func TestMessagePending(t *testing.T) {
	assert.True(t, (&Message{Status: StatusSending}).Pending())
	assert.True(t, (&Message{Status: StatusFailed}).Pending())
	assert.False(t, (&Message{Status: StatusSent}).Pending())
	assert.False(t, (&Message{Status: StatusRead}).Pending())
}
