package notification

import (
	"strings"
	"testing"
	"time"

	"delicious-bites/internal/messaging"
)

func TestFormatNotification(t *testing.T) {
	ts := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		notification *messaging.Notification
		want         []string
	}{
		{
			name: "order confirmation",
			notification: &messaging.Notification{
				Kind:         messaging.KindConfirmation,
				OrderID:      1001,
				CustomerName: "John Doe",
				ItemName:     "Custom Pizza",
				Amount:       12.49,
				Timestamp:    ts,
			},
			want: []string{"Order #1001 confirmed", "John Doe", "Custom Pizza", "$12.49"},
		},
		{
			name: "preparing status",
			notification: &messaging.Notification{
				Kind:         messaging.KindStatus,
				OrderID:      1002,
				CustomerName: "Jane Doe",
				Status:       "Preparing",
				Timestamp:    ts,
			},
			want: []string{"Order #1002", "being prepared"},
		},
		{
			name: "cancelled status",
			notification: &messaging.Notification{
				Kind:         messaging.KindStatus,
				OrderID:      1003,
				CustomerName: "Jane Doe",
				Status:       "Cancelled",
				Timestamp:    ts,
			},
			want: []string{"Order #1003", "cancelled"},
		},
		{
			name: "unknown status falls back to generic line",
			notification: &messaging.Notification{
				Kind:         messaging.KindStatus,
				OrderID:      1004,
				CustomerName: "Jane Doe",
				Status:       "Delayed",
				Timestamp:    ts,
			},
			want: []string{"Order #1004", "Delayed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatNotification(tt.notification)
			for _, fragment := range tt.want {
				if !strings.Contains(got, fragment) {
					t.Errorf("formatNotification() = %q, missing %q", got, fragment)
				}
			}
			if !strings.Contains(got, "2025-03-14 12:30:00") {
				t.Errorf("formatNotification() = %q, missing timestamp", got)
			}
		})
	}
}
