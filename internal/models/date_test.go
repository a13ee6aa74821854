package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOf_TruncatesToUTCDay(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	d := DateOf(time.Date(2024, 3, 10, 2, 0, 0, 0, ist))
	assert.Equal(t, "2024-03-09", d.String())
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"valid", `"2025-07-01"`, "2025-07-01", false},
		{"empty", `""`, "", false},
		{"bad format", `"01/07/2025"`, "", true},
		{"not a string", `20250701`, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}
