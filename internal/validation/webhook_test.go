package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWebhookURL(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		url     string
	}{
		{name: "empty disables notifications", url: "", wantErr: nil},
		{name: "blank disables notifications", url: "   ", wantErr: nil},
		{name: "valid discord.com", url: "https://discord.com/api/webhooks/123/abc", wantErr: nil},
		{name: "valid discordapp.com", url: "https://discordapp.com/api/webhooks/123/abc", wantErr: nil},
		{name: "plain http rejected", url: "http://discord.com/api/webhooks/x", wantErr: ErrWebhookScheme},
		{name: "wrong host rejected", url: "https://evil.com/api/webhooks/x", wantErr: ErrWebhookHost},
		{name: "wrong path rejected", url: "https://discord.com/webhooks/123", wantErr: ErrWebhookPath},
		{name: "not a url", url: "definitely not a url", wantErr: ErrWebhookFormat},
		{name: "missing host", url: "https://", wantErr: ErrWebhookFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWebhookURL(tt.url)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
