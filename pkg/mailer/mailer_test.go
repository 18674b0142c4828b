package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderOTPMail(t *testing.T) {
	t.Parallel()

	body, err := RenderOTPMail(OTPMailData{
		FirstName:  "sari",
		Code:       "123456",
		TTLMinutes: 5,
		AppName:    "Rumah Peduli CMS",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "5 menit")
	// sprig's title func capitalises the greeting name
	assert.True(t, strings.Contains(body, "Halo Sari"), body)
}
