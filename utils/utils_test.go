package utils

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding_invitation/config"
)

func TestGenerateQRCode(t *testing.T) {
	b, err := GenerateQRCode("https://thiep.example.vn/wedding/lan-nam", 256)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeDataURL(t *testing.T) {
	s, err := QRCodeDataURL("lan-nam", 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(s, "data:image/png;base64,"))
}

func TestRenderInvitationReadyEmail(t *testing.T) {
	body, err := RenderInvitationReadyEmail(InvitationReadyData{
		OrderID:   "TEMPLATE_1_1712345678_abcdef",
		GroomName: "Nam",
		BrideName: "Lan <script>",
		Amount:    2000000,
		Link:      "https://thiep.example.vn/wedding/lan-nam",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "TEMPLATE_1_1712345678_abcdef")
	assert.Contains(t, body, "2000000 VNĐ")
	assert.NotContains(t, body, "<script>")
}

func TestSMTPMailer_DisabledIsNoop(t *testing.T) {
	m := SMTPMailer{Config: config.SMTP{}}
	assert.False(t, m.Config.Enabled())
	m.SendInvitationReady("a@b.vn", InvitationReadyData{})
}
