package utils

import (
	"bytes"
	"html/template"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"wedding_invitation/config"
)

// InvitationReadyData dữ liệu cho email báo thiệp đã sẵn sàng
type InvitationReadyData struct {
	OrderID      string
	GroomName    string
	BrideName    string
	TemplateName string
	Amount       int64
	Link         string
}

var invitationReadyTmpl = template.Must(template.New("invitation_ready").Parse(`<!DOCTYPE html>
<html><body style="font-family:sans-serif">
<h2>Thiệp cưới của {{.BrideName}} &amp; {{.GroomName}} đã sẵn sàng</h2>
<p>Mã đơn hàng: <b>{{.OrderID}}</b></p>
<p>Mẫu thiệp: {{.TemplateName}}</p>
<p>Số tiền: {{.Amount}} VNĐ</p>
<p><a href="{{.Link}}">Xem và chia sẻ thiệp</a></p>
</body></html>`))

func RenderInvitationReadyEmail(data InvitationReadyData) (string, error) {
	var body bytes.Buffer
	if err := invitationReadyTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// SMTPMailer gửi email qua gomail. Khi SMTP chưa cấu hình thì bỏ qua.
type SMTPMailer struct {
	Config config.SMTP
}

// SendInvitationReady gửi email (async) để không delay callback thanh toán
func (m SMTPMailer) SendInvitationReady(to string, data InvitationReadyData) {
	if to == "" || !m.Config.Enabled() {
		return
	}
	go func() {
		body, err := RenderInvitationReadyEmail(data)
		if err != nil {
			zap.L().Error("render invitation email", zap.Error(err))
			return
		}

		msg := gomail.NewMessage()
		msg.SetHeader("From", m.Config.From)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", "Thiệp cưới của bạn đã sẵn sàng #"+data.OrderID)
		msg.SetBody("text/html", body)

		d := gomail.NewDialer(m.Config.Host, m.Config.Port, m.Config.Username, m.Config.Password)
		if err := d.DialAndSend(msg); err != nil {
			zap.L().Error("send invitation email", zap.String("orderId", data.OrderID), zap.Error(err))
		}
	}()
}
