package handler

import (
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fasthttp/websocket"
	contribws "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wedding_invitation/constants"
	"wedding_invitation/database"
	"wedding_invitation/model"
	"wedding_invitation/payment"
)

// serveWebsocket chạy app trên listener thật vì app.Test không upgrade được websocket
func serveWebsocket(t *testing.T, app *fiber.App) string {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	notifier := payment.NewRedisNotifier(client)
	Setup(Deps{
		VNPay:       deps.VNPay,
		Fulfillment: &payment.Fulfillment{DB: database.DB, Notifier: notifier, FrontendURL: testFrontend},
		Notifier:    notifier,
		FrontendURL: testFrontend,
	})

	app.Get("/api/v1/orders/:orderId/ws", contribws.New(OrderStatusWebsocket))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "ws://" + ln.Addr().String()
}

func dialOrder(t *testing.T, base, orderID string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(base+"/api/v1/orders/"+orderID+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func TestOrderStatusWebsocket_ForwardsPaidAndCloses(t *testing.T) {
	app := setupApp(t)
	base := serveWebsocket(t, app)
	out := createPayment(t, app, templateBySlug(t, "hoa-sen-co-dien").ID)

	conn := dialOrder(t, base, out.OrderID)

	// trạng thái hiện tại chỉ được gửi sau khi đã sub kênh Redis
	var current orderStatus
	require.NoError(t, conn.ReadJSON(&current))
	assert.Equal(t, constants.ORDER_PENDING, current.Status)

	query := gatewayCallback(out.OrderID, out.Amount, "00")
	_, raw := doJSON(t, app, http.MethodGet, "/api/v1/vnpay/ipn?"+query.Encode(), nil)
	var ipn model.IPNResponse
	require.NoError(t, json.Unmarshal(raw, &ipn))
	require.Equal(t, constants.IPN_CONFIRM_SUCCESS, ipn.RspCode)

	var event payment.StatusEvent
	require.NoError(t, conn.ReadJSON(&event))
	assert.Equal(t, payment.StatusEvent{
		OrderID:        out.OrderID,
		Status:         constants.ORDER_PAID,
		InvitationSlug: "nguyen-thi-lan-tran-van-nam",
	}, event)

	// PAID là trạng thái cuối, server đóng kết nối
	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestOrderStatusWebsocket_KeepsOpenAfterFailure(t *testing.T) {
	app := setupApp(t)
	base := serveWebsocket(t, app)
	out := createPayment(t, app, templateBySlug(t, "hoa-sen-co-dien").ID)

	conn := dialOrder(t, base, out.OrderID)
	var current orderStatus
	require.NoError(t, conn.ReadJSON(&current))

	for _, code := range []string{"24", "00"} {
		query := gatewayCallback(out.OrderID, out.Amount, code)
		doJSON(t, app, http.MethodGet, "/api/v1/vnpay/ipn?"+query.Encode(), nil)
	}

	var failed, paid payment.StatusEvent
	require.NoError(t, conn.ReadJSON(&failed))
	assert.Equal(t, constants.ORDER_FAILED, failed.Status)
	require.NoError(t, conn.ReadJSON(&paid))
	assert.Equal(t, constants.ORDER_PAID, paid.Status)
}

func TestOrderStatusWebsocket_PaidOrderSendsStatusOnly(t *testing.T) {
	app := setupApp(t)
	base := serveWebsocket(t, app)
	out := createPayment(t, app, templateBySlug(t, "hoa-sen-co-dien").ID)
	query := gatewayCallback(out.OrderID, out.Amount, "00")
	doJSON(t, app, http.MethodGet, "/api/v1/vnpay/ipn?"+query.Encode(), nil)

	conn := dialOrder(t, base, out.OrderID)
	var current orderStatus
	require.NoError(t, conn.ReadJSON(&current))
	assert.Equal(t, constants.ORDER_PAID, current.Status)
	assert.Equal(t, "nguyen-thi-lan-tran-van-nam", current.InvitationSlug)

	_, _, err := conn.ReadMessage()
	assert.Error(t, err)
}

func TestOrderStatusWebsocket_UnknownOrder(t *testing.T) {
	app := setupApp(t)
	base := serveWebsocket(t, app)

	conn := dialOrder(t, base, "TEMPLATE_9_1_ffffff")
	var msg map[string]string
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.ERROR_NOT_FOUND, msg["error"])
}
