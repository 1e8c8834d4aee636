package helper

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wedding_invitation/constants"
	"wedding_invitation/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Template{}, &model.PaymentOrder{}, &model.WeddingInvitation{}))
	return db
}

func TestWeddingSlug(t *testing.T) {
	assert.Equal(t, "nguyen-thi-lan-tran-van-nam", WeddingSlug("Trần Văn Nam", "Nguyễn Thị Lan"))
	assert.Equal(t, "nguyen-thi-lan-do-hung", WeddingSlug("Đỗ Hùng 1712345678", "  Nguyễn   Thị Lan "))
	assert.Equal(t, "lan", WeddingSlug("", "Lan"))
	assert.Equal(t, "thiep-cuoi", WeddingSlug("", "  "))
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "Trần Văn Nam", CleanName("Trần Văn Nam 1712345678"))
	assert.Equal(t, "Nam2", CleanName(" Nam2 "))
}

func TestGenerateUniqueWeddingSlug(t *testing.T) {
	db := setupTestDB(t)

	first, err := GenerateUniqueWeddingSlug(db, "Nam", "Lan")
	require.NoError(t, err)
	assert.Equal(t, "lan-nam", first)
	require.NoError(t, db.Create(&model.WeddingInvitation{Slug: first, TemplateID: 1}).Error)

	second, err := GenerateUniqueWeddingSlug(db, "Nam", "Lan")
	require.NoError(t, err)
	assert.Equal(t, "lan-nam-1", second)
	require.NoError(t, db.Create(&model.WeddingInvitation{Slug: second, TemplateID: 1}).Error)

	third, err := GenerateUniqueWeddingSlug(db, "Nam 99", "Lan")
	require.NoError(t, err)
	assert.Equal(t, "lan-nam-2", third)
}

func TestGenerateUniqueWeddingSlug_QueryError(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Migrator().DropTable(&model.WeddingInvitation{}))

	_, err := GenerateUniqueWeddingSlug(db, "Nam", "Lan")
	assert.Error(t, err)

	_, err = CreateWeddingInvitation(db, 1, map[string]any{constants.FIELD_GROOM_NAME: "Nam"}, nil)
	assert.Error(t, err)
}

func TestNewOrderID(t *testing.T) {
	now := time.Unix(1712345678, 0)

	a := NewOrderID(7, now)
	b := NewOrderID(7, now)

	assert.True(t, strings.HasPrefix(a, "TEMPLATE_7_1712345678_"))
	assert.Len(t, a, len("TEMPLATE_7_1712345678_")+6)
	assert.NotEqual(t, a, b)
}

func TestExpirePendingOrders(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()

	old := model.PaymentOrder{OrderID: "OLD", TemplateID: 1, Amount: 1, Status: constants.ORDER_PENDING}
	old.CreatedAt = now.Add(-time.Hour)
	fresh := model.PaymentOrder{OrderID: "FRESH", TemplateID: 1, Amount: 1, Status: constants.ORDER_PENDING}
	fresh.CreatedAt = now
	paid := model.PaymentOrder{OrderID: "PAID", TemplateID: 1, Amount: 1, Status: constants.ORDER_PAID}
	paid.CreatedAt = now.Add(-time.Hour)
	require.NoError(t, db.Create(&[]model.PaymentOrder{old, fresh, paid}).Error)

	n, err := ExpirePendingOrders(db, now.Add(-PendingOrderTTL))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	statuses := map[string]string{}
	var orders []model.PaymentOrder
	require.NoError(t, db.Find(&orders).Error)
	for _, o := range orders {
		statuses[o.OrderID] = o.Status
	}
	assert.Equal(t, constants.ORDER_EXPIRED, statuses["OLD"])
	assert.Equal(t, constants.ORDER_PENDING, statuses["FRESH"])
	assert.Equal(t, constants.ORDER_PAID, statuses["PAID"])
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")

	signed, err := GenerateAccessToken(model.TokenClaim{Username: "admin", Role: constants.ROLE_ADMIN})
	require.NoError(t, err)

	token, err := ParseToken(signed)
	require.NoError(t, err)
	assert.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin", claims["username"])
	assert.Equal(t, constants.ROLE_ADMIN, claims["role"])
}

func TestAccessToken_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateAccessToken(model.TokenClaim{Username: "admin"})
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestCheckAdminCredentials(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	require.NoError(t, err)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD_HASH", hash)

	assert.True(t, CheckAdminCredentials("admin", "matkhau123"))
	assert.False(t, CheckAdminCredentials("admin", "sai"))
	assert.False(t, CheckAdminCredentials("other", "matkhau123"))

	t.Setenv("ADMIN_PASSWORD_HASH", "")
	assert.False(t, CheckAdminCredentials("admin", "matkhau123"))
}

func TestClientIP(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(ClientIP(c))
	})

	cases := []struct {
		headers map[string]string
		want    string
	}{
		{map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.1"}, "203.0.113.5"},
		{map[string]string{"X-Real-IP": "198.51.100.7"}, "198.51.100.7"},
		{map[string]string{"X-Forwarded-For": "2001:db8::1"}, "2001:db8::1"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest("GET", "/", nil)
		for k, v := range tc.headers {
			req.Header.Set(k, v)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(body))
	}
}

func TestCreateWeddingInvitation_CleansNames(t *testing.T) {
	db := setupTestDB(t)
	fields := map[string]any{
		constants.FIELD_GROOM_NAME: "Trần Văn Nam 1712345678",
		constants.FIELD_BRIDE_NAME: "Nguyễn Thị Lan",
		"địa_điểm":                 "Hà Nội",
	}

	inv, err := CreateWeddingInvitation(db, 3, fields, nil)
	require.NoError(t, err)

	assert.Equal(t, "nguyen-thi-lan-tran-van-nam", inv.Slug)
	assert.Equal(t, "Trần Văn Nam", inv.GroomName)
	assert.Equal(t, "Trần Văn Nam", inv.Fields[constants.FIELD_GROOM_NAME])
	assert.Equal(t, "Hà Nội", inv.Fields["địa_điểm"])
	assert.Equal(t, "Trần Văn Nam 1712345678", fields[constants.FIELD_GROOM_NAME])
	assert.Nil(t, inv.OrderID)
	assert.Equal(t, constants.INVITATION_PUBLISHED, inv.Status)
}
