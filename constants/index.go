package constants

const (
	ERROR_INTERNAL_ERROR     = "Lỗi hệ thống, vui lòng thử lại sau"
	DATA_INPUT_IS_NOT_NUMBER = "Tham số phải là số"
	ERROR_NOT_FOUND          = "Không tìm thấy dữ liệu"
	ERROR_INVALID_INPUT      = "Dữ liệu không hợp lệ"
	ERROR_UNAUTHORIZED       = "Bạn không có quyền truy cập"
)

// Trạng thái đơn thanh toán
const (
	ORDER_PENDING = "PENDING"
	ORDER_PAID    = "PAID"
	ORDER_FAILED  = "FAILED"
	ORDER_EXPIRED = "EXPIRED"
)

const PAYMENT_METHOD_VNPAY = "VNPAY"

// Trạng thái thiệp cưới
const (
	INVITATION_DRAFT     = "draft"
	INVITATION_PUBLISHED = "published"
)

var INVITATION_STATUSES = []string{INVITATION_DRAFT, INVITATION_PUBLISHED}

const ROLE_ADMIN = "admin"

// Các khoá field cố định của template
const (
	FIELD_GROOM_NAME = "tên_chú_rể"
	FIELD_BRIDE_NAME = "tên_cô_dâu"
)

// Mã phản hồi IPN cho VNPay
const (
	IPN_CONFIRM_SUCCESS   = "00"
	IPN_ORDER_NOT_FOUND   = "01"
	IPN_ALREADY_CONFIRMED = "02"
	IPN_INVALID_AMOUNT    = "04"
	IPN_INVALID_SIGNATURE = "97"
	IPN_UNKNOWN_ERROR     = "99"
)
