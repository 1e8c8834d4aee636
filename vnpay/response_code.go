package vnpay

const (
	LocaleVN = "vn"
	LocaleEN = "en"
)

const (
	ResponseCodeSuccess              = "00"
	ResponseCodeSuspicious           = "07"
	ResponseCodeNoInternetBanking    = "09"
	ResponseCodeAuthFailedTooMany    = "10"
	ResponseCodeTimeout              = "11"
	ResponseCodeAccountLocked        = "12"
	ResponseCodeWrongOTP             = "13"
	ResponseCodeUserCancelled        = "24"
	ResponseCodeInsufficientBalance  = "51"
	ResponseCodeDailyLimitExceeded   = "65"
	ResponseCodeBankMaintenance      = "75"
	ResponseCodeWrongPasswordTooMany = "79"
	ResponseCodeOther                = "99"
)

type localizedMessage struct {
	vn string
	en string
}

var responseMessages = map[string]localizedMessage{
	ResponseCodeSuccess: {
		"Giao dịch thành công",
		"Transaction successful",
	},
	ResponseCodeSuspicious: {
		"Trừ tiền thành công. Giao dịch bị nghi ngờ (liên quan tới lừa đảo, giao dịch bất thường).",
		"Amount deducted. Transaction is flagged as suspicious (possible fraud or unusual activity).",
	},
	ResponseCodeNoInternetBanking: {
		"Giao dịch không thành công do: Thẻ/Tài khoản của khách hàng chưa đăng ký dịch vụ InternetBanking tại ngân hàng.",
		"Transaction failed: the card/account is not registered for Internet Banking.",
	},
	ResponseCodeAuthFailedTooMany: {
		"Giao dịch không thành công do: Khách hàng xác thực thông tin thẻ/tài khoản không đúng quá 3 lần",
		"Transaction failed: card/account verification failed more than 3 times.",
	},
	ResponseCodeTimeout: {
		"Giao dịch không thành công do: Đã hết hạn chờ thanh toán. Xin quý khách vui lòng thực hiện lại giao dịch.",
		"Transaction failed: payment timed out. Please try again.",
	},
	ResponseCodeAccountLocked: {
		"Giao dịch không thành công do: Thẻ/Tài khoản của khách hàng bị khóa.",
		"Transaction failed: the card/account is locked.",
	},
	ResponseCodeWrongOTP: {
		"Giao dịch không thành công do Quý khách nhập sai mật khẩu xác thực giao dịch (OTP). Xin quý khách vui lòng thực hiện lại giao dịch.",
		"Transaction failed: incorrect one-time password (OTP). Please try again.",
	},
	ResponseCodeUserCancelled: {
		"Giao dịch không thành công do: Khách hàng hủy giao dịch",
		"Transaction failed: cancelled by the customer.",
	},
	ResponseCodeInsufficientBalance: {
		"Giao dịch không thành công do: Tài khoản của quý khách không đủ số dư để thực hiện giao dịch.",
		"Transaction failed: insufficient account balance.",
	},
	ResponseCodeDailyLimitExceeded: {
		"Giao dịch không thành công do: Tài khoản của Quý khách đã vượt quá hạn mức giao dịch trong ngày.",
		"Transaction failed: daily transaction limit exceeded.",
	},
	ResponseCodeBankMaintenance: {
		"Ngân hàng thanh toán đang bảo trì.",
		"The paying bank is under maintenance.",
	},
	ResponseCodeWrongPasswordTooMany: {
		"Giao dịch không thành công do: KH nhập sai mật khẩu thanh toán quá số lần quy định. Xin quý khách vui lòng thực hiện lại giao dịch",
		"Transaction failed: payment password entered incorrectly too many times. Please try again.",
	},
	ResponseCodeOther: {
		"Các lỗi khác (lỗi còn lại, không có trong danh sách mã lỗi đã liệt kê)",
		"Other error (not in the documented list of codes).",
	},
}

var invalidSignatureMessage = localizedMessage{
	"Chữ ký không hợp lệ",
	"invalid signature",
}

func (m localizedMessage) in(locale string) string {
	if locale == LocaleEN {
		return m.en
	}
	return m.vn
}

// ResponseMessage maps a vnp_ResponseCode to its documented reason.
func ResponseMessage(code, locale string) string {
	if m, ok := responseMessages[code]; ok {
		return m.in(locale)
	}
	if locale == LocaleEN {
		return "unknown error: " + code
	}
	return "Mã lỗi không xác định: " + code
}
