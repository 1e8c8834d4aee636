package vnpay

const DefaultBankCode = "VNPAYQR"

var bankCodes = map[string]string{
	"VNPAYQR":    "Thanh toán quét mã QR",
	"VNBANK":     "Thẻ ATM - Tài khoản ngân hàng nội địa",
	"INTCARD":    "Thẻ thanh toán quốc tế",
	"VISA":       "Thẻ VISA",
	"MASTERCARD": "Thẻ MASTERCARD",
	"JCB":        "Thẻ JCB",
	"VCB":        "Ngân hàng TMCP Ngoại Thương Việt Nam",
	"TCB":        "Ngân hàng TMCP Kỹ Thương Việt Nam",
	"MB":         "Ngân hàng TMCP Quân Đội",
	"VIB":        "Ngân hàng TMCP Quốc Tế Việt Nam",
	"ICB":        "Ngân hàng TMCP Công Thương Việt Nam",
	"EXB":        "Ngân hàng TMCP Xuất Nhập Khẩu Việt Nam",
	"ACB":        "Ngân hàng TMCP Á Châu",
	"HDB":        "Ngân hàng TMCP Phát Triển Thành phố Hồ Chí Minh",
	"MSB":        "Ngân hàng TMCP Hàng Hải",
	"NVB":        "Ngân hàng TMCP Nam Việt",
	"VAB":        "Ngân hàng TMCP Việt Á",
	"VPB":        "Ngân hàng TMCP Việt Nam Thịnh Vượng",
	"SCB":        "Ngân hàng TMCP Sài Gòn",
	"BIDV":       "Ngân hàng TMCP Đầu tư và Phát triển Việt Nam",
}

// BankCodes returns a copy of the payment channel table.
func BankCodes() map[string]string {
	out := make(map[string]string, len(bankCodes))
	for k, v := range bankCodes {
		out[k] = v
	}
	return out
}

func IsKnownBankCode(code string) bool {
	_, ok := bankCodes[code]
	return ok
}
