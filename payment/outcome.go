package payment

import (
	"wedding_invitation/constants"
	"wedding_invitation/model"
)

// Outcome is what applying one gateway callback did to the order.
type Outcome int

const (
	OutcomeInvalidSignature Outcome = iota
	OutcomeOrderNotFound
	OutcomeAmountMismatch
	OutcomeAlreadyConfirmed
	OutcomeFailed
	OutcomeConfirmed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvalidSignature:
		return "invalid_signature"
	case OutcomeOrderNotFound:
		return "order_not_found"
	case OutcomeAmountMismatch:
		return "amount_mismatch"
	case OutcomeAlreadyConfirmed:
		return "already_confirmed"
	case OutcomeFailed:
		return "failed"
	case OutcomeConfirmed:
		return "confirmed"
	}
	return "unknown"
}

// IPNResponse là body trả cho VNPay sau khi xử lý IPN.
func (o Outcome) IPNResponse() model.IPNResponse {
	switch o {
	case OutcomeConfirmed, OutcomeFailed:
		return model.IPNResponse{RspCode: constants.IPN_CONFIRM_SUCCESS, Message: "Confirm Success"}
	case OutcomeAlreadyConfirmed:
		return model.IPNResponse{RspCode: constants.IPN_ALREADY_CONFIRMED, Message: "Order already confirmed"}
	case OutcomeOrderNotFound:
		return model.IPNResponse{RspCode: constants.IPN_ORDER_NOT_FOUND, Message: "Order not found"}
	case OutcomeAmountMismatch:
		return model.IPNResponse{RspCode: constants.IPN_INVALID_AMOUNT, Message: "Invalid amount"}
	case OutcomeInvalidSignature:
		return model.IPNResponse{RspCode: constants.IPN_INVALID_SIGNATURE, Message: "Invalid signature"}
	}
	return IPNError()
}

func IPNError() model.IPNResponse {
	return model.IPNResponse{RspCode: constants.IPN_UNKNOWN_ERROR, Message: "Unknown error"}
}
