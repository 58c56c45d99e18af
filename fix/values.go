package fix

// MsgType identifies the kind of a FIX message, carried in tag 35.
type MsgType = byte

// Message type values.
const (
	MsgTypeHeartbeat         MsgType = '0'
	MsgTypeTestRequest       MsgType = '1'
	MsgTypeResendRequest     MsgType = '2'
	MsgTypeReject            MsgType = '3'
	MsgTypeSequenceReset     MsgType = '4'
	MsgTypeLogout            MsgType = '5'
	MsgTypeExecutionReport   MsgType = '8'
	MsgTypeOrderCancelReject MsgType = '9'
	MsgTypeLogon             MsgType = 'A'
	MsgTypeNewOrderSingle    MsgType = 'D'
	MsgTypeOrderCancelReq    MsgType = 'F'
	MsgTypeOrderReplaceReq   MsgType = 'G'
)

// Side values, carried in tag 54.
const (
	SideBuy  byte = '1'
	SideSell byte = '2'
)

// Order type values, carried in tag 40.
const (
	OrdTypeMarket byte = '1'
	OrdTypeLimit  byte = '2'
	OrdTypeStop   byte = '3'
)

// Order status values, carried in tag 39.
const (
	OrdStatusNew           byte = '0'
	OrdStatusPartialFill   byte = '1'
	OrdStatusFilled        byte = '2'
	OrdStatusDoneForDay    byte = '3'
	OrdStatusCanceled      byte = '4'
	OrdStatusReplaced      byte = '5'
	OrdStatusPendingCancel byte = '6'
	OrdStatusStopped       byte = '7'
	OrdStatusRejected      byte = '8'
)

// Execution type values, carried in tag 150.
const (
	ExecTypeNew           byte = '0'
	ExecTypePartialFill   byte = '1'
	ExecTypeFill          byte = '2'
	ExecTypeDoneForDay    byte = '3'
	ExecTypeCanceled      byte = '4'
	ExecTypeReplaced      byte = '5'
	ExecTypePendingCancel byte = '6'
	ExecTypeRejected      byte = '8'
	ExecTypeTrade         byte = 'F'
)

var msgTypeNames = map[MsgType]string{
	MsgTypeHeartbeat:         "Heartbeat",
	MsgTypeTestRequest:       "TestRequest",
	MsgTypeResendRequest:     "ResendRequest",
	MsgTypeReject:            "Reject",
	MsgTypeSequenceReset:     "SequenceReset",
	MsgTypeLogout:            "Logout",
	MsgTypeExecutionReport:   "ExecutionReport",
	MsgTypeOrderCancelReject: "OrderCancelReject",
	MsgTypeLogon:             "Logon",
	MsgTypeNewOrderSingle:    "NewOrderSingle",
	MsgTypeOrderCancelReq:    "OrderCancelRequest",
	MsgTypeOrderReplaceReq:   "OrderReplaceRequest",
}

var sideNames = map[byte]string{
	SideBuy:  "Buy",
	SideSell: "Sell",
}

var ordTypeNames = map[byte]string{
	OrdTypeMarket: "Market",
	OrdTypeLimit:  "Limit",
	OrdTypeStop:   "Stop",
}

var ordStatusNames = map[byte]string{
	OrdStatusNew:           "New",
	OrdStatusPartialFill:   "PartialFill",
	OrdStatusFilled:        "Filled",
	OrdStatusDoneForDay:    "DoneForDay",
	OrdStatusCanceled:      "Canceled",
	OrdStatusReplaced:      "Replaced",
	OrdStatusPendingCancel: "PendingCancel",
	OrdStatusStopped:       "Stopped",
	OrdStatusRejected:      "Rejected",
}

var execTypeNames = map[byte]string{
	ExecTypeNew:           "New",
	ExecTypePartialFill:   "PartialFill",
	ExecTypeFill:          "Fill",
	ExecTypeDoneForDay:    "DoneForDay",
	ExecTypeCanceled:      "Canceled",
	ExecTypeReplaced:      "Replaced",
	ExecTypePendingCancel: "PendingCancel",
	ExecTypeRejected:      "Rejected",
	ExecTypeTrade:         "Trade",
}

// MsgTypeName returns the name of a message type value, or "Unknown" when the
// value is not in the built-in table.
func MsgTypeName(t MsgType) string {
	return lookupName(msgTypeNames, t)
}

// SideName returns the name of a side value, or "Unknown".
func SideName(v byte) string {
	return lookupName(sideNames, v)
}

// OrdTypeName returns the name of an order type value, or "Unknown".
func OrdTypeName(v byte) string {
	return lookupName(ordTypeNames, v)
}

// OrdStatusName returns the name of an order status value, or "Unknown".
func OrdStatusName(v byte) string {
	return lookupName(ordStatusNames, v)
}

// ExecTypeName returns the name of an execution type value, or "Unknown".
func ExecTypeName(v byte) string {
	return lookupName(execTypeNames, v)
}

func lookupName(table map[byte]string, v byte) string {
	if name, ok := table[v]; ok {
		return name
	}

	return "Unknown"
}
