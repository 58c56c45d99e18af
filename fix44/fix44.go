// Package fix44 provides convenience constructors for common FIX 4.4
// messages: Logon, NewOrderSingle, ExecutionReport and OrderCancelRequest.
//
// The constructors are thin compositions over tagvalue.Writer that fix which
// tags a given message type conventionally carries. They add no state or
// validation beyond what the writer itself provides; writer options (clock,
// strict build, logger) pass through.
package fix44

import (
	"github.com/shopspring/decimal"

	"github.com/arloliu/go-fix/fix"
	"github.com/arloliu/go-fix/tagvalue"
)

// Logon builds a Logon (35=A) message with EncryptMethod 0 and the given
// heartbeat interval in seconds.
func Logon(sender, target string, seqNum, heartBtInt int, opts ...tagvalue.WriterOption) ([]byte, error) {
	return tagvalue.NewWriter(opts...).
		SetMsgType(fix.MsgTypeLogon).
		SetSender(sender).
		SetTarget(target).
		SetSeqNum(seqNum).
		SetInt(fix.TagEncryptMethod, 0).
		SetInt(fix.TagHeartBtInt, heartBtInt).
		Build()
}

// NewOrderSingle builds a NewOrderSingle (35=D) message for an automated
// execution order.
//
// The price is written with 2 decimal places and only for limit orders with
// a positive price; market orders carry no price field.
func NewOrderSingle(
	sender, target string,
	seqNum int,
	clOrdID, symbol string,
	side byte,
	quantity int,
	ordType byte,
	price decimal.Decimal,
	opts ...tagvalue.WriterOption,
) ([]byte, error) {
	writer := tagvalue.NewWriter(opts...).
		SetMsgType(fix.MsgTypeNewOrderSingle).
		SetSender(sender).
		SetTarget(target).
		SetSeqNum(seqNum).
		SetField(fix.TagClOrdID, clOrdID).
		SetChar(fix.TagHandlInst, '1').
		SetField(fix.TagSymbol, symbol).
		SetChar(fix.TagSide, side).
		SetTimestamp(fix.TagTransactTime).
		SetInt(fix.TagOrderQty, quantity).
		SetChar(fix.TagOrdType, ordType)

	if ordType == fix.OrdTypeLimit && price.IsPositive() {
		writer.SetField(fix.TagPrice, price.StringFixed(2))
	}

	return writer.Build()
}

// ExecutionReport describes an order status change communicated by an
// ExecutionReport (35=8) message.
type ExecutionReport struct {
	AvgPx     decimal.Decimal
	LastPx    decimal.Decimal
	Sender    string
	Target    string
	OrderID   string
	ExecID    string
	ClOrdID   string
	Symbol    string
	SeqNum    int
	OrderQty  int
	CumQty    int
	LeavesQty int
	LastQty   int
	Side      byte
	OrdStatus byte
	ExecType  byte
}

// Build encodes the execution report.
//
// AvgPx is written with 4 decimal places. LastQty and LastPx are carried only
// when LastQty is positive, i.e. when the report communicates a fill.
func (r ExecutionReport) Build(opts ...tagvalue.WriterOption) ([]byte, error) {
	writer := tagvalue.NewWriter(opts...).
		SetMsgType(fix.MsgTypeExecutionReport).
		SetSender(r.Sender).
		SetTarget(r.Target).
		SetSeqNum(r.SeqNum).
		SetField(fix.TagOrderID, r.OrderID).
		SetField(fix.TagExecID, r.ExecID).
		SetField(fix.TagClOrdID, r.ClOrdID).
		SetChar(fix.TagExecType, r.ExecType).
		SetChar(fix.TagOrdStatus, r.OrdStatus).
		SetField(fix.TagSymbol, r.Symbol).
		SetChar(fix.TagSide, r.Side).
		SetInt(fix.TagOrderQty, r.OrderQty).
		SetInt(fix.TagCumQty, r.CumQty).
		SetInt(fix.TagLeavesQty, r.LeavesQty).
		SetField(fix.TagAvgPx, r.AvgPx.StringFixed(4))

	if r.LastQty > 0 {
		writer.SetInt(fix.TagLastQty, r.LastQty)
		writer.SetField(fix.TagLastPx, r.LastPx.StringFixed(4))
	}

	return writer.Build()
}

// OrderCancelRequest builds an OrderCancelRequest (35=F) message canceling
// the order identified by origClOrdID.
func OrderCancelRequest(
	sender, target string,
	seqNum int,
	origClOrdID, clOrdID, symbol string,
	side byte,
	opts ...tagvalue.WriterOption,
) ([]byte, error) {
	return tagvalue.NewWriter(opts...).
		SetMsgType(fix.MsgTypeOrderCancelReq).
		SetSender(sender).
		SetTarget(target).
		SetSeqNum(seqNum).
		SetField(fix.TagOrigClOrdID, origClOrdID).
		SetField(fix.TagClOrdID, clOrdID).
		SetField(fix.TagSymbol, symbol).
		SetChar(fix.TagSide, side).
		SetTimestamp(fix.TagTransactTime).
		Build()
}
