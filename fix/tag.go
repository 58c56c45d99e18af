package fix

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// Tag identifies the semantic meaning of a FIX field. Tags are positive
// integers assigned by the FIX specification; applications may use custom
// tag numbers from the user-defined range.
type Tag = int

// Well-known FIX tag numbers used by the flat tag-value codec.
const (
	TagAvgPx         Tag = 6
	TagBeginString   Tag = 8
	TagBodyLength    Tag = 9
	TagCheckSum      Tag = 10
	TagClOrdID       Tag = 11
	TagCumQty        Tag = 14
	TagExecID        Tag = 17
	TagHandlInst     Tag = 21
	TagLastPx        Tag = 31
	TagLastQty       Tag = 32
	TagMsgSeqNum     Tag = 34
	TagMsgType       Tag = 35
	TagOrderID       Tag = 37
	TagOrderQty      Tag = 38
	TagOrdStatus     Tag = 39
	TagOrdType       Tag = 40
	TagOrigClOrdID   Tag = 41
	TagPrice         Tag = 44
	TagSenderCompID  Tag = 49
	TagSendingTime   Tag = 52
	TagSide          Tag = 54
	TagSymbol        Tag = 55
	TagTargetCompID  Tag = 56
	TagText          Tag = 58
	TagTimeInForce   Tag = 59
	TagTransactTime  Tag = 60
	TagEncryptMethod Tag = 98
	TagHeartBtInt    Tag = 108
	TagExecType      Tag = 150
	TagLeavesQty     Tag = 151
)

var tagNames = map[Tag]string{
	TagAvgPx:         "AvgPx",
	TagBeginString:   "BeginString",
	TagBodyLength:    "BodyLength",
	TagCheckSum:      "CheckSum",
	TagClOrdID:       "ClOrdID",
	TagCumQty:        "CumQty",
	TagExecID:        "ExecID",
	TagHandlInst:     "HandlInst",
	TagLastPx:        "LastPx",
	TagLastQty:       "LastQty",
	TagMsgSeqNum:     "MsgSeqNum",
	TagMsgType:       "MsgType",
	TagOrderID:       "OrderID",
	TagOrderQty:      "OrderQty",
	TagOrdStatus:     "OrdStatus",
	TagOrdType:       "OrdType",
	TagOrigClOrdID:   "OrigClOrdID",
	TagPrice:         "Price",
	TagSenderCompID:  "SenderCompID",
	TagSendingTime:   "SendingTime",
	TagSide:          "Side",
	TagSymbol:        "Symbol",
	TagTargetCompID:  "TargetCompID",
	TagText:          "Text",
	TagTimeInForce:   "TimeInForce",
	TagTransactTime:  "TransactTime",
	TagEncryptMethod: "EncryptMethod",
	TagHeartBtInt:    "HeartBtInt",
	TagExecType:      "ExecType",
	TagLeavesQty:     "LeavesQty",
}

// customTagNames holds user-registered tag names. It is kept separate from
// the built-in table so the built-in table stays immutable.
var customTagNames = xsync.NewMapOf[Tag, string]()

// RegisterTagName associates a human-readable name with a custom tag number.
//
// Registered names take effect for tags outside the built-in table; a
// built-in tag name can not be overridden. It is safe to call from multiple
// goroutines.
func RegisterTagName(tag Tag, name string) {
	customTagNames.Store(tag, name)
}

// TagName returns the human-readable name for the given tag.
//
// Built-in names take precedence over registered ones. It returns an empty
// string when the tag is unknown.
func TagName(tag Tag) string {
	if name, ok := tagNames[tag]; ok {
		return name
	}

	if name, ok := customTagNames.Load(tag); ok {
		return name
	}

	return ""
}
