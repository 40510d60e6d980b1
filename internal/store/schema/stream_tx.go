package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// StreamTx represents the stream_tx table - one tracing record per dispatched event
type StreamTx struct {
	ID     int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TxHash string `gorm:"column:tx_hash;not null;type:text;index"`
	// Action is the wire action or event type of the handled event
	Action string `gorm:"column:action;not null;type:text"`
	// Context is the protocol stream that handled the event
	Context   domain.Protocol `gorm:"column:context;not null;type:text;index:idx_stream_tx_context_failure,priority:1"`
	Event     datatypes.JSON  `gorm:"column:event;not null;type:jsonb"`
	IsFailure bool            `gorm:"column:is_failure;not null;default:false;index:idx_stream_tx_context_failure,priority:2"`
	Message   *string         `gorm:"column:message;type:text"`
	Date      time.Time       `gorm:"column:date;not null;index"`
}

// TableName specifies the table name for the StreamTx model
func (StreamTx) TableName() string {
	return "stream_tx"
}
