package cosmos

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

const txHashEventKey = "tx.hash"

// subscribeAck is the handshake reply the node sends after a subscribe request
var subscribeAck = []byte(`{"jsonrpc":"2.0","id":"0","result":{}}`)

// IsSubscribeAck reports whether msg is the subscription acknowledgement
func IsSubscribeAck(msg []byte) bool {
	return bytes.Equal(bytes.TrimSpace(msg), subscribeAck)
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

type envelope struct {
	Error  *rpcError `json:"error,omitempty"`
	Result *struct {
		Events map[string]json.RawMessage `json:"events"`
		Data   *struct {
			Value *struct {
				TxResult *struct {
					Result *struct {
						Events json.RawMessage `json:"events"`
					} `json:"result"`
				} `json:"TxResult"`
			} `json:"value"`
		} `json:"data"`
	} `json:"result"`
}

type rawEvent struct {
	Type       string         `json:"type"`
	Attributes []rawAttribute `json:"attributes"`
}

type rawAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ParseTransaction decodes a subscription notification into a Transaction.
// Attribute keys and values are base64 decoded; an attribute that does not
// decode to valid UTF-8 becomes an empty string.
func ParseTransaction(msg []byte) (*domain.Transaction, error) {
	var env envelope
	if err := json.Unmarshal(msg, &env); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", domain.ErrProtocolParse, err)
	}

	if env.Error != nil {
		return nil, fmt.Errorf("%w: node returned error %d: %s %s",
			domain.ErrTransport, env.Error.Code, env.Error.Message, env.Error.Data)
	}

	if env.Result == nil {
		return nil, fmt.Errorf("%w: missing result", domain.ErrProtocolParse)
	}

	txHash, err := parseTxHash(env.Result.Events)
	if err != nil {
		return nil, err
	}

	data := env.Result.Data
	if data == nil || data.Value == nil || data.Value.TxResult == nil || data.Value.TxResult.Result == nil ||
		len(data.Value.TxResult.Result.Events) == 0 {
		return nil, fmt.Errorf("%w: missing result.data.value.TxResult.result.events", domain.ErrProtocolParse)
	}

	var rawEvents []rawEvent
	if err := json.Unmarshal(data.Value.TxResult.Result.Events, &rawEvents); err != nil {
		return nil, fmt.Errorf("%w: result.data.value.TxResult.result.events is not an event list: %v",
			domain.ErrProtocolParse, err)
	}
	if rawEvents == nil {
		return nil, fmt.Errorf("%w: result.data.value.TxResult.result.events is null", domain.ErrProtocolParse)
	}

	events := make([]domain.Event, 0, len(rawEvents))
	for _, re := range rawEvents {
		attrs := make([]domain.Attribute, 0, len(re.Attributes))
		for _, ra := range re.Attributes {
			attrs = append(attrs, domain.Attribute{
				Key:   decodeBase64UTF8(ra.Key),
				Value: decodeBase64UTF8(ra.Value),
			})
		}
		events = append(events, domain.Event{Type: re.Type, Attributes: attrs})
	}

	return &domain.Transaction{
		TxHash: txHash,
		Events: events,
	}, nil
}

func parseTxHash(events map[string]json.RawMessage) (string, error) {
	raw, ok := events[txHashEventKey]
	if !ok {
		return "", fmt.Errorf("%w: missing result.events[%s]", domain.ErrProtocolParse, txHashEventKey)
	}

	var values []json.RawMessage
	if err := json.Unmarshal(raw, &values); err != nil || len(values) == 0 {
		return "", fmt.Errorf("%w: missing result.events[%s][0]", domain.ErrProtocolParse, txHashEventKey)
	}

	var txHash string
	if err := json.Unmarshal(values[0], &txHash); err != nil {
		return "", fmt.Errorf("%w: result.events[%s][0] is not a string", domain.ErrProtocolParse, txHashEventKey)
	}

	return txHash, nil
}

func decodeBase64UTF8(s string) string {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil || !utf8.Valid(b) {
		return ""
	}
	return string(b)
}

// NormalizeAttribute decodes an attribute reported base64 encoded. A key counts as
// encoded only when it decodes to an attribute name, so plain keys pass through.
func NormalizeAttribute(key, value string) domain.Attribute {
	if decoded := decodeBase64UTF8(key); isAttributeName(decoded) {
		return domain.Attribute{Key: decoded, Value: decodeBase64UTF8(value)}
	}
	return domain.Attribute{Key: key, Value: value}
}

func isAttributeName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '_', c == '.', c == '-':
		default:
			return false
		}
	}
	return true
}

// MatchAttribute returns the value of attr when its key equals key, either
// verbatim or base64 encoded as older nodes report it
func MatchAttribute(attr domain.Attribute, key string) (string, bool) {
	if attr.Key == key {
		return attr.Value, true
	}
	if decodeBase64UTF8(attr.Key) == key {
		return decodeBase64UTF8(attr.Value), true
	}
	return "", false
}
