package cosmos

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// SMART_CONTRACT_STATE_PATH is the ABCI query path for wasm smart queries
const SMART_CONTRACT_STATE_PATH = "/cosmwasm.wasm.v1.Query/SmartContractState"

// Field numbers of cosmwasm.wasm.v1.QuerySmartContractStateRequest/Response
const (
	requestAddressField   protowire.Number = 1
	requestQueryDataField protowire.Number = 2
	responseDataField     protowire.Number = 1
)

// encodeSmartQueryRequest encodes a QuerySmartContractStateRequest
func encodeSmartQueryRequest(address string, queryData []byte) []byte {
	b := make([]byte, 0, len(address)+len(queryData)+8)
	if address != "" {
		b = protowire.AppendTag(b, requestAddressField, protowire.BytesType)
		b = protowire.AppendString(b, address)
	}
	if len(queryData) > 0 {
		b = protowire.AppendTag(b, requestQueryDataField, protowire.BytesType)
		b = protowire.AppendBytes(b, queryData)
	}
	return b
}

// decodeSmartQueryResponse returns the data field of a QuerySmartContractStateResponse.
// Unknown fields are skipped. A repeated data field keeps the last value.
func decodeSmartQueryResponse(b []byte) ([]byte, error) {
	var data []byte
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrProtobufDecode, protowire.ParseError(n))
		}
		b = b[n:]

		if num == responseDataField {
			if typ != protowire.BytesType {
				return nil, fmt.Errorf("%w: field %d has wire type %d", ErrProtobufDecode, num, typ)
			}
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrProtobufDecode, protowire.ParseError(n))
			}
			data = append(data[:0], v...)
			b = b[n:]
			continue
		}

		n = protowire.ConsumeFieldValue(num, typ, b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrProtobufDecode, protowire.ParseError(n))
		}
		b = b[n:]
	}

	return data, nil
}
