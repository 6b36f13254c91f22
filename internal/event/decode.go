package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNilPayload is returned when an event carries no payload at all
var ErrNilPayload = errors.New(ErrMsgNilPayload)

// DecodePayload converts an event payload into T.
//
// In-process publishers hand over T or *T directly. Payloads that crossed a
// serialization boundary (NATS, dead-letter replay) arrive as raw JSON or a
// generic map and are re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T

	switch v := input.(type) {
	case nil:
		return result, ErrNilPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, ErrNilPayload
		}
		return *v, nil
	case json.RawMessage:
		return result, unmarshalPayload(v, &result)
	case []byte:
		return result, unmarshalPayload(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgPayloadEncode, err)
	}
	return result, unmarshalPayload(data, &result)
}

func unmarshalPayload(data []byte, out interface{}) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgPayloadDecode, err)
	}
	return nil
}
