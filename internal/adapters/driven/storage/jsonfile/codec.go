package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// Collection keys of the persisted document.
const (
	keyTrips    = "Trips"
	keyVehicles = "Vehicles"
	keyDrivers  = "Drivers"
)

const indent = "    "

var errNotObject = errors.New("top-level value is not an object")

// Encode renders records as the canonical document.
// Missing collections are written as empty arrays.
func Encode(records domain.Records) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(records.Clone()); err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a canonical document.
//
// The top level must be an object. A collection key may be absent, which
// reads as an empty collection, but when present it must hold an array of
// objects with string values. Unknown keys are ignored.
func Decode(data []byte) (domain.Records, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return domain.Records{}, err
	}
	if top == nil {
		return domain.Records{}, errNotObject
	}

	var records domain.Records
	if err := decodeCollection(top, keyTrips, &records.Trips); err != nil {
		return domain.Records{}, err
	}
	if err := decodeCollection(top, keyVehicles, &records.Vehicles); err != nil {
		return domain.Records{}, err
	}
	if err := decodeCollection(top, keyDrivers, &records.Drivers); err != nil {
		return domain.Records{}, err
	}
	return records.Clone(), nil
}

func decodeCollection[T any](top map[string]json.RawMessage, key string, dst *[]T) error {
	raw, ok := top[key]
	if !ok {
		return nil
	}
	if isNull(raw) {
		return fmt.Errorf("%s: expected an array, found null", key)
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}

	out := make([]T, 0, len(elems))
	for i, elem := range elems {
		if err := checkRecord(elem); err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		var v T
		if err := json.Unmarshal(elem, &v); err != nil {
			return fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, v)
	}
	*dst = out
	return nil
}

// checkRecord requires an object whose values are all strings.
func checkRecord(elem json.RawMessage) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil {
		return err
	}
	if fields == nil {
		return errors.New("expected an object, found null")
	}
	for name, value := range fields {
		value = bytes.TrimSpace(value)
		if len(value) == 0 || value[0] != '"' {
			return fmt.Errorf("field %s: expected a string, found %s", name, value)
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
