package typedid

import (
	"encoding"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

// MarshalJSON encodes the ID exactly as its underlying value. The marker
// contributes nothing to the serialized form, so changing a field's declared
// type between V and ID[V, T] does not change the wire format.
func (id ID[V, T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.value)
}

// UnmarshalJSON decodes an underlying value and wraps it. Decode failures of
// V propagate unchanged.
func (id *ID[V, T]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &id.value)
}

// MarshalText renders the ID as the text form of its underlying value.
// encoding/json uses this form when an ID is an object key, so IDs serve as
// map keys wherever V would. Delegates to V's own encoding.TextMarshaler
// when present; plain string and integer representations use their canonical
// text form.
func (id ID[V, T]) MarshalText() ([]byte, error) {
	if m, ok := any(id.value).(encoding.TextMarshaler); ok {
		return m.MarshalText()
	}
	v := reflect.ValueOf(id.value)
	switch v.Kind() {
	case reflect.String:
		return []byte(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(nil, v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(nil, v.Uint(), 10), nil
	default:
		return nil, errors.Errorf("typedid: %T has no text form", id.value)
	}
}

// UnmarshalText parses the text form of the underlying value and wraps it.
func (id *ID[V, T]) UnmarshalText(text []byte) error {
	if u, ok := any(&id.value).(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText(text)
	}
	v := reflect.ValueOf(&id.value).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(string(text))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(string(text), 10, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "typedid: parse %s", v.Type())
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(string(text), 10, v.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "typedid: parse %s", v.Type())
		}
		v.SetUint(n)
	default:
		return errors.Errorf("typedid: %T has no text form", id.value)
	}
	return nil
}
