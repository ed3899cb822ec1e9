package typedid

import (
	"database/sql"
	"database/sql/driver"
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// Value implements driver.Valuer. An ID binds to a query parameter exactly as
// its underlying value would: V's own Valuer is used when it has one, plain
// values go through the driver's default conversion.
func (id ID[V, T]) Value() (driver.Value, error) {
	if v, ok := any(id.value).(driver.Valuer); ok {
		return v.Value()
	}
	return driver.DefaultParameterConverter.ConvertValue(id.value)
}

// Scan implements sql.Scanner. V's own Scanner is used when it has one;
// plain string and numeric column values are assigned or converted directly.
// Numeric conversions are range-checked: a column value that does not fit the
// representation fails instead of wrapping, exactly as scanning into the bare
// value would. A NULL column leaves the zero value.
func (id *ID[V, T]) Scan(src any) error {
	if s, ok := any(&id.value).(sql.Scanner); ok {
		return s.Scan(src)
	}
	if src == nil {
		var zero V
		id.value = zero
		return nil
	}
	dst := reflect.ValueOf(&id.value).Elem()
	sv := reflect.ValueOf(src)
	switch {
	case sv.Type().AssignableTo(dst.Type()):
		dst.Set(sv)
	case isNumericKind(sv.Kind()) && isNumericKind(dst.Kind()):
		return scanNumeric(dst, sv)
	case sv.Kind() == reflect.Slice && sv.Type().Elem().Kind() == reflect.Uint8 && dst.Kind() == reflect.String:
		dst.SetString(string(sv.Bytes()))
	case sv.Kind() == reflect.String && dst.Kind() == reflect.String:
		dst.SetString(sv.String())
	default:
		return errors.Errorf("typedid: cannot scan %T into %T", src, id.value)
	}
	return nil
}

// scanNumeric assigns a numeric column value to a numeric representation,
// rejecting sign changes, overflow and fractional floats.
func scanNumeric(dst, src reflect.Value) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		switch src.Kind() {
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			u := src.Uint()
			if u > math.MaxInt64 {
				return scanRangeError(dst, src)
			}
			n = int64(u)
		case reflect.Float32, reflect.Float64:
			f := src.Float()
			if math.Trunc(f) != f {
				return errors.Errorf("typedid: cannot scan %v into %s: fractional value", src.Interface(), dst.Type())
			}
			if f < math.MinInt64 || f >= math.MaxInt64 {
				return scanRangeError(dst, src)
			}
			n = int64(f)
		default:
			n = src.Int()
		}
		if dst.OverflowInt(n) {
			return scanRangeError(dst, src)
		}
		dst.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		var n uint64
		switch src.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			i := src.Int()
			if i < 0 {
				return scanRangeError(dst, src)
			}
			n = uint64(i)
		case reflect.Float32, reflect.Float64:
			f := src.Float()
			if math.Trunc(f) != f {
				return errors.Errorf("typedid: cannot scan %v into %s: fractional value", src.Interface(), dst.Type())
			}
			if f < 0 || f >= math.MaxUint64 {
				return scanRangeError(dst, src)
			}
			n = uint64(f)
		default:
			n = src.Uint()
		}
		if dst.OverflowUint(n) {
			return scanRangeError(dst, src)
		}
		dst.SetUint(n)
	default:
		var f float64
		switch src.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			f = float64(src.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			f = float64(src.Uint())
		default:
			f = src.Float()
		}
		if dst.OverflowFloat(f) {
			return scanRangeError(dst, src)
		}
		dst.SetFloat(f)
	}
	return nil
}

func scanRangeError(dst, src reflect.Value) error {
	return errors.Errorf("typedid: cannot scan %v into %s: value out of range", src.Interface(), dst.Type())
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
