package enumerate

import (
	"math"
	"reflect"
)

// MaxOf returns the maximum representable value of numeric type T.
// Named types are handled by their underlying kind.
func MaxOf[T Number]() T {
	var zero T
	var limit any
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int:
		limit = int64(math.MaxInt)
	case reflect.Int8:
		limit = int64(math.MaxInt8)
	case reflect.Int16:
		limit = int64(math.MaxInt16)
	case reflect.Int32:
		limit = int64(math.MaxInt32)
	case reflect.Int64:
		limit = int64(math.MaxInt64)
	case reflect.Uint, reflect.Uintptr:
		limit = uint64(math.MaxUint)
	case reflect.Uint8:
		limit = uint64(math.MaxUint8)
	case reflect.Uint16:
		limit = uint64(math.MaxUint16)
	case reflect.Uint32:
		limit = uint64(math.MaxUint32)
	case reflect.Uint64:
		limit = uint64(math.MaxUint64)
	case reflect.Float32:
		limit = float64(math.MaxFloat32)
	default:
		limit = float64(math.MaxFloat64)
	}
	return convert[T](limit)
}

// MinOf returns the minimum representable value of numeric type T.
// This is 0 for unsigned integers and the negated maximum for floats.
func MinOf[T Number]() T {
	var zero T
	var limit any
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Int:
		limit = int64(math.MinInt)
	case reflect.Int8:
		limit = int64(math.MinInt8)
	case reflect.Int16:
		limit = int64(math.MinInt16)
	case reflect.Int32:
		limit = int64(math.MinInt32)
	case reflect.Int64:
		limit = int64(math.MinInt64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return zero
	case reflect.Float32:
		limit = float64(-math.MaxFloat32)
	default:
		limit = float64(-math.MaxFloat64)
	}
	return convert[T](limit)
}

func convert[T Number](limit any) T {
	var zero T
	v := reflect.ValueOf(limit).Convert(reflect.TypeOf(zero))
	return v.Interface().(T)
}
