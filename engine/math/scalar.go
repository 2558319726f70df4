package math

import (
	"fmt"
	m "math"
	"strconv"
	"strings"
	"unsafe"

	"github.com/spaghettifunk/spl/engine/core"
	"github.com/spaghettifunk/spl/engine/types"
)

// NormalizeEpsilon bounds the difference between the requested length and the
// length of a normalized vector, relative to max(1, length).
const NormalizeEpsilon = 1e-6

// checkDivisor rejects integer division by zero before any component changes.
func checkDivisor[T types.Scalar](s T, op string) {
	if types.IsFloat[T]() {
		return
	}
	core.Assert(s != 0, op, "integer division by zero")
}

// sqrtLength takes the square root of a squared length. NaN passes through, a
// negative square cannot come from any supported kind.
func sqrtLength(square float64, op string) float64 {
	core.Assert(!(square < 0), op, "negative square %g", square)
	return m.Sqrt(square)
}

// magnitude returns the largest absolute component of c and the length of c in
// units of it, so big*scaled is the length without overflow or underflow.
func magnitude[T types.Float](c []T) (big, scaled float64) {
	for _, x := range c {
		big = max(big, m.Abs(float64(x)))
	}
	if big == 0 || m.IsInf(big, 1) {
		return big, 1
	}
	var sq float64
	for _, x := range c {
		s := float64(x) / big
		sq += s * s
	}
	return big, m.Sqrt(sq)
}

// scaleToLength rescales c in place to the given length, which must be
// positive. A zero vector has no direction and is left unchanged.
func scaleToLength[T types.Float](c []T, length float64, op string) {
	core.Assert(length > 0, op, "target length %g is not positive", length)
	big, scaled := magnitude(c)
	if big == 0 {
		return
	}
	for i, x := range c {
		c[i] = T(float64(x) / big / scaled * length)
	}
	big, scaled = magnitude(c)
	checkNormalized(big*scaled, length, op)
}

func checkNormalized(got, want float64, op string) {
	tolerance := NormalizeEpsilon * m.Max(1, want)
	core.Assert(!(m.Abs(got-want) > tolerance), op, "length %g instead of %g", got, want)
}

func roundInt[T types.Scalar](x T) int32 {
	if !types.IsFloat[T]() {
		return int32(x)
	}
	return int32(m.RoundToEven(float64(x)))
}

func floorInt[T types.Scalar](x T) int32 {
	if !types.IsFloat[T]() {
		return int32(x)
	}
	return int32(m.Floor(float64(x)))
}

func ceilInt[T types.Scalar](x T) int32 {
	if !types.IsFloat[T]() {
		return int32(x)
	}
	return int32(m.Ceil(float64(x)))
}

func bitSize[T types.Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

func formatScalar[T types.Scalar](x T) string {
	switch {
	case types.IsFloat[T]():
		return strconv.FormatFloat(float64(x), 'g', -1, bitSize[T]())
	case types.IsSigned[T]():
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

func parseScalar[T types.Scalar](s string) (T, error) {
	switch {
	case types.IsFloat[T]():
		f, err := strconv.ParseFloat(s, bitSize[T]())
		return T(f), err
	case types.IsSigned[T]():
		i, err := strconv.ParseInt(s, 10, bitSize[T]())
		return T(i), err
	default:
		u, err := strconv.ParseUint(s, 10, bitSize[T]())
		return T(u), err
	}
}

func formatComponents[T types.Scalar](name string, c []T) string {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = formatScalar(x)
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(parts, ", "))
}

// marshalComponents writes the components separated by single spaces, the
// form used by material and scene configuration files.
func marshalComponents[T types.Scalar](c []T) []byte {
	parts := make([]string, len(c))
	for i, x := range c {
		parts[i] = formatScalar(x)
	}
	return []byte(strings.Join(parts, " "))
}

// unmarshalComponents only writes dst once every component parsed.
func unmarshalComponents[T types.Scalar](name string, text []byte, dst []T) error {
	fields := strings.Fields(string(text))
	if len(fields) != len(dst) {
		return fmt.Errorf("%s: expected %d values, got %d in %q", name, len(dst), len(fields), text)
	}
	parsed := make([]T, len(dst))
	for i, f := range fields {
		x, err := parseScalar[T](f)
		if err != nil {
			return fmt.Errorf("%s: component %d: %w", name, i, err)
		}
		parsed[i] = x
	}
	copy(dst, parsed)
	return nil
}

// Clamp limits x to [low, high]. NaN is returned unchanged.
func Clamp[T types.Scalar](x, low, high T) T {
	return max(low, min(x, high))
}
