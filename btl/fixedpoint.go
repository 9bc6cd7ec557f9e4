package btl

import "math"

//DefaultPrecisionMultiplier is the scale factor shared by all shipped dialects.
//Model thresholds and leaf values were exported with this factor, so every
//literal in the generated code uses it too.
const DefaultPrecisionMultiplier int64 = 10_000_000_000

//Scale converts a real value to its fixed-point representation. Rounding is
//half-to-even, the mode of the exporter that produced the model dumps; any
//other mode would break bit-exact agreement between generated code and the
//thresholds seen at training time.
func Scale(value float64, multiplier int64) (int64, error) {
	scaled := math.RoundToEven(value * float64(multiplier))
	if scaled >= float64(math.MaxInt64) || scaled <= float64(math.MinInt64) {
		return 0, OverflowError{Value: value, Multiplier: multiplier}
	}
	return int64(scaled), nil
}

//Descale converts a fixed-point value back to a real value.
func Descale(scaled, multiplier int64) float64 {
	return float64(scaled) / float64(multiplier)
}

//ScaledValue is a fixed-point value split into sign and magnitude. Dialects
//without a native signed integer render the two parts separately; dialects
//with one use Signed.
type ScaledValue struct {
	NonNegative bool
	Magnitude   int64
}

//ToScaledValue splits a signed fixed-point value into sign and magnitude.
func ToScaledValue(scaled int64) ScaledValue {
	if scaled >= 0 {
		return ScaledValue{NonNegative: true, Magnitude: scaled}
	}
	return ScaledValue{NonNegative: false, Magnitude: -scaled}
}

//Signed reassembles the signed fixed-point value.
func (sv ScaledValue) Signed() int64 {
	if sv.NonNegative {
		return sv.Magnitude
	}
	return -sv.Magnitude
}
