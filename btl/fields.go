package btl

import "gonum.org/v1/gonum/mat"

//EncodeVector renders a flat feature vector in the dialect's input literal
//syntax. The values go through the same fixed-point scaling as thresholds and
//leaves, so the encoded vector is a reproducible input for the generated
//program.
func EncodeVector(values []float64, profile *Profile) (string, error) {
	tokens := make([]string, 0, len(values))
	for _, value := range values {
		scaled, err := Scale(value, profile.PrecisionMultiplier)
		if err != nil {
			return "", err
		}
		tokens = append(tokens, profile.Dialect.FieldToken(ToScaledValue(scaled)))
	}
	return profile.Dialect.FieldList(tokens), nil
}

//EncodeRow encodes one row of a feature matrix, the usual way a test vector
//is taken from a prepared dataset.
func EncodeRow(features *mat.Dense, row int, profile *Profile) (string, error) {
	_, w := features.Dims()
	values := make([]float64, w)
	mat.Row(values, row, features)
	return EncodeVector(values, profile)
}
