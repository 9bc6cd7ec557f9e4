package btl

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//FixedLe is the comparison the generated code performs on fixed-point values.
func FixedLe(a, b int64) bool {
	return a <= b
}

//FixedAdd is the accumulation the generated code performs, saturating on
//overflow the way the emitted runtime helpers do.
func FixedAdd(a, b int64) int64 {
	sum := a + b
	if a > 0 && b > 0 && sum < 0 {
		return math.MaxInt64
	}
	if a < 0 && b < 0 && sum >= 0 {
		return math.MinInt64
	}
	return sum
}

//PredictScaled walks one tree over a fixed-point feature vector and returns
//the scaled leaf contribution. It reproduces the arithmetic of the generated
//code, so its output can be compared against a run of the emitted program.
func (tree Tree) PredictScaled(features []int64, multiplier int64) (int64, error) {
	node := tree.Root
	nodePath := "root"
	for !node.IsLeaf() {
		if node.FeatureNumber < 0 || node.FeatureNumber >= len(features) {
			return 0, MalformedTreeError{
				TreeIndex: tree.Index,
				NodePath:  nodePath,
				Reason:    fmt.Sprintf("feature number %d outside [0, %d)", node.FeatureNumber, len(features)),
			}
		}
		threshold, err := Scale(node.Threshold, multiplier)
		if err != nil {
			return 0, err
		}
		if FixedLe(features[node.FeatureNumber], threshold) {
			node = node.Yes
			nodePath += ".yes"
		} else {
			node = node.No
			nodePath += ".no"
		}
	}
	return Scale(node.Value, multiplier)
}

//PredictEnsemble sums the contributions of the first maxTrees trees over a
//fixed-point feature vector. Zero or negative maxTrees keeps all trees.
func PredictEnsemble(trees []Tree, features []int64, maxTrees int, multiplier int64) (int64, error) {
	n := len(trees)
	if maxTrees > 0 && maxTrees < n {
		n = maxTrees
	}

	var total int64
	for _, tree := range trees[:n] {
		contribution, err := tree.PredictScaled(features, multiplier)
		if err != nil {
			return 0, err
		}
		total = FixedAdd(total, contribution)
	}
	return total, nil
}

//PredictBatch evaluates the ensemble on every row of a feature matrix and
//returns real-valued predictions, one per row.
func PredictBatch(trees []Tree, features *mat.Dense, maxTrees int, multiplier int64) (*mat.Dense, error) {
	h, w := features.Dims()
	prediction := mat.NewDense(h, 1, nil)

	row := make([]float64, w)
	scaledRow := make([]int64, w)

	for p := 0; p < h; p++ {
		mat.Row(row, p, features)
		for q, value := range row {
			scaled, err := Scale(value, multiplier)
			if err != nil {
				return nil, err
			}
			scaledRow[q] = scaled
		}
		total, err := PredictEnsemble(trees, scaledRow, maxTrees, multiplier)
		if err != nil {
			return nil, err
		}
		prediction.Set(p, 0, Descale(total, multiplier))
	}

	return prediction, nil
}
