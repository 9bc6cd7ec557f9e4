package btl

import (
	"fmt"
	"strings"
)

//CompileTree renders one decision tree as target language text. The root
//starts at depth 1; the yes child of every split is compiled strictly before
//the no child, matching the dump order and the branch semantics.
func CompileTree(root *Node, featureCount int, profile *Profile) (string, error) {
	var sb strings.Builder
	if err := compileNode(root, featureCount, profile, 1, "root", &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func compileNode(node *Node, featureCount int, profile *Profile, depth int, nodePath string, sb *strings.Builder) error {
	if node == nil {
		return MalformedTreeError{NodePath: nodePath, Reason: "nil node"}
	}

	indent := profile.Indent(depth)
	dialect := profile.Dialect

	if node.IsLeaf() {
		scaled, err := Scale(node.Value, profile.PrecisionMultiplier)
		if err != nil {
			return err
		}
		sb.WriteString(dialect.LeafLine(indent, ToScaledValue(scaled)))
		return nil
	}

	if node.FeatureNumber < 0 || node.FeatureNumber >= featureCount {
		return MalformedTreeError{
			NodePath: nodePath,
			Reason:   fmt.Sprintf("feature number %d outside [0, %d)", node.FeatureNumber, featureCount),
		}
	}

	scaled, err := Scale(node.Threshold, profile.PrecisionMultiplier)
	if err != nil {
		return err
	}
	comparison := dialect.Comparison(node.FeatureNumber, ToScaledValue(scaled))
	topLevel := depth == 1

	sb.WriteString(dialect.BranchOpen(indent, comparison, topLevel))
	if err := compileNode(node.Yes, featureCount, profile, depth+1, nodePath+".yes", sb); err != nil {
		return err
	}
	sb.WriteString(dialect.BranchElse(indent))
	if err := compileNode(node.No, featureCount, profile, depth+1, nodePath+".no", sb); err != nil {
		return err
	}
	sb.WriteString(dialect.BranchClose(indent, topLevel))

	return nil
}
