package btl

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//Node is one node of a parsed decision tree. A node is either a leaf carrying
//a real-valued contribution or a split comparing one feature against a
//threshold. The yes child is taken when feature <= threshold; that ordering is
//part of the decision semantics and is preserved all the way to the generated
//code. Nodes are immutable once parsed.
type Node struct {
	Leaf          bool
	Value         float64
	FeatureNumber int
	Threshold     float64
	Yes, No       *Node
}

//IsLeaf returns whether this node is a leaf.
func (node *Node) IsLeaf() bool {
	return node.Leaf
}

//Tree is a parsed decision tree together with its ordinal position in the
//ensemble. The position is significant for labeling and summation order.
type Tree struct {
	Index int
	Root  *Node
}

//rawNode mirrors the booster dump contract: {"leaf": v} for leaves and
//{"split": "f<i>", "split_condition": t, "children": [yes, no]} for splits.
type rawNode struct {
	Leaf           *float64  `json:"leaf"`
	Split          string    `json:"split"`
	SplitCondition *float64  `json:"split_condition"`
	Children       []rawNode `json:"children"`
}

func buildNode(raw rawNode, treeIndex int, nodePath string) (*Node, error) {
	if raw.Leaf != nil {
		if len(raw.Children) != 0 {
			return nil, MalformedTreeError{TreeIndex: treeIndex, NodePath: nodePath, Reason: "leaf node has children"}
		}
		return &Node{Leaf: true, Value: *raw.Leaf}, nil
	}

	if raw.Split == "" {
		return nil, MalformedTreeError{TreeIndex: treeIndex, NodePath: nodePath, Reason: "node is neither a leaf nor a split"}
	}
	if !strings.HasPrefix(raw.Split, "f") {
		return nil, MalformedTreeError{TreeIndex: treeIndex, NodePath: nodePath, Reason: fmt.Sprintf("split field %q lacks the 'f' prefix", raw.Split)}
	}
	featureNumber, err := strconv.Atoi(raw.Split[1:])
	if err != nil || featureNumber < 0 {
		return nil, MalformedTreeError{TreeIndex: treeIndex, NodePath: nodePath, Reason: fmt.Sprintf("split field %q has no valid feature number", raw.Split)}
	}
	if raw.SplitCondition == nil {
		return nil, MalformedTreeError{TreeIndex: treeIndex, NodePath: nodePath, Reason: "split node lacks split_condition"}
	}
	if len(raw.Children) != 2 {
		return nil, MalformedTreeError{TreeIndex: treeIndex, NodePath: nodePath, Reason: fmt.Sprintf("split node has %d children, want 2", len(raw.Children))}
	}

	yes, err := buildNode(raw.Children[0], treeIndex, nodePath+".yes")
	if err != nil {
		return nil, err
	}
	no, err := buildNode(raw.Children[1], treeIndex, nodePath+".no")
	if err != nil {
		return nil, err
	}

	return &Node{
		FeatureNumber: featureNumber,
		Threshold:     *raw.SplitCondition,
		Yes:           yes,
		No:            no,
	}, nil
}

//ParseTree parses one tree dump into an immutable Node tree. Parsing is kept
//separate from rendering so that tree-structure checks need no generated text
//and rendering checks need no JSON.
func ParseTree(dump json.RawMessage, treeIndex int) (Tree, error) {
	var raw rawNode
	if err := json.Unmarshal(dump, &raw); err != nil {
		return Tree{}, MalformedTreeError{TreeIndex: treeIndex, NodePath: "root", Reason: err.Error()}
	}
	root, err := buildNode(raw, treeIndex, "root")
	if err != nil {
		return Tree{}, err
	}
	return Tree{Index: treeIndex, Root: root}, nil
}

//LoadEnsemble reads a model dump file: a JSON array with one tree dump per
//element, in boosting order.
func LoadEnsemble(filename string) ([]Tree, error) {
	source, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open model dump %s", filename)
	}
	defer func() { _ = source.Close() }()

	var dumps []json.RawMessage
	decoder := json.NewDecoder(source)
	if err := decoder.Decode(&dumps); err != nil {
		return nil, errors.Wrapf(err, "can't decode model dump %s", filename)
	}

	trees := make([]Tree, 0, len(dumps))
	for treeIndex, dump := range dumps {
		tree, err := ParseTree(dump, treeIndex)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
	}
	return trees, nil
}

//LoadFeatureNames reads the ordered feature name list produced by the feature
//engineering step. Only the position of a name matters: generated code is
//addressed by index, names never appear in it.
func LoadFeatureNames(filename string) ([]string, error) {
	source, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "can't open feature names %s", filename)
	}
	defer func() { _ = source.Close() }()

	var names []string
	decoder := json.NewDecoder(source)
	if err := decoder.Decode(&names); err != nil {
		return nil, errors.Wrapf(err, "can't decode feature names %s", filename)
	}
	return names, nil
}
