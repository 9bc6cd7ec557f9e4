package btl

import (
	"encoding/json"
	"os"
	"path"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestParseLeafOnlyTree(t *testing.T) {
	tree, err := ParseTree(json.RawMessage(`{"leaf": 0.25}`), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !tree.Root.IsLeaf() {
		t.Fatalf("expected a leaf root")
	}
	if tree.Root.Value != 0.25 {
		t.Fatalf("expected leaf value 0.25, got %g", tree.Root.Value)
	}
}

func TestParseSingleSplitTree(t *testing.T) {
	dump := `{"split": "f0", "split_condition": 1.5, "children": [{"leaf": 0.1}, {"leaf": -0.2}]}`
	tree, err := ParseTree(json.RawMessage(dump), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tree.Root
	if root.IsLeaf() {
		t.Fatalf("expected a split root")
	}
	if root.FeatureNumber != 0 || root.Threshold != 1.5 {
		t.Fatalf("expected split on f0 at 1.5, got f%d at %g", root.FeatureNumber, root.Threshold)
	}
	if root.Yes.Value != 0.1 {
		t.Fatalf("expected yes child 0.1 (first listed child), got %g", root.Yes.Value)
	}
	if root.No.Value != -0.2 {
		t.Fatalf("expected no child -0.2 (second listed child), got %g", root.No.Value)
	}
	if tree.Index != 3 {
		t.Fatalf("expected tree index 3, got %d", tree.Index)
	}
}

func TestParseMalformedTrees(t *testing.T) {
	cases := []struct {
		name string
		dump string
		path string
	}{
		{"neither leaf nor split", `{"nodeid": 0}`, "root"},
		{"bad split prefix", `{"split": "x0", "split_condition": 1.0, "children": [{"leaf": 0}, {"leaf": 0}]}`, "root"},
		{"missing condition", `{"split": "f0", "children": [{"leaf": 0}, {"leaf": 0}]}`, "root"},
		{"one child", `{"split": "f0", "split_condition": 1.0, "children": [{"leaf": 0}]}`, "root"},
		{"bad inner node", `{"split": "f0", "split_condition": 1.0, "children": [{"leaf": 0}, {"split": "f"}]}`, "root.no"},
	}

	for _, current := range cases {
		_, err := ParseTree(json.RawMessage(current.dump), 7)
		var malformed MalformedTreeError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected MalformedTreeError, got %v", current.name, err)
		}
		if malformed.TreeIndex != 7 {
			t.Fatalf("%s: expected tree index 7, got %d", current.name, malformed.TreeIndex)
		}
		if malformed.NodePath != current.path {
			t.Fatalf("%s: expected node path %q, got %q", current.name, current.path, malformed.NodePath)
		}
	}
}

func TestLoadEnsemblePreservesOrder(t *testing.T) {
	dir := t.TempDir()
	modelPath := path.Join(dir, "model_dump.json")
	content := `[{"leaf": 0.1}, {"split": "f1", "split_condition": 2.0, "children": [{"leaf": 0.2}, {"leaf": 0.3}]}, {"leaf": -0.4}]`
	if err := os.WriteFile(modelPath, []byte(content), 0o644); err != nil {
		t.Fatalf("can't write model dump: %v", err)
	}

	trees, err := LoadEnsemble(modelPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(trees) != 3 {
		t.Fatalf("expected 3 trees, got %d", len(trees))
	}
	for ind, tree := range trees {
		if tree.Index != ind {
			t.Fatalf("expected tree index %d, got %d", ind, tree.Index)
		}
	}
	if trees[1].Root.IsLeaf() || trees[1].Root.FeatureNumber != 1 {
		t.Fatalf("expected second tree to split on f1")
	}
}

func TestLoadFeatureNames(t *testing.T) {
	dir := t.TempDir()
	namesPath := path.Join(dir, "feature_names.json")
	if err := os.WriteFile(namesPath, []byte(`["Reflectivity", "Zdr", "RhoHV"]`), 0o644); err != nil {
		t.Fatalf("can't write feature names: %v", err)
	}

	names, err := LoadFeatureNames(namesPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 3 || names[1] != "Zdr" {
		t.Fatalf("unexpected feature names: %v", names)
	}

	_, err = LoadFeatureNames(path.Join(dir, "absent.json"))
	if err == nil || !strings.Contains(err.Error(), "absent.json") {
		t.Fatalf("expected an error naming the missing file, got %v", err)
	}
}
