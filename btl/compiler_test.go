package btl

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func testProfile(t *testing.T, language string) *Profile {
	t.Helper()
	dialect, err := NewDialect(language)
	if err != nil {
		t.Fatalf("can't create dialect %s: %v", language, err)
	}
	extension := ".zok"
	if language == "rust" {
		extension = ".rs"
	}
	return &Profile{
		Language:            language,
		PrecisionMultiplier: DefaultPrecisionMultiplier,
		Indentation:         IndentationConfig{Type: "spaces", Size: 4},
		FileExtension:       extension,
		Dialect:             dialect,
	}
}

func mustParseTree(t *testing.T, dump string, treeIndex int) Tree {
	t.Helper()
	tree, err := ParseTree(json.RawMessage(dump), treeIndex)
	if err != nil {
		t.Fatalf("can't parse tree: %v", err)
	}
	return tree
}

func TestCompileLeafOnlyTreeZokrates(t *testing.T) {
	tree := mustParseTree(t, `{"leaf": 0.25}`, 0)
	code, err := CompileTree(tree.Root, 1, testProfile(t, "zokrates"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "     i64{sgn:true, v: 2500000000}\n"
	if code != expected {
		t.Fatalf("expected %q, got %q", expected, code)
	}
}

func TestCompileSingleSplitTreeZokrates(t *testing.T) {
	dump := `{"split": "f0", "split_condition": 1.5, "children": [{"leaf": 0.1}, {"leaf": -0.2}]}`
	tree := mustParseTree(t, dump, 0)
	code, err := CompileTree(tree.Root, 1, testProfile(t, "zokrates"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "    x = if i64_le(f[0], i64{sgn:true, v: 15000000000}) {\n" +
		"         i64{sgn:true, v: 1000000000}\n" +
		"    } else {\n" +
		"         i64{sgn:false, v: 2000000000}\n" +
		"     };\n" +
		"     y = i64_add(y, x);\n"
	if code != expected {
		t.Fatalf("expected:\n%q\ngot:\n%q", expected, code)
	}
}

func TestCompileSingleSplitTreeRust(t *testing.T) {
	dump := `{"split": "f0", "split_condition": 1.5, "children": [{"leaf": 0.1}, {"leaf": -0.2}]}`
	tree := mustParseTree(t, dump, 0)
	code, err := CompileTree(tree.Root, 1, testProfile(t, "rust"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := "    let tree_result = if fixed_le(f[0], from_scaled_i64(15000000000)) {\n" +
		"        from_scaled_i64(1000000000)\n" +
		"    } else {\n" +
		"        from_scaled_i64(-2000000000)\n" +
		"    };\n"
	if code != expected {
		t.Fatalf("expected:\n%q\ngot:\n%q", expected, code)
	}
}

func TestCompileYesBranchBeforeNoBranch(t *testing.T) {
	dump := `{"split": "f2", "split_condition": 0.5, "children": [
		{"split": "f1", "split_condition": -1.0, "children": [{"leaf": 0.1}, {"leaf": 0.2}]},
		{"leaf": 0.3}]}`
	tree := mustParseTree(t, dump, 0)
	code, err := CompileTree(tree.Root, 3, testProfile(t, "rust"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	yesPos := strings.Index(code, "from_scaled_i64(1000000000)")
	noPos := strings.Index(code, "from_scaled_i64(3000000000)")
	if yesPos < 0 || noPos < 0 {
		t.Fatalf("expected both leaf literals in output:\n%s", code)
	}
	if yesPos > noPos {
		t.Fatalf("expected yes branch before no branch:\n%s", code)
	}
	if !strings.Contains(code, "if fixed_le(f[1], from_scaled_i64(-10000000000)) {") {
		t.Fatalf("expected inner comparison on f[1]:\n%s", code)
	}
}

func TestCompileOutOfRangeFeature(t *testing.T) {
	dump := `{"split": "f1", "split_condition": 1.5, "children": [{"leaf": 0.1}, {"leaf": -0.2}]}`
	tree := mustParseTree(t, dump, 0)
	_, err := CompileTree(tree.Root, 1, testProfile(t, "zokrates"))
	var malformed MalformedTreeError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedTreeError, got %v", err)
	}
	if !strings.Contains(malformed.Reason, "feature number 1") {
		t.Fatalf("expected reason to name the feature number, got %q", malformed.Reason)
	}
}

func TestCompileTabIndentation(t *testing.T) {
	profile := testProfile(t, "rust")
	profile.Indentation = IndentationConfig{Type: "tabs", Size: 1}

	tree := mustParseTree(t, `{"leaf": 1.0}`, 0)
	code, err := CompileTree(tree.Root, 1, profile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "\tfrom_scaled_i64(10000000000)\n" {
		t.Fatalf("expected tab indented leaf, got %q", code)
	}
}
