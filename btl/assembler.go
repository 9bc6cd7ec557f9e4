package btl

import (
	"strings"

	"github.com/pkg/errors"
)

//AssembleParams collects everything one conversion run needs.
type AssembleParams struct {
	Trees        []Tree
	FeatureNames []string
	Profile      *Profile
	Templates    *TemplateSet
	//MaxTrees caps the ensemble to its first MaxTrees trees, a deliberate
	//accuracy/size trade-off left to the caller. Zero or negative keeps all.
	MaxTrees int
	//ThreadsNum > 1 compiles trees concurrently; the output is identical
	//because results are reassembled in original tree order.
	ThreadsNum int
}

//Artifact is an auxiliary file produced next to the generated source, such as
//a build manifest.
type Artifact struct {
	FileName string
	Content  string
}

type compiledTree struct {
	code string
	err  error
}

//TaskCompileTree compiles the tree at index q into the shared result slice.
type TaskCompileTree struct {
	result []compiledTree
	q      int
	f      func(int) compiledTree
}

func (task *TaskCompileTree) Run() {
	task.result[task.q] = task.f(task.q)
}

//Assemble compiles the retained trees and concatenates them through the
//template set into final compilable source text. Any malformed tree aborts
//the whole run: the generated program is only useful when every retained tree
//is in it.
func Assemble(params AssembleParams) (string, []Artifact, error) {
	profile := params.Profile
	templates := params.Templates
	dialect := profile.Dialect

	trees := params.Trees
	if params.MaxTrees > 0 && params.MaxTrees < len(trees) {
		trees = trees[:params.MaxTrees]
	}

	featureCount := len(params.FeatureNames)

	result := make([]compiledTree, len(trees))
	compileFunc := func(q int) compiledTree {
		code, err := CompileTree(trees[q].Root, featureCount, profile)
		return compiledTree{code: code, err: err}
	}

	if params.ThreadsNum <= 1 {
		for q := range trees {
			result[q] = compileFunc(q)
		}
	} else {
		taskPool := NewPool(params.ThreadsNum)
		for q := range trees {
			taskPool.AddTask(&TaskCompileTree{result, q, compileFunc})
		}
		taskPool.Close()
		taskPool.WaitAll()
	}

	treeCodes := make([]string, 0, len(trees))
	for q, current := range result {
		if current.err != nil {
			return "", nil, withTreeIndex(current.err, trees[q].Index)
		}
		treeCode, err := templates.Render("tree", TreeTemplateData{
			TreeIdx:   trees[q].Index,
			TreeLogic: current.code,
		})
		if err != nil {
			return "", nil, err
		}
		treeCodes = append(treeCodes, treeCode)
	}

	header, err := templates.Render("header", nil)
	if err != nil {
		return "", nil, err
	}
	mainCode, err := templates.Render("main", MainTemplateData{
		NumFeatures: featureCount,
		TreeCode:    strings.Join(treeCodes, "\n"),
	})
	if err != nil {
		return "", nil, err
	}

	codeParts := []string{header, mainCode}

	if harnessRole := dialect.HarnessRole(); harnessRole != "" && templates.Has(harnessRole) {
		harness, err := templates.Render(harnessRole, HarnessTemplateData{NumFeatures: featureCount})
		if err != nil {
			return "", nil, err
		}
		codeParts = append(codeParts, harness)
	}

	var artifacts []Artifact
	if manifestRole, manifestName := dialect.BuildManifest(); manifestRole != "" && templates.Has(manifestRole) {
		manifest, err := templates.Render(manifestRole, nil)
		if err != nil {
			return "", nil, err
		}
		artifacts = append(artifacts, Artifact{FileName: manifestName, Content: manifest})
	}

	return strings.Join(codeParts, "\n"), artifacts, nil
}

//withTreeIndex stamps the originating tree index onto a malformed tree error
//so the caller can locate the offending dump entry.
func withTreeIndex(err error, treeIndex int) error {
	var malformed MalformedTreeError
	if errors.As(err, &malformed) {
		malformed.TreeIndex = treeIndex
		return malformed
	}
	return errors.Wrapf(err, "tree %d", treeIndex)
}
