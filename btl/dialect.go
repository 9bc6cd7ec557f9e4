package btl

//Dialect collects every point of target language variation. The tree compiler
//and the ensemble assembler dispatch through this interface only; adding a
//target means adding one implementation and registering it, not editing the
//traversal.
type Dialect interface {
	Name() string

	//RenderLiteral produces the dialect literal for a fixed-point value,
	//as used for thresholds and leaf contributions.
	RenderLiteral(sv ScaledValue) string

	//Comparison renders "feature[i] <= threshold" in dialect syntax. The
	//operator is always less-than-or-equal: the yes branch is taken when
	//the feature value does not exceed the threshold.
	Comparison(featureIndex int, threshold ScaledValue) string

	//BranchOpen starts a conditional at the given indentation. At top level
	//the dialect additionally binds the tree result to a named value.
	BranchOpen(indent, comparison string, topLevel bool) string
	BranchElse(indent string) string
	//BranchClose terminates a conditional. At top level the dialect ends
	//the binding and, where the ensemble is modeled as a running sum,
	//accumulates the result.
	BranchClose(indent string, topLevel bool) string

	//LeafLine renders one leaf contribution at the given indentation.
	LeafLine(indent string, sv ScaledValue) string

	//FieldToken renders one input value for the test-vector artifact and
	//FieldList joins the tokens in the dialect's literal list convention.
	FieldToken(sv ScaledValue) string
	FieldList(tokens []string) string

	//MandatoryRoles lists template roles without which no complete program
	//can be assembled; OptionalRoles may be absent without error.
	MandatoryRoles() []string
	OptionalRoles() []string

	//HarnessRole names the optional test harness template role, or "".
	HarnessRole() string
	//BuildManifest names the optional build descriptor role and the file it
	//is written to next to the generated source, or "", "".
	BuildManifest() (role, filename string)
}

var dialects = map[string]func() Dialect{
	"zokrates": func() Dialect { return zokratesDialect{} },
	"rust":     func() Dialect { return rustDialect{} },
}

//NewDialect returns the registered dialect for a language name.
func NewDialect(language string) (Dialect, error) {
	maker, ok := dialects[language]
	if !ok {
		return nil, UnsupportedLanguageError{Language: language}
	}
	return maker(), nil
}
