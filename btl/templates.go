package btl

import (
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

//TemplateSet holds the parsed templates of one language, keyed by role.
//Mandatory roles (header, main, tree) must be present; optional roles such as
//a build manifest or a test harness are simply absent when their file is.
type TemplateSet struct {
	language  string
	templates map[string]*template.Template
}

//TreeTemplateData feeds the tree role: the ordinal tree label and the
//compiled decision logic.
type TreeTemplateData struct {
	TreeIdx   int
	TreeLogic string
}

//MainTemplateData feeds the main role: the feature count and the
//concatenation of all rendered tree blocks.
type MainTemplateData struct {
	NumFeatures int
	TreeCode    string
}

//HarnessTemplateData feeds the optional test harness role.
type HarnessTemplateData struct {
	NumFeatures int
}

//LoadTemplates reads <templateDir>/<language>_<role>.template for every role
//the dialect declares. A missing mandatory role fails the load: the reference
//converter silently emitted an incomplete program instead, which turned a
//template file typo into a latent correctness bug.
func LoadTemplates(language, templateDir string, dialect Dialect) (*TemplateSet, error) {
	set := &TemplateSet{
		language:  language,
		templates: make(map[string]*template.Template),
	}

	for _, role := range dialect.MandatoryRoles() {
		if err := set.load(templateDir, role); err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				return nil, MissingTemplateError{Language: language, Role: role}
			}
			return nil, err
		}
	}
	for _, role := range dialect.OptionalRoles() {
		if err := set.load(templateDir, role); err != nil {
			if os.IsNotExist(errors.Cause(err)) {
				continue
			}
			return nil, err
		}
	}

	return set, nil
}

func (set *TemplateSet) load(templateDir, role string) error {
	templatePath := path.Join(templateDir, set.language+"_"+role+".template")
	data, err := os.ReadFile(templatePath)
	if err != nil {
		return errors.Wrapf(err, "can't read template %s", templatePath)
	}
	parsed, err := template.New(role).Parse(string(data))
	if err != nil {
		return errors.Wrapf(err, "can't parse template %s", templatePath)
	}
	set.templates[role] = parsed
	return nil
}

//Has reports whether a template for the role was loaded.
func (set *TemplateSet) Has(role string) bool {
	_, ok := set.templates[role]
	return ok
}

//Render executes the role template with the given payload.
func (set *TemplateSet) Render(role string, payload interface{}) (string, error) {
	parsed, ok := set.templates[role]
	if !ok {
		return "", MissingTemplateError{Language: set.language, Role: role}
	}
	var sb strings.Builder
	if err := parsed.Execute(&sb, payload); err != nil {
		return "", errors.Wrapf(err, "can't render template %q for %s", role, set.language)
	}
	return sb.String(), nil
}
