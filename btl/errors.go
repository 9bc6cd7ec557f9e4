package btl

import "fmt"

//ConfigNotFoundError reports a missing language configuration or template source.
type ConfigNotFoundError struct {
	Path string
}

func (e ConfigNotFoundError) Error() string {
	return fmt.Sprintf("language configuration not found: %s", e.Path)
}

//UnsupportedLanguageError reports a dialect that is unknown or lacks a required
//rendering capability.
type UnsupportedLanguageError struct {
	Language   string
	Capability string
}

func (e UnsupportedLanguageError) Error() string {
	if e.Capability != "" {
		return fmt.Sprintf("language %q does not support %s", e.Language, e.Capability)
	}
	return fmt.Sprintf("unsupported language %q", e.Language)
}

//MalformedTreeError reports a node that violates the leaf/split contract or
//references a feature outside the feature list.
type MalformedTreeError struct {
	TreeIndex int
	NodePath  string
	Reason    string
}

func (e MalformedTreeError) Error() string {
	path := e.NodePath
	if path == "" {
		path = "root"
	}
	return fmt.Sprintf("malformed tree %d at %s: %s", e.TreeIndex, path, e.Reason)
}

//OverflowError reports a value whose scaled representation does not fit the
//target integer width.
type OverflowError struct {
	Value      float64
	Multiplier int64
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("value %g overflows int64 when scaled by %d", e.Value, e.Multiplier)
}

//MissingTemplateError reports a mandatory template role that has no template
//file. The reference converter silently skipped such roles and produced an
//incomplete program; here the load fails before any code is generated.
type MissingTemplateError struct {
	Language string
	Role     string
}

func (e MissingTemplateError) Error() string {
	return fmt.Sprintf("missing mandatory template %q for language %q", e.Role, e.Language)
}
