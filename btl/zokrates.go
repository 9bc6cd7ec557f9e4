package btl

import (
	"fmt"
	"strings"
)

//zokratesDialect targets the ZoKrates circuit language. ZoKrates has no
//native signed integer, so every value is a sign/magnitude struct and the
//ensemble is accumulated into a running sum with i64_add.
type zokratesDialect struct{}

func (zokratesDialect) Name() string { return "zokrates" }

func (zokratesDialect) RenderLiteral(sv ScaledValue) string {
	sgn := "false"
	if sv.NonNegative {
		sgn = "true"
	}
	return fmt.Sprintf("i64{sgn:%s, v: %d}", sgn, sv.Magnitude)
}

func (d zokratesDialect) Comparison(featureIndex int, threshold ScaledValue) string {
	return fmt.Sprintf("i64_le(f[%d], %s)", featureIndex, d.RenderLiteral(threshold))
}

func (zokratesDialect) BranchOpen(indent, comparison string, topLevel bool) string {
	if topLevel {
		return fmt.Sprintf("%sx = if %s {\n", indent, comparison)
	}
	return fmt.Sprintf("%sif %s{\n", indent, comparison)
}

func (zokratesDialect) BranchElse(indent string) string {
	return indent + "} else {\n"
}

func (zokratesDialect) BranchClose(indent string, topLevel bool) string {
	if topLevel {
		return indent + " };\n" + indent + " y = i64_add(y, x);\n"
	}
	return indent + " }\n"
}

func (d zokratesDialect) LeafLine(indent string, sv ScaledValue) string {
	return indent + " " + d.RenderLiteral(sv) + "\n"
}

func (zokratesDialect) FieldToken(sv ScaledValue) string {
	sgn := "0"
	if sv.NonNegative {
		sgn = "1"
	}
	return fmt.Sprintf("%s\", \"%d", sgn, sv.Magnitude)
}

func (zokratesDialect) FieldList(tokens []string) string {
	return "\"" + strings.Join(tokens, "\", \"") + "\""
}

func (zokratesDialect) MandatoryRoles() []string { return []string{"header", "main", "tree"} }
func (zokratesDialect) OptionalRoles() []string  { return nil }
func (zokratesDialect) HarnessRole() string      { return "" }

func (zokratesDialect) BuildManifest() (string, string) { return "", "" }
