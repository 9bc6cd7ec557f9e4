package btl

import (
	"fmt"
	"strings"
)

//rustDialect targets a no_std-friendly Rust translation with native signed
//i64 fixed-point arithmetic. Each tree binds its result to a local and the
//tree template accumulates it, so BranchClose only terminates the expression.
type rustDialect struct{}

func (rustDialect) Name() string { return "rust" }

func (rustDialect) RenderLiteral(sv ScaledValue) string {
	return fmt.Sprintf("from_scaled_i64(%d)", sv.Signed())
}

func (d rustDialect) Comparison(featureIndex int, threshold ScaledValue) string {
	return fmt.Sprintf("fixed_le(f[%d], %s)", featureIndex, d.RenderLiteral(threshold))
}

func (rustDialect) BranchOpen(indent, comparison string, topLevel bool) string {
	if topLevel {
		return fmt.Sprintf("%slet tree_result = if %s {\n", indent, comparison)
	}
	return fmt.Sprintf("%sif %s {\n", indent, comparison)
}

func (rustDialect) BranchElse(indent string) string {
	return indent + "} else {\n"
}

func (rustDialect) BranchClose(indent string, topLevel bool) string {
	if topLevel {
		return indent + "};\n"
	}
	return indent + "}\n"
}

func (d rustDialect) LeafLine(indent string, sv ScaledValue) string {
	return indent + d.RenderLiteral(sv) + "\n"
}

func (rustDialect) FieldToken(sv ScaledValue) string {
	return fmt.Sprintf("%d", sv.Signed())
}

func (rustDialect) FieldList(tokens []string) string {
	return "vec![" + strings.Join(tokens, ", ") + "]"
}

func (rustDialect) MandatoryRoles() []string { return []string{"header", "main", "tree"} }
func (rustDialect) OptionalRoles() []string  { return []string{"cargo", "test"} }
func (rustDialect) HarnessRole() string      { return "test" }

func (rustDialect) BuildManifest() (string, string) { return "cargo", "Cargo.toml" }
