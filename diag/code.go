package diag

// Code identifies a kind of diagnostic. Codes are stable across releases;
// callers may match on them instead of parsing messages.
type Code string

// IsZero reports whether c is the zero Code.
func (c Code) IsZero() bool {
	return c == ""
}

// Validator codes, emitted by the five-step acceptance decision procedure.
const (
	// E_WRONG_CLASS: an example object's class is not the model's class
	// or a subclass of it.
	E_WRONG_CLASS Code = "E_WRONG_CLASS"
	// E_MISSING_MUST: a required link (generic or instance-level) is absent.
	E_MISSING_MUST Code = "E_MISSING_MUST"
	// E_FORBIDDEN_LINK: the example contains a link a MustNot rule forbids.
	E_FORBIDDEN_LINK Code = "E_FORBIDDEN_LINK"
	// E_ATTR_MISSING: an object is missing an attribute the model constrains.
	E_ATTR_MISSING Code = "E_ATTR_MISSING"
	// E_ATTR_OUT_OF_RANGE: a numeric attribute falls outside a modeled Interval.
	E_ATTR_OUT_OF_RANGE Code = "E_ATTR_OUT_OF_RANGE"
	// E_ATTR_NOT_IN_SET: a scalar attribute is not a member of a modeled Set.
	E_ATTR_NOT_IN_SET Code = "E_ATTR_NOT_IN_SET"
	// E_ATTR_MISMATCH: a scalar attribute does not equal the modeled Scalar value.
	E_ATTR_MISMATCH Code = "E_ATTR_MISMATCH"
)

// Structural error codes.
const (
	// E_DUPLICATE_NAME: an object name is already present in the model (M1).
	E_DUPLICATE_NAME Code = "E_DUPLICATE_NAME"
	// E_CYCLE: introducing a classification edge would create a cycle.
	E_CYCLE Code = "E_CYCLE"
	// E_DANGLING_LINK: an instance-level link references an unknown object (M2).
	E_DANGLING_LINK Code = "E_DANGLING_LINK"
)
