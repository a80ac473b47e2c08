package domctx

// VarType identifies the kind of a domain column.
type VarType int8

const (
	// TypeNone marks a stored pair whose payload is a plain value rather
	// than a reference to a domain column.
	TypeNone VarType = -2

	TypeDiscrete   VarType = 1
	TypeContinuous VarType = 2
	TypeString     VarType = 3
	TypeTime       VarType = 4
)

// IsVariable reports whether t refers to an actual domain column, as
// opposed to a plain stored value.
func (t VarType) IsVariable() bool { return t > 0 }

func (t VarType) String() string {
	switch t {
	case TypeDiscrete:
		return "discrete"
	case TypeContinuous:
		return "continuous"
	case TypeString:
		return "string"
	case TypeTime:
		return "time"
	case TypeNone:
		return "none"
	default:
		return "invalid"
	}
}

// Variable describes a single domain column. Values carries the ordered
// category labels of discrete columns and is nil for all other kinds.
type Variable struct {
	Name   string
	Type   VarType
	Values []string
}

// Discrete builds a discrete variable with the given ordered labels.
func Discrete(name string, values ...string) Variable {
	return Variable{Name: name, Type: TypeDiscrete, Values: values}
}

// Continuous builds a continuous variable.
func Continuous(name string) Variable {
	return Variable{Name: name, Type: TypeContinuous}
}

// Domain is the schema of a dataset: its ordered attribute, class and meta
// columns. The zero value is an empty domain.
type Domain struct {
	Attributes []Variable
	ClassVars  []Variable
	Metas      []Variable
}

// Columns yields attributes, class vars and metas in domain order.
func (d Domain) Columns() []Variable {
	out := make([]Variable, 0, len(d.Attributes)+len(d.ClassVars)+len(d.Metas))
	out = append(out, d.Attributes...)
	out = append(out, d.ClassVars...)
	out = append(out, d.Metas...)
	return out
}

// Lookup returns the column with the given name, searching attributes,
// class vars and metas in that order.
func (d Domain) Lookup(name string) (Variable, bool) {
	for _, v := range d.Columns() {
		if v.Name == name {
			return v, true
		}
	}
	return Variable{}, false
}
