package domctx

// Requirement grades how strongly a setting must resolve against a candidate
// domain for the owning context to stay usable.
type Requirement int

const (
	// Optional settings may fail to resolve; they only lower the score.
	Optional Requirement = iota
	// IfSelected settings are lists whose currently selected entries must
	// resolve; unselected entries may drop.
	IfSelected
	// Required settings make the whole context incompatible when they fail
	// to resolve.
	Required
)

// Setting declares how one named value stored in a context is matched
// against a candidate domain and carried across domains when cloning.
type Setting struct {
	// Name of the stored value this declaration governs.
	Name string

	Require Requirement

	// NotAttribute marks payloads that never reference domain columns; they
	// are carried verbatim and ignored by matching.
	NotAttribute bool

	// ExcludeAttributes stops resolution against the attribute encoding.
	ExcludeAttributes bool

	// IncludeMetas allows resolution against the meta encoding. Off by
	// default: most settings reference attribute columns only.
	IncludeMetas bool

	// Selected names the companion setting holding the []int of selected
	// list indices for IfSelected declarations.
	Selected string
}

// Settings is the ordered set of declarations bound to a handler.
type Settings []Setting

// Validate checks the declarations for internal consistency and returns an
// Issues error describing every problem found.
func (ss Settings) Validate() error {
	var iss Issues
	seen := make(map[string]bool, len(ss))
	for _, s := range ss {
		path := "/settings/" + s.Name
		if s.Name == "" {
			iss = AppendIssues(iss, Issue{Path: "/settings", Code: CodeInvalidSetting, Message: "setting has no name"})
			continue
		}
		if seen[s.Name] {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeDuplicateSetting, Message: "duplicate setting name"})
		}
		seen[s.Name] = true
		if s.Require == IfSelected && s.Selected == "" {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeInvalidSetting, Message: "if-selected setting needs a selected companion"})
		}
	}
	for _, s := range ss {
		// The selected companion is a plain stored value, not a declared
		// setting; a collision would make the index list subject to list
		// filtering itself.
		if s.Selected != "" && seen[s.Selected] {
			iss = AppendIssues(iss, Issue{
				Path:    "/settings/" + s.Name + "/selected",
				Code:    CodeInvalidSetting,
				Message: "selected companion collides with a declared setting",
			})
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}
