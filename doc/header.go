package doc

import (
	"sort"
	"strconv"
)

// HeaderKind is the closed set of environment header kinds. Anything not
// built in parses as OtherHeader with the tag name in Env.Name.
type HeaderKind int

const (
	OtherHeader HeaderKind = iota
	EqBlock
	EqInline
	CodeHeader
	ModuleHeader
	FragmentHeader
	HeadingHeader
	ComponentHeader
)

// Attrs maps attribute names to their value nodes. A nil value is a
// boolean attribute (present, no value). Values are normally Text nodes;
// they may reference variables before resolution. Iteration order is
// unspecified; emission sorts keys.
type Attrs map[string]*Node

// Env is the payload of an EnvType node.
type Env struct {
	Kind  HeaderKind
	Name  string // tag name for OtherHeader
	Level int    // heading level for HeadingHeader
	Attrs Attrs

	// SelfClosing environments have no children; attaching children to
	// one is illegal by construction.
	SelfClosing bool
	Children    []*Node
}

// HeaderKindByName resolves a parsed tag name. Unknown names are
// OtherHeader; the caller keeps the name alongside.
func HeaderKindByName(name string) HeaderKind {
	switch name {
	case "Eq":
		return EqBlock
	case "Code":
		return CodeHeader
	case "Component":
		return ComponentHeader
	default:
		return OtherHeader
	}
}

// TagName returns the canonical textual name used for matching and
// emission. Module and Fragment render to nothing and have no name.
func (e *Env) TagName() string {
	switch e.Kind {
	case EqBlock, EqInline:
		return "Eq"
	case CodeHeader:
		return "Code"
	case ComponentHeader:
		return "Component"
	case HeadingHeader:
		return "h" + strconv.Itoa(e.Level)
	case ModuleHeader, FragmentHeader:
		return ""
	default:
		return e.Name
	}
}

// ClosingTag returns the closing token text, e.g. "</Eq>", or "" for
// kinds with no textual form.
func (e *Env) ClosingTag() string {
	name := e.TagName()
	if name == "" {
		return ""
	}
	return "</" + name + ">"
}

// ComponentName extracts the declared name from a component definition's
// attributes: the first boolean attribute in key order, skipping the
// reserved "content" parse-mode attribute.
func ComponentName(attrs Attrs) (string, bool) {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k == "content" {
			continue
		}
		if attrs[k] == nil {
			return k, true
		}
	}
	return "", false
}
