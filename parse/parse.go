package parse

import (
	"github.com/adrian-kriegel/vtx/debug"
	"github.com/adrian-kriegel/vtx/doc"
	"github.com/adrian-kriegel/vtx/token"
)

// Parser owns the cursor, token store and mode registry for one module.
type Parser struct {
	src   *token.Source
	store *token.Store
	modes *ModeRegistry
	ids   *doc.IDGen
}

// Parse parses an entire module. It never fails; malformed input yields
// diagnostics and a best-effort tree. The returned root is the module's
// single Module environment.
func Parse(src string, options ...Option) (*doc.Node, []token.Diag) {
	o := &opts{}
	for _, f := range options {
		f(o)
	}
	if o.ids == nil {
		o.ids = &doc.IDGen{}
	}
	if o.modes == nil {
		o.modes = NewModes()
	}
	p := &Parser{
		src:   token.NewSource(src),
		store: token.NewStore(),
		modes: o.modes,
		ids:   o.ids,
	}
	children := p.parseChildren(token.EndOfModule)
	return doc.Module(p.ids, children), p.store.Diags()
}

// parseChildren parses the body of an environment terminated by closing.
// On end-of-input without the closing token it returns the children
// collected so far; the capture primitive has already recorded the
// diagnostic.
func (p *Parser) parseChildren(closing token.Kind) []*doc.Node {
	var children []*doc.Node
	for {
		capH, endH := p.seekToAndCapture(token.Text, []token.Kind{
			closing,
			token.FragmentOpen,
			token.EnvOpen,
			token.DollarBrace,
			token.Dollar,
			token.CommentOpen,
			token.HeadingOpen,
		})
		stop := *p.store.Get(endH)

		if capH != token.None {
			t := p.store.Get(capH)
			pos := t.Pos
			children = append(children, doc.Text(p.ids, t.Value, &pos))
		}

		stopPos := stop.Pos
		switch stop.Kind {
		case closing:
			return children

		case token.HeadingOpen:
			level := len(stop.Value) - 1
			kids := p.parseChildren(token.EndOfLine)
			children = append(children, doc.Heading(p.ids, level, kids, &stopPos))

		case token.FragmentOpen:
			kids := p.parseChildren(token.FragmentClose)
			children = append(children, doc.NewEnv(p.ids, &doc.Env{
				Kind:     doc.FragmentHeader,
				Children: kids,
			}, &stopPos))

		case token.EnvOpen:
			children = append(children, p.parseEnvFromName(&stopPos))

		case token.DollarBrace:
			nameH, _ := p.seekToAndCapture(token.VariableName, []token.Kind{token.RightBrace})
			children = append(children, doc.Var(p.ids, p.store.Value(nameH), &stopPos))

		case token.Dollar:
			mathH, _ := p.seekToAndCapture(token.Math, []token.Kind{token.Dollar})
			var kids []*doc.Node
			if mathH != token.None {
				t := p.store.Get(mathH)
				pos := t.Pos
				kids = []*doc.Node{doc.Text(p.ids, t.Value, &pos)}
			}
			children = append(children, doc.NewEnv(p.ids, &doc.Env{
				Kind:     doc.EqInline,
				Children: kids,
			}, &stopPos))

		case token.CommentOpen:
			textH, _ := p.seekToAndCapture(token.CommentText, []token.Kind{token.CommentClose})
			children = append(children, doc.Comment(p.ids, p.store.Value(textH), &stopPos))

		case token.EndOfModule:
			return children
		}
	}
}

// parseEnvFromName parses an environment right after the '<'. The body is
// scanned per the registry's mode for this tag: markup recurses into
// parseChildren, raw captures one opaque text span in which nested angle
// brackets, dollar signs and comment markers are inert.
func (p *Parser) parseEnvFromName(pos *token.Pos) *doc.Node {
	env, stop := p.parseEnvHeader()
	mode := p.modes.lookup(env)

	switch stop {
	case token.SelfClose:
		env.SelfClosing = true

	case token.RightAngle:
		closing := token.EnvClose(env.ClosingTag())
		switch mode {
		case ModeMarkup:
			env.Children = p.parseChildren(closing)
		case ModeRaw:
			capH, _ := p.seekToAndCapture(token.Text, []token.Kind{closing})
			if capH != token.None {
				t := p.store.Get(capH)
				tp := t.Pos
				env.Children = []*doc.Node{doc.Text(p.ids, t.Value, &tp)}
			}
		}
	}
	// on EndOfModule the header never closed; the diagnostic is already
	// recorded and the env is kept childless

	return doc.NewEnv(p.ids, env, pos)
}

// parseEnvHeader parses an env header starting from the name, e.g.
// `Eq>`, `Eq label="eq:energy">`, `Image src="x" />`. Component
// definitions register their declared tag's parse mode as a side effect.
func (p *Parser) parseEnvHeader() (*doc.Env, token.Kind) {
	nameH, stopH := p.seekToAndCapture(token.EnvName, []token.Kind{
		token.Whitespace,
		token.SelfClose,
		token.RightAngle,
	})

	// EnvOpen only matches '<' followed by a letter, so the name is
	// never empty on well-formed matches; Value handles the EOF case.
	name := p.store.Value(nameH)
	attrsPos := p.src.Pos()

	env := &doc.Env{Kind: doc.HeaderKindByName(name)}
	if env.Kind == doc.OtherHeader {
		env.Name = name
	}

	stop := p.store.Get(stopH).Kind
	if stop == token.Whitespace {
		attrs, after := p.parseAttrs()
		env.Attrs = attrs
		stop = after
	}

	if env.Kind == doc.ComponentHeader {
		cname, ok := doc.ComponentName(env.Attrs)
		if !ok {
			p.store.AddDiag(ErrMissingAttrName, attrsPos)
		} else {
			p.registerComponent(cname, env.Attrs, attrsPos)
		}
	}
	return env, stop
}

// parseAttrs parses the attribute list after the tag name. A bare name is
// a boolean attribute; name="value" stores the value node, with ${x}
// interpolation handled by attrValue. A missing name before '=' yields a
// diagnostic and a placeholder key so parsing continues.
func (p *Parser) parseAttrs() (doc.Attrs, token.Kind) {
	attrs := doc.Attrs{}
	for {
		keyH, endH := p.seekToAndCapture(token.AttrName, []token.Kind{
			token.Equals,
			token.Whitespace,
			token.SelfClose,
			token.RightAngle,
		})
		end := *p.store.Get(endH)

		switch end.Kind {
		case token.Equals:
			key := p.store.Value(keyH)
			if keyH == token.None {
				p.store.AddDiag(ErrMissingAttrName, end.Pos)
				key = "<error>"
			}

			// skip whitespace up to the opening quote
			p.seekToAndCapture(token.Whitespace, []token.Kind{token.Quote})

			valH, _ := p.seekToAndCapture(token.StringLiteral, []token.Kind{token.Quote})
			var value *doc.Node
			if valH != token.None {
				t := p.store.Get(valH)
				value = p.attrValue(t.Value, t.Pos)
			} else {
				// empty string literal: no token was captured
				ep := end.Pos
				value = doc.Text(p.ids, "", &ep)
			}
			attrs[key] = value

			p.src.Match(token.Whitespace)

		default:
			if keyH != token.None {
				attrs[p.store.Value(keyH)] = nil
			}
			switch end.Kind {
			case token.SelfClose, token.RightAngle, token.EndOfModule:
				return attrs, end.Kind
			}
		}
	}
}

func (p *Parser) registerComponent(name string, attrs doc.Attrs, pos token.Pos) {
	mode, err := modeFromAttrs(attrs)
	if err != nil {
		p.store.AddDiag(err, pos)
	}
	p.modes.set(tagKey{kind: doc.OtherHeader, name: name}, mode)
	if debug.Modes() {
		debug.Logf("parse: component %s content mode %s\n", name, mode)
	}
}
