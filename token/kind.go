package token

type kindType int

const (
	kEnvOpen kindType = iota
	kFragmentOpen
	kFragmentClose
	kEnvClose
	kSelfClose
	kRightAngle
	kCommentOpen
	kCommentClose
	kWhitespace
	kEndOfLine
	kEndOfModule
	kDollarBrace
	kRightBrace
	kDollar
	kEquals
	kQuote
	kHeadingOpen

	// capture-only kinds below; Source.Match panics on them
	kText
	kCommentText
	kMath
	kEnvName
	kAttrName
	kVariableName
	kStringLiteral
)

// Kind identifies a token. Kinds are comparable values; EnvClose kinds
// additionally carry the closing tag literal they match, so two EnvClose
// kinds are equal exactly when they close the same tag.
type Kind struct {
	t   kindType
	lit string
}

var (
	EnvOpen       = Kind{t: kEnvOpen}
	FragmentOpen  = Kind{t: kFragmentOpen}
	FragmentClose = Kind{t: kFragmentClose}
	SelfClose     = Kind{t: kSelfClose}
	RightAngle    = Kind{t: kRightAngle}
	CommentOpen   = Kind{t: kCommentOpen}
	CommentClose  = Kind{t: kCommentClose}
	Whitespace    = Kind{t: kWhitespace}
	EndOfLine     = Kind{t: kEndOfLine}
	EndOfModule   = Kind{t: kEndOfModule}
	DollarBrace   = Kind{t: kDollarBrace}
	RightBrace    = Kind{t: kRightBrace}
	Dollar        = Kind{t: kDollar}
	Equals        = Kind{t: kEquals}
	Quote         = Kind{t: kQuote}
	HeadingOpen   = Kind{t: kHeadingOpen}

	Text          = Kind{t: kText}
	CommentText   = Kind{t: kCommentText}
	Math          = Kind{t: kMath}
	EnvName       = Kind{t: kEnvName}
	AttrName      = Kind{t: kAttrName}
	VariableName  = Kind{t: kVariableName}
	StringLiteral = Kind{t: kStringLiteral}
)

// EnvClose returns the kind matching the literal closing tag, e.g. "</Eq>".
func EnvClose(closer string) Kind {
	return Kind{t: kEnvClose, lit: closer}
}

func (k Kind) String() string {
	if k.t == kEnvClose {
		return "EnvClose(" + k.lit + ")"
	}
	return map[kindType]string{
		kEnvOpen:       "EnvOpen",
		kFragmentOpen:  "FragmentOpen",
		kFragmentClose: "FragmentClose",
		kSelfClose:     "SelfClose",
		kRightAngle:    "RightAngle",
		kCommentOpen:   "CommentOpen",
		kCommentClose:  "CommentClose",
		kWhitespace:    "Whitespace",
		kEndOfLine:     "EndOfLine",
		kEndOfModule:   "EndOfModule",
		kDollarBrace:   "DollarBrace",
		kRightBrace:    "RightBrace",
		kDollar:        "Dollar",
		kEquals:        "Equals",
		kQuote:         "Quote",
		kHeadingOpen:   "HeadingOpen",
		kText:          "Text",
		kCommentText:   "CommentText",
		kMath:          "Math",
		kEnvName:       "EnvName",
		kAttrName:      "AttrName",
		kVariableName:  "VariableName",
		kStringLiteral: "StringLiteral",
	}[k.t]
}
