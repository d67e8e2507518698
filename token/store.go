package token

import "fmt"

// Token is a matched or captured span of the source.
type Token struct {
	Kind  Kind
	Value string
	Pos   Pos
}

// Handle refers to a token in a Store. None means "nothing captured",
// which is distinct from an empty captured string.
type Handle int

const None Handle = -1

// Diag is a non-fatal parse diagnostic. Parsing always completes; callers
// inspect the accumulated diagnostics afterwards.
type Diag struct {
	Err error
	Pos Pos
}

func (d Diag) Error() string {
	return fmt.Sprintf("%s at %s", d.Err, d.Pos)
}

func (d Diag) Unwrap() error {
	return d.Err
}

// Store is the append-only list of tokens produced so far, plus the
// diagnostics accumulated alongside them. A Store belongs to exactly one
// parser invocation.
type Store struct {
	toks  []Token
	diags []Diag
}

func NewStore() *Store {
	return &Store{}
}

func (st *Store) Push(t Token) Handle {
	st.toks = append(st.toks, t)
	return Handle(len(st.toks) - 1)
}

func (st *Store) Get(h Handle) *Token {
	return &st.toks[h]
}

// Value returns what a capture handle refers to; None yields "".
func (st *Store) Value(h Handle) string {
	if h == None {
		return ""
	}
	return st.toks[h].Value
}

func (st *Store) AddDiag(err error, pos Pos) {
	st.diags = append(st.diags, Diag{Err: err, Pos: pos})
}

func (st *Store) Diags() []Diag {
	return st.diags
}
