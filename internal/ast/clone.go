package ast

import "tsuki/token"

// Clone returns an independent deep copy of an expression tree. The macro
// table clones stored bodies on every use so substitution sites never share
// structure.
func Clone(e Expr) Expr {
	switch e := e.(type) {
	case *Binary:
		return &Binary{Left: Clone(e.Left), Right: Clone(e.Right), Op: e.Op}
	case *Logical:
		return &Logical{Left: Clone(e.Left), Right: Clone(e.Right), Op: e.Op}
	case *Unary:
		return &Unary{Right: Clone(e.Right), Op: e.Op}
	case *Group:
		return &Group{Expr: Clone(e.Expr)}
	case *StringLiteral:
		c := *e
		return &c
	case *FloatLiteral:
		c := *e
		return &c
	case *IntegerLiteral:
		c := *e
		return &c
	case *BoolLiteral:
		c := *e
		return &c
	case *AtomLiteral:
		c := *e
		return &c
	case *Underscore:
		c := *e
		return &c
	case *Null:
		c := *e
		return &c
	case *ListLiteral:
		values := make([]Expr, len(e.Values))
		for i, v := range e.Values {
			values[i] = Clone(v)
		}
		return &ListLiteral{Token: e.Token, Values: values}
	case *ObjectLiteral:
		keys := append([]token.Token(nil), e.Keys...)
		values := make([]Expr, len(e.Values))
		for i, v := range e.Values {
			values[i] = Clone(v)
		}
		return &ObjectLiteral{Token: e.Token, Keys: keys, Values: values}
	case *Variable:
		c := *e
		return &c
	case *Assign:
		return &Assign{
			Init:    e.Init,
			Public:  e.Public,
			Mutable: e.Mutable,
			Token:   e.Token,
			Left:    Clone(e.Left),
			Right:   Clone(e.Right),
		}
	case *Call:
		args := make([]CallArg, len(e.Args))
		for i, a := range e.Args {
			args[i] = CallArg{Value: Clone(a.Value), Unpack: a.Unpack}
		}
		return &Call{Callee: Clone(e.Callee), Args: args, Token: e.Token}
	case *Get:
		return &Get{Instance: Clone(e.Instance), Value: Clone(e.Value), Token: e.Token}
	case *Set:
		return &Set{Instance: Clone(e.Instance), Token: e.Token, Value: Clone(e.Value)}
	case *Func:
		c := &Func{Public: e.Public, Body: Clone(e.Body)}
		if e.Name != nil {
			name := *e.Name
			c.Name = &name
		}
		if e.Rest != nil {
			rest := *e.Rest
			c.Rest = &rest
		}
		c.Params = append(c.Params, e.Params...)
		return c
	case *Match:
		branches := make([]MatchBranch, len(e.Branches))
		for i, b := range e.Branches {
			branches[i] = MatchBranch{Target: Clone(b.Target), Body: Clone(b.Body)}
		}
		return &Match{Token: e.Token, Condition: Clone(e.Condition), Branches: branches}
	case *Block:
		exprs := make([]Expr, len(e.Exprs))
		for i, x := range e.Exprs {
			exprs[i] = Clone(x)
		}
		return &Block{Token: e.Token, Exprs: exprs}
	case *Unsafe:
		return &Unsafe{Token: e.Token, Expr: Clone(e.Expr)}
	case *Shell:
		return &Shell{Token: e.Token, Expr: Clone(e.Expr)}
	case *End:
		return &End{}
	}
	return e
}
