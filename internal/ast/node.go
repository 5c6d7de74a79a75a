package ast

import "tsuki/token"

func (b *Binary) Pos() token.Position         { return b.Left.Pos() }
func (l *Logical) Pos() token.Position        { return l.Left.Pos() }
func (u *Unary) Pos() token.Position          { return u.Op.Position }
func (g *Group) Pos() token.Position          { return g.Expr.Pos() }
func (s *StringLiteral) Pos() token.Position  { return s.Token.Position }
func (f *FloatLiteral) Pos() token.Position   { return f.Token.Position }
func (i *IntegerLiteral) Pos() token.Position { return i.Token.Position }
func (b *BoolLiteral) Pos() token.Position    { return b.Token.Position }
func (a *AtomLiteral) Pos() token.Position    { return a.Token.Position }
func (u *Underscore) Pos() token.Position     { return u.Token.Position }
func (n *Null) Pos() token.Position           { return n.Token.Position }
func (l *ListLiteral) Pos() token.Position    { return l.Token.Position }
func (o *ObjectLiteral) Pos() token.Position  { return o.Token.Position }
func (v *Variable) Pos() token.Position       { return v.Name.Position }
func (a *Assign) Pos() token.Position         { return a.Token.Position }
func (c *Call) Pos() token.Position           { return c.Token.Position }
func (g *Get) Pos() token.Position            { return g.Token.Position }
func (s *Set) Pos() token.Position            { return s.Token.Position }

func (f *Func) Pos() token.Position {
	if f.Name != nil {
		return f.Name.Position
	}
	return f.Body.Pos()
}

func (m *Match) Pos() token.Position  { return m.Token.Position }
func (b *Block) Pos() token.Position  { return b.Token.Position }
func (u *Unsafe) Pos() token.Position { return u.Token.Position }
func (s *Shell) Pos() token.Position  { return s.Token.Position }
func (e *End) Pos() token.Position    { return token.Position{} }

func (*Binary) expr()         {}
func (*Logical) expr()        {}
func (*Unary) expr()          {}
func (*Group) expr()          {}
func (*StringLiteral) expr()  {}
func (*FloatLiteral) expr()   {}
func (*IntegerLiteral) expr() {}
func (*BoolLiteral) expr()    {}
func (*AtomLiteral) expr()    {}
func (*Underscore) expr()     {}
func (*Null) expr()           {}
func (*ListLiteral) expr()    {}
func (*ObjectLiteral) expr()  {}
func (*Variable) expr()       {}
func (*Assign) expr()         {}
func (*Call) expr()           {}
func (*Get) expr()            {}
func (*Set) expr()            {}
func (*Func) expr()           {}
func (*Match) expr()          {}
func (*Block) expr()          {}
func (*Unsafe) expr()         {}
func (*Shell) expr()          {}
func (*End) expr()            {}
