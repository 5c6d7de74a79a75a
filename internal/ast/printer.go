package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PrettyPrint renders a stream of top-level expressions one per line.
func PrettyPrint(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, "\n")
}

func printAll(exprs []Expr, sep string) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, sep)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Op.Print(), b.Left, b.Right)
}

func (l *Logical) String() string {
	return fmt.Sprintf("(%s %s %s)", l.Op.Print(), l.Left, l.Right)
}

func (u *Unary) String() string {
	return fmt.Sprintf("(%s %s)", u.Op.Print(), u.Right)
}

func (g *Group) String() string {
	return fmt.Sprintf("(%s)", g.Expr)
}

func (s *StringLiteral) String() string {
	return fmt.Sprintf("\"%s\"", s.Value)
}

func (f *FloatLiteral) String() string {
	return strconv.FormatFloat(f.Value, 'f', -1, 64)
}

func (i *IntegerLiteral) String() string {
	return strconv.FormatInt(i.Value, 10)
}

func (b *BoolLiteral) String() string {
	return strconv.FormatBool(b.Value)
}

func (a *AtomLiteral) String() string {
	return ":" + a.Value
}

func (u *Underscore) String() string {
	return ":_:"
}

func (n *Null) String() string {
	return "null"
}

func (l *ListLiteral) String() string {
	if len(l.Values) == 0 {
		return "(list)"
	}
	return fmt.Sprintf("(list %s)", printAll(l.Values, " "))
}

func (o *ObjectLiteral) String() string {
	if len(o.Keys) == 0 {
		return "(object)"
	}
	pairs := make([]string, 0, len(o.Keys))
	for i, k := range o.Keys {
		pairs = append(pairs, fmt.Sprintf("%s:%s", k.Print(), o.Values[i]))
	}
	return fmt.Sprintf("(object %s)", strings.Join(pairs, " "))
}

func (v *Variable) String() string {
	return v.Name.Print()
}

func (a *Assign) String() string {
	var flags strings.Builder
	if a.Public {
		flags.WriteByte('P')
	}
	if a.Init {
		flags.WriteByte('I')
	}
	if a.Mutable {
		flags.WriteByte('M')
	}
	return fmt.Sprintf("(assign%s %s %s)", flags.String(), a.Left, a.Right)
}

func (c *Call) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(c.Callee.String())
	for _, arg := range c.Args {
		b.WriteString(" ")
		if arg.Unpack {
			b.WriteString("...")
		}
		b.WriteString(arg.Value.String())
	}
	b.WriteString(")")
	return b.String()
}

func (g *Get) String() string {
	return fmt.Sprintf("%s.%s", g.Instance, g.Value)
}

func (s *Set) String() string {
	return fmt.Sprintf("(set %s.%s %s)", s.Instance, s.Token.Print(), s.Value)
}

func (f *Func) String() string {
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, p.Print())
	}
	if f.Name == nil {
		return fmt.Sprintf("(lambda (%s) %s)", strings.Join(params, " "), f.Body)
	}
	rest := ""
	if f.Rest != nil {
		if len(f.Params) > 0 {
			rest = " " + f.Rest.Print() + "+"
		} else {
			rest = f.Rest.Print() + "+"
		}
	}
	public := ""
	if f.Public {
		public = " [public]"
	}
	return fmt.Sprintf("(func%s %s (%s%s) %s)",
		public, f.Name.Print(), strings.Join(params, " "), rest, f.Body)
}

func (m *Match) String() string {
	var b strings.Builder
	b.WriteString("(match ")
	b.WriteString(m.Condition.String())
	for i, branch := range m.Branches {
		if i == 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("%s -> %s", branch.Target, branch.Body))
		if i < len(m.Branches)-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString(")")
	return b.String()
}

func (bl *Block) String() string {
	if len(bl.Exprs) == 0 {
		return "(block)"
	}
	return fmt.Sprintf("(block %s)", printAll(bl.Exprs, " "))
}

func (u *Unsafe) String() string {
	return fmt.Sprintf("(unsafe %s)", u.Expr)
}

func (s *Shell) String() string {
	return fmt.Sprintf("(shell_op %s)", s.Expr)
}

func (e *End) String() string {
	return ""
}
