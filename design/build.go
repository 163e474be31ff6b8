// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package design

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/db47h/hwnet"
	"github.com/db47h/hwnet/internal/hdl"
	multierror "github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

type builder struct {
	f     *File
	d     *hwnet.Design
	types map[string]hwnet.Type
	busy  map[string]bool
	errs  *multierror.Error
}

// Build creates the design described by f. All errors found in the
// declarations are returned in a *multierror.Error. Connections and update
// blocks are only processed if all types, components and signals are valid.
//
func (f *File) Build() (*hwnet.Design, error) {
	if !hdl.IsIdent(f.Top) {
		return nil, errors.Errorf("invalid top component name %q", f.Top)
	}
	b := &builder{
		f:     f,
		d:     hwnet.NewDesign(f.Top),
		types: make(map[string]hwnet.Type),
		busy:  make(map[string]bool),
	}
	b.buildTypes()
	b.buildComponents()
	b.buildSignals()
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	b.buildConnections()
	b.buildUpdates()
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return b.d, nil
}

func (b *builder) fail(at string, err error) {
	b.errs = multierror.Append(b.errs, errors.Wrap(err, at))
}

func (b *builder) errorf(at string, format string, args ...interface{}) {
	b.fail(at, errors.Errorf(format, args...))
}

// try converts declaration panics from hwnet into errors.
//
func try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return nil
}

func index(section string, i int) string {
	return section + "[" + strconv.Itoa(i) + "]"
}

// suggest returns a hint naming the candidate closest to name, or an empty
// string if none is close enough. Names shorter than the distance to every
// candidate get no hint.
//
func suggest(name string, candidates []string) string {
	best, dist := "", 3
	for _, c := range candidates {
		if d := levenshtein.Distance(name, c, nil); d < dist && d < len(name) {
			best, dist = c, d
		}
	}
	if best == "" {
		return ""
	}
	return " (did you mean " + strconv.Quote(best) + "?)"
}

func bitsWidth(name string) (int, bool) {
	if !strings.HasPrefix(name, "Bits") {
		return 0, false
	}
	n, err := strconv.Atoi(name[4:])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func (b *builder) typeNames() []string {
	ns := make([]string, 0, len(b.f.Types))
	for n := range b.f.Types {
		ns = append(ns, n)
	}
	sort.Strings(ns)
	return ns
}

func (b *builder) typ(name string) (hwnet.Type, error) {
	if t, ok := b.types[name]; ok {
		return t, nil
	}
	if n, ok := bitsWidth(name); ok {
		return hwnet.Bits(n), nil
	}
	decl, ok := b.f.Types[name]
	if !ok {
		return hwnet.Type{}, errors.Errorf("unknown type %q%s", name, suggest(name, b.typeNames()))
	}
	if b.busy[name] {
		return hwnet.Type{}, errors.Errorf("recursive type %q", name)
	}
	if len(decl.Fields) == 0 {
		return hwnet.Type{}, errors.Errorf("struct type %q has no fields", name)
	}
	b.busy[name] = true
	defer delete(b.busy, name)

	fs := make([]hwnet.FieldType, 0, len(decl.Fields))
	seen := make(map[string]bool, len(decl.Fields))
	for _, fd := range decl.Fields {
		if !hdl.IsIdent(fd.Name) {
			return hwnet.Type{}, errors.Errorf("invalid field name %q in type %q", fd.Name, name)
		}
		if seen[fd.Name] {
			return hwnet.Type{}, errors.Errorf("duplicate field %q in type %q", fd.Name, name)
		}
		seen[fd.Name] = true
		ft, err := b.typ(fd.Type)
		if err != nil {
			return hwnet.Type{}, errors.Wrapf(err, "field %s of %s", fd.Name, name)
		}
		fs = append(fs, hwnet.F(fd.Name, ft))
	}
	t := hwnet.Struct(name, fs...)
	b.types[name] = t
	return t, nil
}

func (b *builder) buildTypes() {
	for _, n := range b.typeNames() {
		at := "types." + n
		if _, ok := bitsWidth(n); ok || !hdl.IsIdent(n) {
			b.errorf(at, "invalid type name %q", n)
			continue
		}
		if _, err := b.typ(n); err != nil {
			b.fail(at, err)
		}
	}
}

// comp returns the component at the given path relative to the top.
//
func (b *builder) comp(path []string) (hwnet.Comp, error) {
	c := b.d.Top()
	for _, n := range path {
		ch, ok := b.d.Child(c, n)
		if !ok {
			var ns []string
			for _, ch := range b.d.Children(c) {
				ns = append(ns, b.d.CompLocalName(ch))
			}
			sort.Strings(ns)
			return hwnet.NoComp, errors.Errorf("no component %q in %s%s", n, b.d.CompName(c), suggest(n, ns))
		}
		c = ch
	}
	return c, nil
}

// compRef returns the component referenced by path. An empty path is the top
// component.
//
func (b *builder) compRef(path string) (hwnet.Comp, error) {
	if path == "" {
		return b.d.Top(), nil
	}
	r, err := hdl.ParseRef(path)
	if err != nil {
		return hwnet.NoComp, err
	}
	if r.Slice {
		return hwnet.NoComp, errors.Errorf("unexpected slice in component path %q", path)
	}
	return b.comp(r.Path)
}

func (b *builder) buildComponents() {
	type decl struct {
		path []string
		at   string
	}
	var ds []decl
	for i, c := range b.f.Components {
		at := index("components", i)
		r, err := hdl.ParseRef(c)
		if err != nil {
			b.fail(at, err)
			continue
		}
		if r.Slice {
			b.errorf(at, "unexpected slice in component path %q", c)
			continue
		}
		ds = append(ds, decl{r.Path, at})
	}
	// parents first
	sort.SliceStable(ds, func(i, j int) bool { return len(ds[i].path) < len(ds[j].path) })
	for _, c := range ds {
		parent, err := b.comp(c.path[:len(c.path)-1])
		if err != nil {
			b.fail(c.at, err)
			continue
		}
		if err = try(func() { b.d.Component(parent, c.path[len(c.path)-1]) }); err != nil {
			b.fail(c.at, err)
		}
	}
}

func (b *builder) buildSignals() {
	for i, s := range b.f.Signals {
		at := index("signals", i)
		r, err := hdl.ParseRef(s.Path)
		if err != nil {
			b.fail(at, err)
			continue
		}
		if r.Slice {
			b.errorf(at, "unexpected slice in signal declaration %q", s.Path)
			continue
		}
		c, err := b.comp(r.Path[:len(r.Path)-1])
		if err != nil {
			b.fail(at, err)
			continue
		}
		t, err := b.typ(s.Type)
		if err != nil {
			b.fail(at, err)
			continue
		}
		var declare func(hwnet.Comp, string, hwnet.Type) hwnet.Sig
		switch s.Kind {
		case KindIn:
			declare = b.d.InPort
		case KindOut:
			declare = b.d.OutPort
		case KindWire:
			declare = b.d.Wire
		default:
			b.errorf(at, "invalid signal kind %q, expected one of %s", s.Kind, strings.Join([]string{KindIn, KindOut, KindWire}, ", "))
			continue
		}
		if err = try(func() { declare(c, r.Path[len(r.Path)-1], t) }); err != nil {
			b.fail(at, err)
		}
	}
}

// names returns the names of signals and sub-components of c.
//
func (b *builder) names(c hwnet.Comp) []string {
	var ns []string
	for _, s := range b.d.Signals(c) {
		if b.d.Kind(s) != hwnet.Const {
			ns = append(ns, b.d.LocalName(s))
		}
	}
	for _, ch := range b.d.Children(c) {
		ns = append(ns, b.d.CompLocalName(ch))
	}
	sort.Strings(ns)
	return ns
}

// sig returns the signal referenced by ref.
//
func (b *builder) sig(ref string) (hwnet.Sig, error) {
	r, err := hdl.ParseRef(ref)
	if err != nil {
		return hwnet.NoSig, err
	}
	c := b.d.Top()
	i := 0
	for ; i < len(r.Path)-1; i++ {
		ch, ok := b.d.Child(c, r.Path[i])
		if !ok {
			break
		}
		c = ch
	}
	name := r.Path[i]
	s, ok := b.d.Signal(c, name)
	if !ok {
		return hwnet.NoSig, errors.Errorf("no signal %q in %s%s", name, b.d.CompName(c), suggest(name, b.names(c)))
	}
	for _, f := range r.Path[i+1:] {
		t := b.d.Type(s)
		if !t.IsStruct() {
			return hwnet.NoSig, errors.Errorf("%s of type %s has no fields", b.d.Name(s), t)
		}
		if _, ok := t.Field(f); !ok {
			fs := make([]string, len(t.Fields))
			for i := range t.Fields {
				fs[i] = t.Fields[i].Name
			}
			return hwnet.NoSig, errors.Errorf("type %s of %s has no field %q%s", t, b.d.Name(s), f, suggest(f, fs))
		}
		s = b.d.Field(s, f)
	}
	if r.Slice {
		if err = try(func() { s = b.d.Slice(s, r.Lo, r.Hi) }); err != nil {
			return hwnet.NoSig, err
		}
	}
	return s, nil
}

func (b *builder) buildConnections() {
	for i, c := range b.f.Connections {
		at := index("connections", i)
		a, err := b.sig(c.A)
		if err != nil {
			b.fail(at, err)
			continue
		}
		if c.Const != nil {
			if c.B != "" {
				b.errorf(at, "cannot connect %s to both %s and a constant", c.A, c.B)
				continue
			}
			if w := b.d.Type(a).Width; w < 64 && *c.Const>>uint(w) != 0 {
				b.errorf(at, "constant %d overflows %s of type %s", *c.Const, c.A, b.d.Type(a))
				continue
			}
			owner, err := b.compRef(c.In)
			if err != nil {
				b.fail(at, err)
				continue
			}
			if _, err = b.d.ConnectConst(owner, a, *c.Const); err != nil {
				b.fail(at, err)
			}
			continue
		}
		if c.In != "" {
			b.errorf(at, "constant owner %s set without a constant", c.In)
			continue
		}
		if c.B == "" {
			b.errorf(at, "%s connected to nothing", c.A)
			continue
		}
		s, err := b.sig(c.B)
		if err != nil {
			b.fail(at, err)
			continue
		}
		if err = b.d.Connect(a, s); err != nil {
			b.fail(at, err)
		}
	}
}

func (b *builder) buildUpdates() {
	for i, u := range b.f.Updates {
		at := index("updates", i)
		if !hdl.IsIdent(u.Name) {
			b.errorf(at, "invalid update block name %q", u.Name)
			continue
		}
		host, err := b.compRef(u.Host)
		if err != nil {
			b.fail(at, err)
			continue
		}
		ws := make([]hwnet.Sig, 0, len(u.Writes))
		ok := true
		for j, w := range u.Writes {
			s, err := b.sig(w)
			if err != nil {
				b.fail(index(at+".writes", j), err)
				ok = false
				continue
			}
			ws = append(ws, s)
		}
		if ok {
			b.d.Update(u.Name, host, ws...)
		}
	}
}
