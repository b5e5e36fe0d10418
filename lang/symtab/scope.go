package symtab

import (
	"github.com/dolthub/swiss"
)

// Scope is one frame's three disjoint name->Variable maps: declared
// constants, initialized variables, and declared-but-not-yet-initialized
// variables. A name lives in exactly one at a time; Initialize moves it from
// Uninitialized to Vars the first time a scan or assignment gives it a
// value. Used for both the global frame and every function's local frame.
type Scope struct {
	Constants     *swiss.Map[string, Variable]
	Vars          *swiss.Map[string, Variable]
	Uninitialized *swiss.Map[string, Variable]

	nextSlot int32
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{
		Constants:     swiss.NewMap[string, Variable](8),
		Vars:          swiss.NewMap[string, Variable](8),
		Uninitialized: swiss.NewMap[string, Variable](8),
	}
}

// Declared reports whether name already exists in any of the three maps,
// enforcing invariant 1 (name uniqueness within a frame).
func (s *Scope) Declared(name string) bool {
	if _, ok := s.Constants.Get(name); ok {
		return true
	}
	if _, ok := s.Vars.Get(name); ok {
		return true
	}
	if _, ok := s.Uninitialized.Get(name); ok {
		return true
	}
	return false
}

// ReserveSlot reserves the next free slot in the frame without recording it
// under any name yet. local_stack_pointer only ever grows (invariant 2: no
// inner scopes to pop back out of). The parser reserves a slot before
// emitting a declaration's initializer so that the name is not visible to
// its own initializer expression, then calls one of the Put* methods once
// the initializer has been emitted.
func (s *Scope) ReserveSlot() int32 {
	slot := s.nextSlot
	s.nextSlot++
	return slot
}

// PutConstant records name as a constant at the given slot/type.
func (s *Scope) PutConstant(name string, v Variable) { s.Constants.Put(name, v) }

// PutVar records name as an already-initialized variable.
func (s *Scope) PutVar(name string, v Variable) { s.Vars.Put(name, v) }

// PutUninitialized records name as declared but not yet initialized.
func (s *Scope) PutUninitialized(name string, v Variable) { s.Uninitialized.Put(name, v) }

// DeclareConstant allocates a slot and records name as a constant in one
// step. Callers must have already checked Declared(name).
func (s *Scope) DeclareConstant(name string, typ Type) Variable {
	v := Variable{Slot: s.ReserveSlot(), Type: typ}
	s.PutConstant(name, v)
	return v
}

// DeclareVar allocates a slot and records name as an already-initialized
// variable in one step.
func (s *Scope) DeclareVar(name string, typ Type) Variable {
	v := Variable{Slot: s.ReserveSlot(), Type: typ}
	s.PutVar(name, v)
	return v
}

// DeclareUninitialized allocates a slot and records name as not yet
// initialized in one step.
func (s *Scope) DeclareUninitialized(name string, typ Type) Variable {
	v := Variable{Slot: s.ReserveSlot(), Type: typ}
	s.PutUninitialized(name, v)
	return v
}

// Initialize moves name from Uninitialized to Vars, the transition a scan or
// first assignment performs. It is a no-op if name is not uninitialized.
func (s *Scope) Initialize(name string) {
	v, ok := s.Uninitialized.Get(name)
	if !ok {
		return
	}
	s.Uninitialized.Delete(name)
	s.Vars.Put(name, v)
}

// Lookup finds name in any of the three maps, reporting whether it is a
// constant and whether it is still uninitialized.
func (s *Scope) Lookup(name string) (v Variable, isConst, isUninitialized, ok bool) {
	if v, ok := s.Constants.Get(name); ok {
		return v, true, false, true
	}
	if v, ok := s.Vars.Get(name); ok {
		return v, false, false, true
	}
	if v, ok := s.Uninitialized.Get(name); ok {
		return v, false, true, true
	}
	return Variable{}, false, false, false
}
