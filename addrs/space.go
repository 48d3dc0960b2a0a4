package addrs

// Kind identifies the addressing domain an offset is resolved in.
// An emulated machine typically has at least a memory space and a
// register space; offsets are only meaningful within one kind.
type Kind uint8

const (
	KindMemory Kind = iota
	KindRegister
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMemory:
		return "memory"
	case KindRegister:
		return "register"
	default:
		return "UNKNOWN"
	}
}

// Space names one addressing domain of the emulated machine. It is an
// immutable value and is comparable, so it can key registry maps directly.
type Space struct {
	Name string
	Kind Kind
}

// MemorySpace returns a memory-kind space with the given name.
func MemorySpace(name string) Space {
	return Space{Name: name, Kind: KindMemory}
}

// RegisterSpace returns a register-kind space with the given name.
func RegisterSpace(name string) Space {
	return Space{Name: name, Kind: KindRegister}
}

// String returns a human-readable representation of the space.
func (s Space) String() string {
	return s.Name + "(" + s.Kind.String() + ")"
}
