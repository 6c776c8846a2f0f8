package knowlix

// Type kinds recognized by the type block extractor. No other kind is ever
// produced.
const (
	TypeKindStruct    = "struct"
	TypeKindInterface = "interface"
)

// Function represents an exported function or method recovered from
// documentation text. Records are immutable once constructed.
type Function struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"` // canonical re-rendered form
	Description string `json:"description"`
	Receiver    string `json:"receiver"` // empty for free functions
	Params      string `json:"params"`   // raw parameter-list text, "()" if absent
	Returns     string `json:"returns"`  // raw return-clause text, may be empty
	Package     string `json:"package"`
}

// Type represents an exported struct or interface recovered from
// documentation text. Field and method order is documentation order.
type Type struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // TypeKindStruct or TypeKindInterface
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
	Methods     []string `json:"methods"`
	Package     string   `json:"package"`
}

// PackageMeta holds externally supplied package identity. It is obtained
// from the toolchain collaborator (gotool), never from the parsed text.
type PackageMeta struct {
	Name       string `json:"name"`
	ImportPath string `json:"importPath"`
	Dir        string `json:"dir"`
	Doc        string `json:"doc"` // package-level doc sentence, if any
}

// Package combines package metadata with the ordered function and type
// records produced by one scan of one package's documentation text.
type Package struct {
	Name        string     `json:"name"`
	ImportPath  string     `json:"importPath"`
	Functions   []Function `json:"functions"`
	Types       []Type     `json:"types"`
	Description string     `json:"description"`
}

// Validate returns an error if the package metadata is unusable.
// An empty import path is tolerated; local-directory parses may not have one.
func (p *Package) Validate() error {
	if p.Name == "" {
		return Errorf(EUNAVAILABLE, "package metadata unavailable: name required")
	}
	return nil
}
