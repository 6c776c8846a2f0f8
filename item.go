package knowlix

import "fmt"

// Item kinds. Functions with a receiver are methods.
const (
	KindFunction = "function"
	KindMethod   = "method"
	KindType     = "type"
)

// Item is a flattened per-symbol record: one exported function, method, or
// type, combined with its package identity. Items are the unit of LLM doc
// generation and of the on-disk doc store.
type Item struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Name        string   `json:"name"`
	Signature   string   `json:"signature"`
	Package     string   `json:"package"`
	ImportPath  string   `json:"importPath"`
	Receiver    string   `json:"receiver,omitempty"`
	Params      string   `json:"params,omitempty"`
	Returns     string   `json:"returns,omitempty"`
	TypeKind    string   `json:"typeKind,omitempty"`
	Fields      []string `json:"fields,omitempty"`
	Methods     []string `json:"methods,omitempty"`
	Description string   `json:"description,omitempty"` // from the source docs, if any
}

// CollectItems flattens parsed packages into the ordered item list:
// package order, functions before types within each package.
func CollectItems(packages []*Package) []Item {
	items := []Item{}
	for _, pkg := range packages {
		for _, fn := range pkg.Functions {
			kind := KindFunction
			if fn.Receiver != "" {
				kind = KindMethod
			}
			items = append(items, Item{
				ID:          fmt.Sprintf("%s:%s", pkg.ImportPath, fn.Signature),
				Kind:        kind,
				Name:        fn.Name,
				Signature:   fn.Signature,
				Package:     pkg.Name,
				ImportPath:  pkg.ImportPath,
				Receiver:    fn.Receiver,
				Params:      fn.Params,
				Returns:     fn.Returns,
				Description: fn.Description,
			})
		}
		for _, typ := range pkg.Types {
			items = append(items, Item{
				ID:          fmt.Sprintf("%s:type:%s", pkg.ImportPath, typ.Name),
				Kind:        KindType,
				Name:        typ.Name,
				Signature:   fmt.Sprintf("type %s %s", typ.Name, typ.Kind),
				Package:     pkg.Name,
				ImportPath:  pkg.ImportPath,
				TypeKind:    typ.Kind,
				Fields:      typ.Fields,
				Methods:     typ.Methods,
				Description: typ.Description,
			})
		}
	}
	return items
}
