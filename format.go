package knowlix

import "strings"

// noExportedFields is the placeholder line emitted for a type chunk when
// the type has no exported fields.
const noExportedFields = "  (no exported fields)"

// FormatPackage renders each function and type record of a package as an
// independent chunk. Emission order is functions first, then types, each in
// record order. Output is byte-for-byte deterministic for a given package.
func FormatPackage(pkg *Package) []*Chunk {
	chunks := make([]*Chunk, 0, len(pkg.Functions)+len(pkg.Types))

	for _, fn := range pkg.Functions {
		kind := KindFunction
		if fn.Receiver != "" {
			kind = KindMethod
		}
		var b strings.Builder
		b.WriteString("Package: " + pkg.Name + "\n")
		b.WriteString("Function: " + fn.Name + "\n")
		b.WriteString("Signature: " + fn.Signature + "\n")
		b.WriteString("Description: " + fn.Description)
		chunks = append(chunks, &Chunk{
			Package:  pkg.Name,
			Kind:     kind,
			Name:     fn.Name,
			Content:  b.String(),
			Position: len(chunks),
		})
	}

	for _, typ := range pkg.Types {
		fields := noExportedFields
		if len(typ.Fields) > 0 {
			fields = strings.Join(typ.Fields, "\n")
		}
		var b strings.Builder
		b.WriteString("Package: " + pkg.Name + "\n")
		b.WriteString("Type: " + typ.Name + "\n")
		b.WriteString("Kind: " + typ.Kind + "\n")
		b.WriteString("Fields:\n")
		b.WriteString(fields)
		if len(typ.Methods) > 0 {
			b.WriteString("\nMethods:\n")
			b.WriteString(strings.Join(typ.Methods, "\n"))
		}
		chunks = append(chunks, &Chunk{
			Package:  pkg.Name,
			Kind:     KindType,
			Name:     typ.Name,
			Content:  b.String(),
			Position: len(chunks),
		})
	}

	return chunks
}
