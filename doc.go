// Package gonml reads, validates, and writes Fortran-style namelist (NML)
// configuration files.
//
// The public surface lives in this root package: the untyped ordered
// mappings (Dict, DocDict), the typed schema model (Param, Block,
// Document), the schema Registry, and the Read/Write entry points.
// Implementation detail sits under internal/, element codecs under codec/,
// cross-parameter rule constructors under rules/, message dictionaries
// under i18n/, and concrete schemas under their own packages (glm/).
//
// Typical flow:
//
//	dict, err := gonml.ReadAs(text, "glm")   // text -> ordered mapping
//	doc := glm.NewDocument()                 // typed schema
//	err = doc.FromDict(dict)                 // bind
//	err = doc.Validate()                     // commit point
//	out, err := gonml.WriteDoc(doc)          // mapping -> text
//
// Assignments never validate; documents tolerate transient inconsistency
// while being built and only Validate enforces the rules.
package gonml
