package schema

import (
	"fmt"
	"strings"
)

// IndexKind is the kind of a non foreign key index.
type IndexKind int

const (
	IndexPlain IndexKind = iota
	IndexUnique
	IndexFullText
	IndexPrimary
)

func (k IndexKind) String() string {
	switch k {
	case IndexUnique:
		return "unique"
	case IndexFullText:
		return "fulltext"
	case IndexPrimary:
		return "primary"
	default:
		return ""
	}
}

// ParseIndexKind maps a kind name back to an IndexKind. The empty string and
// "plain" are the plain kind.
func ParseIndexKind(s string) (IndexKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "index":
		return IndexPlain, nil
	case "unique":
		return IndexUnique, nil
	case "fulltext", "full_text":
		return IndexFullText, nil
	case "primary":
		return IndexPrimary, nil
	default:
		return IndexPlain, fmt.Errorf("unknown index kind %q", s)
	}
}

// KindFromFlags resolves independently set flags into a single kind.
// Precedence is primary > unique > fullText > plain.
func KindFromFlags(primary, unique, fullText bool) IndexKind {
	switch {
	case primary:
		return IndexPrimary
	case unique:
		return IndexUnique
	case fullText:
		return IndexFullText
	default:
		return IndexPlain
	}
}

// IndexDef describes one column of an index. Entries sharing a KeyName and
// Kind form a composite index.
type IndexDef struct {
	KeyName string
	Column  string
	Kind    IndexKind
}

// Index configures an IndexDef. The kind is a single value, so the last of
// Primary, Unique or FullText called wins.
type Index struct {
	def IndexDef
}

func newIndex(column, keyName string) *Index {
	if keyName == "" {
		keyName = "ix_" + column
	}
	return &Index{def: IndexDef{KeyName: keyName, Column: column}}
}

// Def returns a copy of the index definition.
func (i *Index) Def() IndexDef {
	return i.def
}

func (i *Index) Primary() *Index {
	i.def.Kind = IndexPrimary
	return i
}

func (i *Index) Unique() *Index {
	i.def.Kind = IndexUnique
	return i
}

func (i *Index) FullText() *Index {
	i.def.Kind = IndexFullText
	return i
}

// Kind sets the kind directly.
func (i *Index) Kind(k IndexKind) *Index {
	i.def.Kind = k
	return i
}
