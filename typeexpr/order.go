package typeexpr

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Eyas/schema-dts/classgraph"
)

// Ordering provides the deterministic total order every emitted collection
// relies on. Identical inputs must produce byte-identical output, so nothing
// downstream may depend on insertion or hash order.
type Ordering struct {
	col *collate.Collator
}

// NewOrdering creates an ordering collating names in the given locale.
func NewOrdering(tag language.Tag) *Ordering {
	if tag == language.Und {
		tag = language.English
	}
	return &Ordering{col: collate.New(tag)}
}

// compareNames compares locale-aware by human-readable name, tie-broken by
// the full canonical identifier string.
func (o *Ordering) compareNames(aName, aID, bName, bID string) int {
	if c := o.col.CompareString(aName, bName); c != 0 {
		return c
	}
	return strings.Compare(aID, bID)
}

// CompareClasses orders builtins before all regular classes; within each
// group, by name then identifier.
func (o *Ordering) CompareClasses(a, b *classgraph.ClassNode) int {
	if a.IsBuiltin() != b.IsBuiltin() {
		if a.IsBuiltin() {
			return -1
		}
		return 1
	}
	return o.compareNames(a.Name(), a.ID.IRI, b.Name(), b.ID.IRI)
}

// SortClasses sorts the full class set into emission order.
func (o *Ordering) SortClasses(classes []*classgraph.ClassNode) {
	sort.SliceStable(classes, func(i, j int) bool {
		return o.CompareClasses(classes[i], classes[j]) < 0
	})
}

// SortProperties sorts a class's properties by name then identifier.
func (o *Ordering) SortProperties(props []*classgraph.PropertyNode) {
	sort.SliceStable(props, func(i, j int) bool {
		return o.compareNames(props[i].Name(), props[i].ID.IRI, props[j].Name(), props[j].ID.IRI) < 0
	})
}

// SortByName sorts class references (children unions, range unions) by the
// same ordering as properties.
func (o *Ordering) SortByName(classes []*classgraph.ClassNode) {
	sort.SliceStable(classes, func(i, j int) bool {
		return o.compareNames(classes[i].Name(), classes[i].ID.IRI, classes[j].Name(), classes[j].ID.IRI) < 0
	})
}

// SortEnumMembers sorts enumeration members by literal value.
func (o *Ordering) SortEnumMembers(members []*classgraph.EnumMemberNode) {
	sort.SliceStable(members, func(i, j int) bool {
		return strings.Compare(members[i].Value(), members[j].Value()) < 0
	})
}
