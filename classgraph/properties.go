package classgraph

import (
	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/ontology"
)

// ResolveProperties attaches a PropertyNode to every owning class of every
// Property-tagged topic.
//
// The range resolves once per topic; every domain attachment shares the same
// resolved range set, comment, and deprecated flag through a single shared
// node. An unresolved range or domain reference aborts the run. A property
// with zero resolved range types attaches anyway and emits the uninhabited
// never type downstream. Anything besides comment, domain, range, and
// supersession on a property topic is logged, not fatal.
func (b *Builder) ResolveProperties(topics []*ontology.Topic) error {
	for _, t := range topics {
		subject, ok := t.Subject.(ontology.Named)
		if !ok || !t.HasType("Property") {
			continue
		}

		prop := &PropertyNode{
			ID:         subject,
			Deprecated: len(t.SupersededRefs()) > 0,
		}
		if comment, ok := t.Comment(b.pref); ok {
			prop.Comment = comment
		} else if b.verbose {
			b.logger.Warn("Property has no comment", "property", subject.IRI)
		}

		for _, rangeRef := range t.RangeRefs() {
			class, ok := b.registry.Resolve(rangeRef.IRI)
			if !ok {
				return errors.Unresolved(errors.ErrUnresolvedRange, "properties", subject.IRI, rangeRef.IRI)
			}
			prop.Ranges = append(prop.Ranges, class)
		}
		if len(prop.Ranges) == 0 {
			b.logger.Warn("Property has no resolvable range, emitting never",
				"property", subject.IRI)
		}

		for _, domainRef := range t.DomainRefs() {
			owner, ok := b.registry.Resolve(domainRef.IRI)
			if !ok {
				return errors.Unresolved(errors.ErrUnresolvedDomain, "properties", subject.IRI, domainRef.IRI)
			}
			owner.Properties = append(owner.Properties, prop)
		}

		for _, st := range t.Unclaimed(
			ontology.VocabComment,
			ontology.VocabLabel,
			ontology.VocabDomainIncludes,
			ontology.VocabRangeIncludes,
			ontology.VocabSupersededBy,
		) {
			b.logger.Debug("Unconsumed property value",
				"property", subject.IRI,
				"predicate", ontology.TermString(st.Predicate),
				"object", ontology.TermString(st.Object))
		}
	}
	return nil
}
