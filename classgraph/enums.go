package classgraph

import (
	"github.com/Eyas/schema-dts/errors"
	"github.com/Eyas/schema-dts/ontology"
)

// ResolveEnums attaches an EnumMemberNode for every topic whose type-tag set
// contains at least one tag outside the Class/Property/DataType meta-types.
//
// Tags are scanned in declaration order; the first non-meta tag is the sole
// owner candidate. If it resolves in the registry the member attaches there
// and scanning stops — a topic with multiple qualifying owner tags attaches
// only to the first, and later candidates are silently ignored. An owner
// candidate that fails to resolve aborts the run.
func (b *Builder) ResolveEnums(topics []*ontology.Topic) error {
	for _, t := range topics {
		subject, ok := t.Subject.(ontology.Named)
		if !ok {
			continue
		}

		var owner *ClassNode
		for _, tag := range t.Types {
			if ontology.IsMetaType(tag) {
				continue
			}
			class, ok := b.registry.Resolve(tag.IRI)
			if !ok {
				return errors.Unresolved(errors.ErrUnresolvedEnumOwner, "enums", subject.IRI, tag.IRI)
			}
			owner = class
			break
		}
		if owner == nil {
			continue
		}

		member := &EnumMemberNode{ID: subject}
		if comment, ok := t.Comment(b.pref); ok {
			member.Comment = comment
		} else if b.verbose {
			b.logger.Warn("Enumeration member has no comment", "member", subject.IRI)
		}
		owner.EnumMembers = append(owner.EnumMembers, member)
	}
	return nil
}
