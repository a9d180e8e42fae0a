package ontology

import (
	"log/slog"

	"golang.org/x/text/language"
)

// Statement is one predicate/object pair of a Topic. The subject is implied
// by the owning Topic.
type Statement struct {
	Predicate Term
	Object    Term
}

// Topic is every fact sharing one subject, merged into a single record.
//
// Multiple raw declarations of the same subject (schema.org splits subjects
// across ontology layers) merge into one Topic: multi-valued fields merge as
// set union keyed by identifier, singular fields resolve by last write wins
// with an advisory diagnostic when both sides supplied a value.
type Topic struct {
	// Subject identifies the topic; a Named or Blank term.
	Subject Term

	// Types is the resolved set of type tags, deduplicated by IRI,
	// preserving first-seen order.
	Types []Named

	// Statements holds the non-type facts of the subject in document
	// order, deduplicated by (predicate, object) identity.
	Statements []Statement

	seen map[string]bool
}

func newTopic(subject Term) *Topic {
	return &Topic{Subject: subject, seen: make(map[string]bool)}
}

// add merges one fact into the topic, logging an advisory diagnostic when a
// genuine duplicate singular value (comment or label) is replaced.
func (t *Topic) add(f Fact, logger *slog.Logger) {
	if v, ok := f.Predicate.(Vocab); ok && v == VocabType {
		if named, ok := f.Object.(Named); ok {
			key := "type\x00" + named.Key()
			if !t.seen[key] {
				t.seen[key] = true
				t.Types = append(t.Types, named)
			}
		}
		return
	}

	if t.replaceSingular(f, logger) {
		return
	}

	key := f.Predicate.Key() + "\x00" + f.Object.Key()
	if v, ok := f.Object.(Literal); ok {
		// Language variants of the same value are distinct entries.
		key += "\x00" + v.Language
	}
	if t.seen[key] {
		return
	}
	t.seen[key] = true
	t.Statements = append(t.Statements, Statement{Predicate: f.Predicate, Object: f.Object})
}

// replaceSingular handles comment and label facts, which are singular per
// language tag: a second value in the same language wins and is reported.
func (t *Topic) replaceSingular(f Fact, logger *slog.Logger) bool {
	v, ok := f.Predicate.(Vocab)
	if !ok || (v != VocabComment && v != VocabLabel) {
		return false
	}
	lit, ok := f.Object.(Literal)
	if !ok {
		return false
	}

	for i, st := range t.Statements {
		p, ok := st.Predicate.(Vocab)
		if !ok || p != v {
			continue
		}
		existing, ok := st.Object.(Literal)
		if !ok || existing.Language != lit.Language {
			continue
		}
		if existing.Value != lit.Value && logger != nil {
			logger.Warn("Duplicate singular value merged, keeping most recent",
				"subject", TermString(t.Subject),
				"predicate", string(v),
				"discarded", existing.Value,
				"kept", lit.Value)
		}
		t.Statements[i].Object = lit
		return true
	}

	t.Statements = append(t.Statements, Statement{Predicate: f.Predicate, Object: f.Object})
	return true
}

// refs collects Named objects of statements carrying the given predicate.
func (t *Topic) refs(v Vocab) []Named {
	var out []Named
	for _, st := range t.Statements {
		p, ok := st.Predicate.(Vocab)
		if !ok || p != v {
			continue
		}
		if named, ok := st.Object.(Named); ok {
			out = append(out, named)
		}
	}
	return out
}

// ParentRefs returns the subclass-of references in document order.
func (t *Topic) ParentRefs() []Named { return t.refs(VocabSubClassOf) }

// SupersededRefs returns the superseded-by references in document order.
func (t *Topic) SupersededRefs() []Named { return t.refs(VocabSupersededBy) }

// DomainRefs returns the domain-includes references in document order.
func (t *Topic) DomainRefs() []Named { return t.refs(VocabDomainIncludes) }

// RangeRefs returns the range-includes references in document order.
func (t *Topic) RangeRefs() []Named { return t.refs(VocabRangeIncludes) }

// Comment selects the comment variant best matching the preferred language.
// Untagged comments act as the neutral fallback; with no match at all, the
// first comment wins. Returns false when the topic carries no comment.
func (t *Topic) Comment(pref language.Tag) (string, bool) {
	var tagged []Literal
	var neutral string
	var haveNeutral bool
	var first string
	var haveFirst bool

	for _, st := range t.Statements {
		p, ok := st.Predicate.(Vocab)
		if !ok || p != VocabComment {
			continue
		}
		lit, ok := st.Object.(Literal)
		if !ok {
			continue
		}
		if !haveFirst {
			first, haveFirst = lit.Value, true
		}
		if lit.Language == "" {
			neutral, haveNeutral = lit.Value, true
			continue
		}
		tagged = append(tagged, lit)
	}

	if len(tagged) > 0 && pref != language.Und {
		tags := make([]language.Tag, 0, len(tagged))
		for _, lit := range tagged {
			tags = append(tags, language.Make(lit.Language))
		}
		matcher := language.NewMatcher(tags)
		if _, i, conf := matcher.Match(pref); conf > language.No {
			return tagged[i].Value, true
		}
	}
	if haveNeutral {
		return neutral, true
	}
	return first, haveFirst
}

// HasType reports whether the topic carries a type tag with the given local
// name (e.g. "Class", "Property").
func (t *Topic) HasType(name string) bool {
	for _, tag := range t.Types {
		if tag.Name == name {
			return true
		}
	}
	return false
}

// Unclaimed returns the statements whose predicate is outside the given
// vocabulary set. Later resolver stages log these as data-quality
// diagnostics rather than failing.
func (t *Topic) Unclaimed(claimed ...Vocab) []Statement {
	set := make(map[Vocab]bool, len(claimed))
	for _, v := range claimed {
		set[v] = true
	}
	var out []Statement
	for _, st := range t.Statements {
		if p, ok := st.Predicate.(Vocab); ok && set[p] {
			continue
		}
		out = append(out, st)
	}
	return out
}
