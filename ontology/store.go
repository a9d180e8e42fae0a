package ontology

import (
	"io"
	"log/slog"
)

// Store groups raw graph members into merged Topics keyed by subject.
//
// The store is the first pipeline stage: it flattens nested sub-graphs,
// drops facts that carry no class/property semantics (source provenance,
// close-match links, software-version stamps), and merges every declaration
// of a subject into one Topic. Grouping preserves first-seen subject order
// so downstream determinism does not depend on map iteration.
type Store struct {
	logger *slog.Logger
	topics map[string]*Topic
	order  []string
}

// NewStore creates an empty fact store. A nil logger suppresses merge
// diagnostics.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		logger: logger,
		topics: make(map[string]*Topic),
	}
}

// Add flattens the members and merges their facts into the store.
func (s *Store) Add(members []GraphMember) {
	for _, f := range Flatten(members) {
		s.AddFact(f)
	}
}

// AddFact merges a single fact into its subject's topic. Provenance-only
// facts are dropped here, before grouping.
func (s *Store) AddFact(f Fact) {
	if isProvenance(f.Predicate) {
		return
	}

	key := f.Subject.Key()
	topic, ok := s.topics[key]
	if !ok {
		topic = newTopic(f.Subject)
		s.topics[key] = topic
		s.order = append(s.order, key)
	}
	topic.add(f, s.logger)
}

// Topics returns the merged topics in first-seen subject order. Subjects
// left with no type tags and no statements after provenance filtering are
// omitted.
func (s *Store) Topics() []*Topic {
	out := make([]*Topic, 0, len(s.order))
	for _, key := range s.order {
		t := s.topics[key]
		if len(t.Types) == 0 && len(t.Statements) == 0 {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Topic looks up the merged topic for a subject key.
func (s *Store) Topic(key string) (*Topic, bool) {
	t, ok := s.topics[key]
	return t, ok
}

// Len returns the number of distinct subjects seen.
func (s *Store) Len() int { return len(s.topics) }

// isProvenance reports whether a predicate only carries provenance
// information (dropped per the merge contract).
func isProvenance(p Term) bool {
	v, ok := p.(Vocab)
	if !ok {
		return false
	}
	switch v {
	case VocabSource, VocabCloseMatch, VocabSoftwareVersion:
		return true
	default:
		return false
	}
}
