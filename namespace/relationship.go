package namespace

import (
	"github.com/j2inn/haystack-core-sub001/hval"
	"github.com/j2inn/haystack-core-sub001/logger"
)

// Resolver looks up the record a ref points at.
type Resolver func(ref hval.Ref) (*hval.Dict, bool)

// RelationshipQuery describes a single relationship check.
type RelationshipQuery struct {
	// Subject is the record whose ref tags are examined.
	Subject Tags
	// RelName is the relationship def name, e.g. "inputs" or "containedBy".
	RelName string
	// RelTerm optionally narrows the check to refs whose declared term fits it.
	RelTerm string
	// TargetRef optionally requires the relationship to point at this ref.
	// A zero Ref means any target.
	TargetRef hval.Ref
	// Resolve enables transitive and reciprocal checks.
	Resolve Resolver
}

// HasRelationship reports whether the query's subject participates in the
// relationship. It never fails: unknown relationships and unresolved refs
// yield false.
func (ns *Namespace) HasRelationship(q RelationshipQuery) bool {
	return ns.hasRelationship(q, true)
}

func (ns *Namespace) hasRelationship(q RelationshipQuery, reciprocal bool) bool {
	if q.Subject == nil || q.RelName == "" {
		return false
	}
	rel, ok := ns.defs[q.RelName]
	if !ok {
		return false
	}

	refs := ns.relationshipRefs(q.Subject, q.RelName, q.RelTerm)
	if len(refs) == 0 {
		return false
	}
	if q.TargetRef.ID == "" {
		return true
	}
	for _, ref := range refs {
		if ref.Equal(q.TargetRef) {
			return true
		}
	}

	if q.Resolve == nil {
		return false
	}
	if rel.Transitive() && ns.walkTransitive(q, refs) {
		return true
	}
	if reciprocal && rel.ReciprocalOf() != "" {
		return ns.reciprocalMatch(q, rel.ReciprocalOf())
	}
	return false
}

// relationshipRefs collects the ref values of subject whose tag def declares
// participation in relName, filtered by term when one is given.
func (ns *Namespace) relationshipRefs(subject Tags, relName, relTerm string) []hval.Ref {
	var refs []hval.Ref
	for _, tag := range subject.Names() {
		v, _ := subject.Get(tag)
		ref, ok := v.(hval.Ref)
		if !ok || ref.ID == "" {
			continue
		}
		term, ok := ns.declaredTerm(tag, relName)
		if !ok {
			continue
		}
		if relTerm != "" && (term == "" || !ns.Fits(term, relTerm)) {
			continue
		}
		refs = append(refs, ref)
	}
	return refs
}

// declaredTerm finds the first def in the inheritance of tag that carries
// relName and returns the term it names. A marker value declares
// participation without a term.
func (ns *Namespace) declaredTerm(tag, relName string) (string, bool) {
	for _, def := range ns.Inheritance(tag) {
		v, ok := def.rec.Get(relName)
		if !ok || hval.IsNull(v) {
			continue
		}
		if term, ok := hval.NameToken(v); ok {
			return term, true
		}
		return "", true
	}
	return "", false
}

// walkTransitive follows the relationship refs from record to record looking
// for the target. The subject's own id and every visited ref are never
// resolved twice, and the walk stops at the namespace depth bound.
func (ns *Namespace) walkTransitive(q RelationshipQuery, start []hval.Ref) bool {
	visited := make(map[string]bool)
	subjectID := recordID(q.Subject)
	if subjectID != "" {
		visited[subjectID] = true
	}

	frontier := start
	depth := 0
	for ; depth < ns.maxRelDepth && len(frontier) > 0; depth++ {
		var next []hval.Ref
		for _, ref := range frontier {
			if visited[ref.ID] {
				continue
			}
			visited[ref.ID] = true

			rec, ok := q.Resolve(ref)
			if !ok || rec == nil {
				continue
			}
			for _, hop := range ns.relationshipRefs(rec, q.RelName, "") {
				if hop.ID == subjectID {
					continue
				}
				if hop.Equal(q.TargetRef) {
					return true
				}
				next = append(next, hop)
			}
		}
		frontier = next
	}

	if len(frontier) > 0 {
		ns.logger.Debugw("Relationship walk hit depth bound",
			logger.FieldRelationship, q.RelName,
			logger.FieldRef, q.TargetRef.ID,
			logger.FieldDepth, depth)
	}
	return false
}

// reciprocalMatch checks whether the target record holds the reciprocal
// relationship pointing back at the subject.
func (ns *Namespace) reciprocalMatch(q RelationshipQuery, reciprocal string) bool {
	subjectID := recordID(q.Subject)
	if subjectID == "" {
		return false
	}
	target, ok := q.Resolve(q.TargetRef)
	if !ok || target == nil {
		return false
	}
	return ns.hasRelationship(RelationshipQuery{
		Subject:   target,
		RelName:   reciprocal,
		RelTerm:   q.RelTerm,
		TargetRef: hval.NewRef(subjectID),
		Resolve:   q.Resolve,
	}, false)
}

func recordID(rec Tags) string {
	v, ok := rec.Get("id")
	if !ok {
		return ""
	}
	if ref, ok := v.(hval.Ref); ok {
		return ref.ID
	}
	return ""
}
