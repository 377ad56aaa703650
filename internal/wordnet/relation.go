package wordnet

import "fmt"

// RelationKind tags which payload of a Relation is meaningful.
type RelationKind int

const (
	Semantic RelationKind = iota
	Interlingual
)

type SemanticRelationType int

const (
	Antonym SemanticRelationType = iota
	Hypernym
	InstanceHypernym
	Hyponym
	InstanceHyponym
	MemberHolonym
	SubstanceHolonym
	PartHolonym
	MemberMeronym
	SubstanceMeronym
	PartMeronym
	Attribute
	DerivationRelated
	DomainTopic
	MemberTopic
	DomainRegion
	MemberRegion
	DomainUsage
	MemberUsage
	Entailment
	Cause
	AlsoSee
	VerbGroup
	SimilarTo
	ParticipleOfVerb
	SemanticNone
)

var semanticTags = []string{
	"ANTONYM", "HYPERNYM", "INSTANCE_HYPERNYM", "HYPONYM", "INSTANCE_HYPONYM",
	"MEMBER_HOLONYM", "SUBSTANCE_HOLONYM", "PART_HOLONYM", "MEMBER_MERONYM",
	"SUBSTANCE_MERONYM", "PART_MERONYM", "ATTRIBUTE", "DERIVATION_RELATED",
	"DOMAIN_TOPIC", "MEMBER_TOPIC", "DOMAIN_REGION", "MEMBER_REGION",
	"DOMAIN_USAGE", "MEMBER_USAGE", "ENTAILMENT", "CAUSE", "ALSO_SEE",
	"VERB_GROUP", "SIMILAR_TO", "PARTICIPLE_OF_VERB", "NONE",
}

// SemanticTag maps a resource tag such as "HYPERNYM" to its type.
// Unknown tags map to SemanticNone.
func SemanticTag(tag string) SemanticRelationType {
	for i, t := range semanticTags {
		if t == tag {
			return SemanticRelationType(i)
		}
	}
	return SemanticNone
}

func (t SemanticRelationType) String() string {
	if t < 0 || int(t) >= len(semanticTags) {
		return "NONE"
	}
	return semanticTags[t]
}

var reverseSemantic = map[SemanticRelationType]SemanticRelationType{
	Hypernym:         Hyponym,
	Hyponym:          Hypernym,
	Antonym:          Antonym,
	InstanceHypernym: InstanceHyponym,
	InstanceHyponym:  InstanceHypernym,
	MemberHolonym:    MemberMeronym,
	MemberMeronym:    MemberHolonym,
	PartMeronym:      PartHolonym,
	PartHolonym:      PartMeronym,
	SubstanceMeronym: SubstanceHolonym,
	SubstanceHolonym: SubstanceMeronym,
	DomainTopic:      MemberTopic,
	MemberTopic:      DomainTopic,
	DomainRegion:     MemberRegion,
	MemberRegion:     DomainRegion,
	DomainUsage:      MemberUsage,
	MemberUsage:      DomainUsage,
}

// Reverse returns the inverse relation type, or SemanticNone when the type
// has no inverse.
func Reverse(t SemanticRelationType) SemanticRelationType {
	if r, ok := reverseSemantic[t]; ok {
		return r
	}
	return SemanticNone
}

type InterlingualDependencyType int

const (
	ILRHypernym InterlingualDependencyType = iota
	ILRNearAntonym
	ILRHoloMember
	ILRHoloPart
	ILRHoloPortion
	ILRUsageDomain
	ILRCategoryDomain
	ILRBeInState
	ILRSubevent
	ILRVerbGroup
	ILRSimilarTo
	ILRAlsoSee
	ILRCauses
	ILRSynonym
	ILRNone
)

var interlingualTags = []string{
	"Hypernym", "Near_antonym", "Holo_member", "Holo_part", "Holo_portion",
	"Usage_domain", "Category_domain", "Be_in_state", "Subevent", "Verb_group",
	"Similar_to", "Also_see", "Causes", "SYNONYM", "None",
}

// InterlingualTag maps an ILR tag such as "SYNONYM" to its type.
// Unknown tags map to ILRNone.
func InterlingualTag(tag string) InterlingualDependencyType {
	for i, t := range interlingualTags {
		if t == tag {
			return InterlingualDependencyType(i)
		}
	}
	return ILRNone
}

func (t InterlingualDependencyType) String() string {
	if t < 0 || int(t) >= len(interlingualTags) {
		return "None"
	}
	return interlingualTags[t]
}

// Relation is an outgoing edge of a synset or literal. Name holds the target
// synset id for semantic relations and the foreign synset id for
// interlingual ones. Only the payload matching Kind is meaningful.
type Relation struct {
	Kind             RelationKind
	Name             string
	SemanticType     SemanticRelationType
	InterlingualType InterlingualDependencyType
	ToIndex          int
}

func NewSemanticRelation(target string, t SemanticRelationType) Relation {
	return Relation{Kind: Semantic, Name: target, SemanticType: t, InterlingualType: ILRNone}
}

func NewInterlingualRelation(target string, t InterlingualDependencyType) Relation {
	return Relation{Kind: Interlingual, Name: target, SemanticType: SemanticNone, InterlingualType: t}
}

// IsHypernym reports whether the relation points to a parent concept.
func (r Relation) IsHypernym() bool {
	switch r.Kind {
	case Semantic:
		switch r.SemanticType {
		case Hypernym, InstanceHypernym:
			return true
		}
	}
	return false
}

func (r Relation) String() string {
	switch r.Kind {
	case Interlingual:
		return fmt.Sprintf("%s->%s", r.InterlingualType, r.Name)
	default:
		return fmt.Sprintf("%s->%s", r.SemanticType, r.Name)
	}
}
