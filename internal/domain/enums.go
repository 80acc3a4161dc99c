package domain

// ArgumentSide is the position an argument takes on its topic.
type ArgumentSide string

const (
	SidePro ArgumentSide = "pro"
	SideCon ArgumentSide = "con"
)

func (s ArgumentSide) String() string { return string(s) }

func (s ArgumentSide) IsValid() bool {
	switch s {
	case SidePro, SideCon:
		return true
	}
	return false
}

// VoteTarget identifies the kind of entity a vote applies to.
type VoteTarget string

const (
	VoteTargetTopic    VoteTarget = "topic"
	VoteTargetArgument VoteTarget = "argument"
)

func (t VoteTarget) String() string { return string(t) }

func (t VoteTarget) IsValid() bool {
	switch t {
	case VoteTargetTopic, VoteTargetArgument:
		return true
	}
	return false
}

// VoteValue is the direction of a vote: +1 (up) or -1 (down).
type VoteValue int

const (
	VoteUp   VoteValue = 1
	VoteDown VoteValue = -1
)

func (v VoteValue) IsValid() bool { return v == VoteUp || v == VoteDown }

// BundleOrdering selects how arguments are ranked inside a topic bundle.
type BundleOrdering string

const (
	// OrderingRelevant ranks by score descending, ties broken by newest first.
	OrderingRelevant BundleOrdering = "relevant"
	// OrderingNewest ranks by creation time descending, ignoring score.
	OrderingNewest BundleOrdering = "newest"
)

func (o BundleOrdering) String() string { return string(o) }

func (o BundleOrdering) IsValid() bool {
	switch o {
	case OrderingRelevant, OrderingNewest:
		return true
	}
	return false
}
