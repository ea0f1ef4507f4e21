package question

// Domain tags the cognitive domain a question probes. The classifier uses
// it to gate domain-specific error rules.
type Domain string

const (
	// DomainNumberSense covers exact numeric comparison and digit tasks.
	DomainNumberSense Domain = "number-sense"

	// DomainApproximateNumber covers estimation tasks (dot patterns).
	DomainApproximateNumber Domain = "approximate-number"

	// DomainSequentialLogic covers ordering and pattern-continuation tasks.
	DomainSequentialLogic Domain = "sequential-logic"

	// DomainPhonological covers word reading and sound manipulation tasks.
	DomainPhonological Domain = "phonological"

	// DomainWorkingMemory covers span recall tasks.
	DomainWorkingMemory Domain = "working-memory"

	// DomainVisualAttention covers letter/symbol discrimination tasks.
	DomainVisualAttention Domain = "visual-attention"
)

// IsNumeric reports whether the domain is a numeric-reasoning domain,
// which enables the magnitude error rule.
func (d Domain) IsNumeric() bool {
	return d == DomainNumberSense || d == DomainApproximateNumber
}

// IsSequential reports whether the domain enables the sequence error rule.
func (d Domain) IsSequential() bool {
	return d == DomainSequentialLogic
}

// KnownDomains lists the domains the bank schema accepts.
var KnownDomains = []Domain{
	DomainNumberSense,
	DomainApproximateNumber,
	DomainSequentialLogic,
	DomainPhonological,
	DomainWorkingMemory,
	DomainVisualAttention,
}
