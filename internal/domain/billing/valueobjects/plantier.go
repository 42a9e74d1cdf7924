package valueobjects

// PlanTier is the subscription level derived from the paid amount.
type PlanTier string

const (
	PlanTierFree         PlanTier = "free"
	PlanTierBasico       PlanTier = "basico"
	PlanTierProfissional PlanTier = "profissional"
	PlanTierEnterprise   PlanTier = "enterprise"
)

func (t PlanTier) String() string {
	return string(t)
}

func (t PlanTier) IsValid() bool {
	switch t {
	case PlanTierFree, PlanTierBasico, PlanTierProfissional, PlanTierEnterprise:
		return true
	}
	return false
}

// Unit amount breakpoints in minor currency units (centavos).
// Boundaries are inclusive on the lower tier.
const (
	basicoMaxUnitAmount       = 999
	profissionalMaxUnitAmount = 2999
)

// PlanTierForUnitAmount derives the paid tier from the subscription's unit price.
func PlanTierForUnitAmount(amount int64) PlanTier {
	switch {
	case amount <= basicoMaxUnitAmount:
		return PlanTierBasico
	case amount <= profissionalMaxUnitAmount:
		return PlanTierProfissional
	default:
		return PlanTierEnterprise
	}
}
