package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanTierForUnitAmount_Breakpoints(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   PlanTier
	}{
		{"well below basico ceiling", 500, PlanTierBasico},
		{"basico ceiling inclusive", 999, PlanTierBasico},
		{"just above basico ceiling", 1000, PlanTierProfissional},
		{"profissional ceiling inclusive", 2999, PlanTierProfissional},
		{"just above profissional ceiling", 3000, PlanTierEnterprise},
		{"large amount", 100000, PlanTierEnterprise},
		{"zero amount", 0, PlanTierBasico},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, PlanTierForUnitAmount(tc.amount))
		})
	}
}

func TestPlanTier_IsValid(t *testing.T) {
	assert.True(t, PlanTierFree.IsValid())
	assert.True(t, PlanTierBasico.IsValid())
	assert.True(t, PlanTierProfissional.IsValid())
	assert.True(t, PlanTierEnterprise.IsValid())
	assert.False(t, PlanTier("premium").IsValid())
	assert.False(t, PlanTier("").IsValid())
}
