package meta

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

func TestBuildTargetingSpec(t *testing.T) {
	tests := []struct {
		name      string
		targeting domain.AudienceTargeting
		validate  func(t *testing.T, spec *metadomain.TargetingSpec)
	}{
		{
			name: "campos obrigatórios sempre presentes",
			targeting: domain.AudienceTargeting{
				AgeRange:  domain.AgeRange{Min: 25, Max: 55},
				Genders:   []int{1, 2},
				Locations: []string{"BR", "PT"},
			},
			validate: func(t *testing.T, spec *metadomain.TargetingSpec) {
				assert.Equal(t, 25, spec.AgeMin)
				assert.Equal(t, 55, spec.AgeMax)
				assert.Equal(t, []int{1, 2}, spec.Genders)
				assert.Equal(t, []string{"BR", "PT"}, spec.GeoLocations.Countries)
				assert.Nil(t, spec.Interests)
				assert.Nil(t, spec.Behaviors)
				assert.Nil(t, spec.CustomAudiences)
				assert.Nil(t, spec.ExcludedCustomAudiences)
			},
		},
		{
			name: "listas opcionais são embrulhadas em objetos {id} preservando a ordem",
			targeting: domain.AudienceTargeting{
				AgeRange:                domain.AgeRange{Min: 18, Max: 65},
				Interests:               []string{"6003139266461", "6003020834693"},
				Behaviors:               []string{"6002714895372"},
				CustomAudiences:         []string{"23851234567890123"},
				ExcludedCustomAudiences: []string{"23859876543210987"},
			},
			validate: func(t *testing.T, spec *metadomain.TargetingSpec) {
				assert.Equal(t, []metadomain.IDSpec{
					{ID: "6003139266461"},
					{ID: "6003020834693"},
				}, spec.Interests)
				assert.Equal(t, []metadomain.IDSpec{{ID: "6002714895372"}}, spec.Behaviors)
				assert.Equal(t, []metadomain.IDSpec{{ID: "23851234567890123"}}, spec.CustomAudiences)
				assert.Equal(t, []metadomain.IDSpec{{ID: "23859876543210987"}}, spec.ExcludedCustomAudiences)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, BuildTargetingSpec(tt.targeting))
		})
	}
}

// A plataforma rejeita chaves opcionais com valor null; listas vazias
// precisam sumir do JSON serializado, não virar "[]" nem "null".
func TestBuildTargetingSpec_SerializacaoOmiteListasVazias(t *testing.T) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	spec := BuildTargetingSpec(domain.AudienceTargeting{
		AgeRange:  domain.AgeRange{Min: 18, Max: 65},
		Locations: []string{"BR"},
	})

	encoded, err := json.Marshal(spec)
	assert.NoError(t, err)

	assert.Contains(t, string(encoded), `"age_min":18`)
	assert.Contains(t, string(encoded), `"age_max":65`)
	assert.Contains(t, string(encoded), `"geo_locations"`)
	assert.NotContains(t, string(encoded), "interests")
	assert.NotContains(t, string(encoded), "behaviors")
	assert.NotContains(t, string(encoded), "custom_audiences")
}
