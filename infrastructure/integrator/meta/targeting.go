package meta

import (
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

// BuildTargetingSpec converte um recorte de público no formato aninhado
// aceito pela plataforma. Função pura: não falha e listas vazias apenas
// omitem a chave correspondente.
// TODO projetar languages, demographics, excluded_interests e
// lookalike_audiences quando esses campos passarem a ser usados nos lançamentos
func BuildTargetingSpec(targeting domain.AudienceTargeting) *metadomain.TargetingSpec {
	spec := &metadomain.TargetingSpec{
		AgeMin:  targeting.AgeRange.Min,
		AgeMax:  targeting.AgeRange.Max,
		Genders: targeting.Genders,
		GeoLocations: metadomain.GeoLocations{
			Countries: targeting.Locations,
		},
	}

	if len(targeting.Interests) > 0 {
		spec.Interests = wrapIDs(targeting.Interests)
	}

	if len(targeting.Behaviors) > 0 {
		spec.Behaviors = wrapIDs(targeting.Behaviors)
	}

	if len(targeting.CustomAudiences) > 0 {
		spec.CustomAudiences = wrapIDs(targeting.CustomAudiences)
	}

	if len(targeting.ExcludedCustomAudiences) > 0 {
		spec.ExcludedCustomAudiences = wrapIDs(targeting.ExcludedCustomAudiences)
	}

	return spec
}

// wrapIDs embrulha cada identificador no formato {"id": ...} preservando a ordem
func wrapIDs(values []string) []metadomain.IDSpec {
	specs := make([]metadomain.IDSpec, 0, len(values))
	for _, value := range values {
		specs = append(specs, metadomain.IDSpec{ID: value})
	}
	return specs
}
