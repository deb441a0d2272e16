package metadomain

// IDSpec embrulha um identificador no formato {"id": ...} exigido pela API
type IDSpec struct {
	ID string `json:"id"`
}

// GeoLocations embrulha a lista de localizações como códigos de país
type GeoLocations struct {
	Countries []string `json:"countries"`
}

// TargetingSpec é a representação aninhada de segmentação enviada na criação
// de conjuntos de anúncios. Campos condicionais são omitidos quando vazios.
type TargetingSpec struct {
	AgeMin                  int          `json:"age_min"`
	AgeMax                  int          `json:"age_max"`
	Genders                 []int        `json:"genders"`
	GeoLocations            GeoLocations `json:"geo_locations"`
	Interests               []IDSpec     `json:"interests,omitempty"`
	Behaviors               []IDSpec     `json:"behaviors,omitempty"`
	CustomAudiences         []IDSpec     `json:"custom_audiences,omitempty"`
	ExcludedCustomAudiences []IDSpec     `json:"excluded_custom_audiences,omitempty"`
}
