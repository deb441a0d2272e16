package domain

// AgeRange delimita a faixa etária de um público (Min <= Max)
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AudienceTargeting descreve um recorte de público para um conjunto de anúncios.
// Todos os campos de lista são opcionais e vazios por padrão.
type AudienceTargeting struct {
	AgeRange                AgeRange `json:"age_range"`
	Genders                 []int    `json:"genders,omitempty"`
	Languages               []string `json:"languages,omitempty"`
	Locations               []string `json:"locations,omitempty"`
	Interests               []string `json:"interests,omitempty"`
	Behaviors               []string `json:"behaviors,omitempty"`
	Demographics            []string `json:"demographics,omitempty"`
	ExcludedInterests       []string `json:"excluded_interests,omitempty"`
	CustomAudiences         []string `json:"custom_audiences,omitempty"`
	LookalikeAudiences      []string `json:"lookalike_audiences,omitempty"`
	ExcludedCustomAudiences []string `json:"excluded_custom_audiences,omitempty"`
}

// Placement representa uma superfície de veiculação na plataforma
type Placement struct {
	Platform    string   `json:"platform"`
	Position    string   `json:"position"`
	DeviceTypes []string `json:"device_types"`
	Enabled     bool     `json:"enabled"`
}
