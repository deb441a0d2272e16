package domain

// AdCreative representa uma variação de criativo de anúncio.
// LinkDestination aceita uma chave do mapa de URLs do produto ("sales",
// "product", "checkout", "order_bump") ou uma URL literal.
type AdCreative struct {
	PrimaryText     string `json:"primary_text"`
	Headline        string `json:"headline"`
	Description     string `json:"description"`
	CallToAction    string `json:"call_to_action"`
	ImageHash       string `json:"image_hash,omitempty"`
	VideoID         string `json:"video_id,omitempty"`
	LinkDestination string `json:"link_destination,omitempty"`
	DisplayLink     string `json:"display_link,omitempty"`
	ThumbnailURL    string `json:"thumbnail_url,omitempty"`
}

// ResolveLink resolve o destino do criativo contra o mapa de URLs do produto.
// Chave desconhecida é tratada como URL literal; destino vazio cai na página de vendas.
func (c AdCreative) ResolveLink(product *Product) string {
	if c.LinkDestination == "" {
		return product.SalesURL()
	}

	if url, ok := product.URL(c.LinkDestination); ok {
		return url
	}

	return c.LinkDestination
}
