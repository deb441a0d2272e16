package domain

import "fmt"

// Chaves das variantes de URL derivadas do produto
const (
	URLSales     = "sales"
	URLProduct   = "product"
	URLCheckout  = "checkout"
	URLOrderBump = "order_bump"
)

// Sufixos de query string usados pelo checkout da Hotmart
const (
	productPageSuffix = "?dp=1"
	checkoutSuffix    = "?ap=838e"
	orderBumpSuffix   = "?ap=25f0"
)

type Testimonial struct {
	Author string `json:"author"`
	Quote  string `json:"quote"`
}

// Product representa o produto de afiliado que será anunciado
type Product struct {
	Name           string              `json:"name"`
	BaseURL        string              `json:"base_url"`
	AffiliateID    string              `json:"affiliate_id"`
	Price          float64             `json:"price"`
	Description    string              `json:"description"`
	TargetAudience map[string][]string `json:"target_audience,omitempty"`
	Images         []string            `json:"images"`
	Videos         []string            `json:"videos,omitempty"`
	Testimonials   []Testimonial       `json:"testimonials,omitempty"`

	// urls é derivado de BaseURL na construção e nunca é alterado depois
	urls map[string]string
}

// NewProduct constrói um produto e deriva as variantes de URL a partir da BaseURL
func NewProduct(p Product) *Product {
	p.urls = map[string]string{
		URLSales:     p.BaseURL,
		URLProduct:   fmt.Sprintf("%s%s", p.BaseURL, productPageSuffix),
		URLCheckout:  fmt.Sprintf("%s%s", p.BaseURL, checkoutSuffix),
		URLOrderBump: fmt.Sprintf("%s%s", p.BaseURL, orderBumpSuffix),
	}

	return &p
}

// URL retorna a variante de URL derivada para a chave informada
func (p *Product) URL(key string) (string, bool) {
	url, ok := p.urls[key]
	return url, ok
}

// SalesURL retorna a URL da página de vendas (a BaseURL sem alteração)
func (p *Product) SalesURL() string {
	return p.urls[URLSales]
}
