package metadomain

// ImageData contém os identificadores retornados no upload de imagem
type ImageData struct {
	Hash string `json:"hash"`
	URL  string `json:"url,omitempty"`
}

// ImageUploadResponse é a resposta do endpoint /adimages. As imagens vêm
// indexadas pelo nome do arquivo enviado.
type ImageUploadResponse struct {
	Images map[string]ImageData `json:"images"`
}

// VideoUploadResponse é a resposta do endpoint /advideos
type VideoUploadResponse struct {
	ID string `json:"id"`
}
