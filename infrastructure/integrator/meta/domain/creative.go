package metadomain

// CallToAction define o botão de ação do criativo
type CallToAction struct {
	Type string `json:"type"`
}

// LinkData descreve um criativo de imagem com link
type LinkData struct {
	Link         string        `json:"link"`
	Message      string        `json:"message,omitempty"`
	Headline     string        `json:"headline,omitempty"`
	Description  string        `json:"description,omitempty"`
	ImageHash    string        `json:"image_hash"`
	CallToAction *CallToAction `json:"call_to_action,omitempty"`
}

// VideoData descreve um criativo de vídeo
type VideoData struct {
	VideoID         string        `json:"video_id"`
	Title           string        `json:"title,omitempty"`
	Message         string        `json:"message,omitempty"`
	Description     string        `json:"description,omitempty"`
	LinkDescription string        `json:"link_description,omitempty"`
	ImageURL        string        `json:"image_url,omitempty"`
	CallToAction    *CallToAction `json:"call_to_action,omitempty"`
}

// ObjectStorySpec vincula o criativo à página e ao conteúdo da mídia
type ObjectStorySpec struct {
	PageID    string     `json:"page_id"`
	LinkData  *LinkData  `json:"link_data,omitempty"`
	VideoData *VideoData `json:"video_data,omitempty"`
}

// CreativeCreateRequest carrega os campos da criação de criativo
type CreativeCreateRequest struct {
	Name            string          `json:"name"`
	ObjectStorySpec ObjectStorySpec `json:"object_story_spec"`
}
