package domain

import "time"

// Creative guarda o conteúdo de um criativo. Não é diário: a chave é só o creative_id.
// MetaNative e FormatType vêm da classificação e não são tocados pela sincronização.
type Creative struct {
	CreativeID   string    `json:"creative_id"`
	AccountID    string    `json:"account_id"`
	Name         *string   `json:"name"`
	Title        *string   `json:"title"`
	Body         *string   `json:"body"`
	ImageURL     *string   `json:"image_url"`
	VideoID      *string   `json:"video_id"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CallToAction *string   `json:"call_to_action"`
	LinkURL      *string   `json:"link_url"`
	MetaNative   *bool     `json:"meta_native"`
	FormatType   *string   `json:"format_type"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CreativeDetail struct {
	Name         *string
	Title        *string
	Body         *string
	ImageURL     *string
	VideoID      *string
	ThumbnailURL *string
	CallToAction *string
	LinkURL      *string
}

// CreativeClassification é a marcação de formato devolvida pelo classificador de IA.
// Campos nil significam que o classificador não soube dizer.
type CreativeClassification struct {
	FormatType  *string `json:"format_type"`
	MetaNative  *bool   `json:"meta_native"`
	Description string  `json:"description,omitempty"`
}

// Empty indica que não há nada a gravar
func (c *CreativeClassification) Empty() bool {
	return c == nil || (c.FormatType == nil && c.MetaNative == nil)
}
