package model

// TicketTemplate 打印模板：带 Mustache 占位符的 SVG，尺寸单位为毫米
type TicketTemplate struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	WidthMm   float64 `json:"widthMm"`
	HeightMm  float64 `json:"heightMm"`
	SVG       string  `json:"svg"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}

// TemplateToken 模板可用的占位符
type TemplateToken struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
