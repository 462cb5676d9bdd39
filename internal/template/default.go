package template

import "github.com/baucraft/ticket-studio/internal/model"

// 默认模板尺寸（毫米），对应原始卡片版式
const (
	defaultWidthMm  = 70.19
	defaultHeightMm = 123.11
)

// defaultSVG 内置模板：viewBox 以毫米为单位 1:1 映射
const defaultSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 70.19 123.11" width="70.19mm" height="123.11mm">
  <rect x="0" y="0" width="70.19" height="123.11" fill="none" stroke="#111111" stroke-width="0.4"/>
  <rect x="4.49" y="4.32" width="61.04" height="114.47" fill="none" stroke="#111111" stroke-width="0.4"/>
  <rect x="4.74" y="4.49" width="7.11" height="36.83" fill="{{tradeColor}}" stroke="none"/>
  <line x1="4.49" y1="41.66" x2="65.53" y2="41.66" stroke="#111111" stroke-width="0.5"/>
  <rect x="4.83" y="41.99" width="60.36" height="5.51" fill="#d8d8d8" stroke="none"/>
  <line x1="4.49" y1="47.67" x2="65.53" y2="47.67" stroke="#111111" stroke-width="0.4"/>
  <line x1="4.49" y1="73.15" x2="65.53" y2="73.15" stroke="#111111" stroke-width="0.5"/>
  <text x="5.5" y="45.5" font-family="Helvetica, Arial, sans-serif" font-size="3.6" font-weight="600" fill="#111111">Anmerkungen:</text>
  <text x="13.2" y="13" font-family="Helvetica, Arial, sans-serif" font-size="5.2" font-weight="600" fill="#111111">{{taskName}}</text>
  <text x="13.2" y="25.5" font-family="Helvetica, Arial, sans-serif" font-size="3.6" font-weight="500" fill="#111111">ID: {{taskId}}</text>
  <text x="13.2" y="33" font-family="Helvetica, Arial, sans-serif" font-size="3.4" font-weight="500" fill="#111111">{{date}}</text>
  <text x="13.2" y="52.5" font-family="Helvetica, Arial, sans-serif" font-size="3.2" fill="#111111">{{description}}</text>
  <text x="13.2" y="78.5" font-family="Helvetica, Arial, sans-serif" font-size="3.4" font-weight="600" fill="#111111">{{trade}}</text>
  <text x="13.2" y="84" font-family="Helvetica, Arial, sans-serif" font-size="3.2" fill="#111111">{{company}}</text>
  <text x="13.2" y="89.5" font-family="Helvetica, Arial, sans-serif" font-size="3.2" fill="#111111">{{area.path}}</text>
</svg>`

// Default 内置默认模板
func Default() model.TicketTemplate {
	return model.TicketTemplate{
		ID:       "default",
		Name:     "Standardkarte",
		WidthMm:  defaultWidthMm,
		HeightMm: defaultHeightMm,
		SVG:      defaultSVG,
	}
}
