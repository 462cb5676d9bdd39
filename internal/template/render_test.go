package template

import (
	"strings"
	"testing"

	"github.com/baucraft/ticket-studio/internal/model"
)

func TestRender_BasicSubstitution(t *testing.T) {
	t.Parallel()

	ticket := model.TicketData{
		TicketID: "T-7:2026-07-13",
		TaskID:   "T-7",
		TaskName: "Trockenbau 2.OG",
		Date:     "2026-07-13",
		Trade:    "Trockenbauer",
	}

	got := Render("{{taskName}} am {{date}} ({{trade}})", ticket)
	if got != "Trockenbau 2.OG am 2026-07-13 (Trockenbauer)" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestRender_NoHTMLEscaping(t *testing.T) {
	t.Parallel()

	ticket := model.TicketData{TaskID: "T-1", TaskName: "Heizung & Sanitär"}
	got := Render("{{taskName}}", ticket)
	if got != "Heizung & Sanitär" {
		t.Fatalf("output was escaped: %q", got)
	}
}

func TestRender_TradeColorDefault(t *testing.T) {
	t.Parallel()

	got := Render(`fill="{{tradeColor}}"`, model.TicketData{TaskID: "T-1"})
	if got != `fill="`+DefaultTradeColor+`"` {
		t.Fatalf("default color missing: %q", got)
	}

	got = Render(`fill="{{tradeColor}}"`, model.TicketData{TaskID: "T-1", TradeColor: "#0b00b0"})
	if got != `fill="#0b00b0"` {
		t.Fatalf("explicit color lost: %q", got)
	}
}

func TestRender_AreaPath(t *testing.T) {
	t.Parallel()

	ticket := model.TicketData{
		TaskID: "T-1",
		Area:   &model.TicketArea{Path: "Haus A / EG"},
	}
	if got := Render("{{area.path}}", ticket); got != "Haus A / EG" {
		t.Fatalf("area path: %q", got)
	}

	// 无区域时占位符落空而不是报错
	if got := Render("[{{area.path}}]", model.TicketData{TaskID: "T-1"}); got != "[]" {
		t.Fatalf("missing area: %q", got)
	}
}

func TestRender_MalformedTemplateReturnsInput(t *testing.T) {
	t.Parallel()

	tmpl := "{{#offen"
	if got := Render(tmpl, model.TicketData{TaskID: "T-1"}); got != tmpl {
		t.Fatalf("malformed template should pass through: %q", got)
	}
}

func TestDefaultTemplate_UsesKnownTokens(t *testing.T) {
	t.Parallel()

	tpl := Default()
	if tpl.WidthMm <= 0 || tpl.HeightMm <= 0 {
		t.Fatalf("template dimensions: %+v", tpl)
	}

	known := map[string]bool{}
	for _, tok := range Tokens() {
		known[tok.Key] = true
	}
	for _, m := range varTagRe.FindAllStringSubmatch(tpl.SVG, -1) {
		if !known[m[1]] {
			t.Fatalf("default template references unknown token %q", m[1])
		}
	}

	rendered := Render(tpl.SVG, model.TicketData{
		TaskID:   "T-7",
		TaskName: "Estrich",
		Date:     "2026-07-13",
	})
	if strings.Contains(rendered, "{{") {
		t.Fatalf("unreplaced tokens in rendered template")
	}
}
