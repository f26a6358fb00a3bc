package ads

import (
	"bytes"
	"encoding/json"
	"html/template"

	"github.com/rs/zerolog/log"

	"github.com/vidnest/vidnest/internal/db/models"
)

var templates = template.Must(template.New("image").Parse( //nolint:gochecknoglobals
	`{{if .ClickURL}}<a href="{{.ClickURL}}" target="_blank" rel="noopener sponsored">{{end}}` +
		`<img class="ad-image" src="{{.Src}}" alt="{{.Name}}" loading="lazy">` +
		`{{if .ClickURL}}</a>{{end}}`,
))

func init() {
	template.Must(templates.New("link").Parse(
		`<a class="ad-link" href="{{.Href}}" target="_blank" rel="noopener sponsored">{{.Name}}</a>`))
	template.Must(templates.New("fallback").Parse(`<div class="ad-text">{{.Text}}</div>`))
}

type targeting struct {
	ClickURL string `json:"click_url"`
}

// Render returns the markup for unit. Units with an empty payload render nothing.
func Render(unit models.AdUnit) template.HTML {
	if unit.AdCode == "" {
		return ""
	}

	kind, ok := ParseRenderKind(unit.RenderKind)
	if !ok {
		kind = Classify(unit.AdFormat)
	}

	switch kind {
	case KindSponsoredMarkup:
		return template.HTML(unit.AdCode) //nolint:gosec // markup is entered by admins
	case KindImage:
		return execute("image", map[string]any{
			"ClickURL": clickURL(unit),
			"Src":      unit.AdCode,
			"Name":     unit.Name,
		})
	case KindLink:
		return execute("link", map[string]any{"Href": unit.AdCode, "Name": unit.Name})
	default:
		return execute("fallback", map[string]any{"Text": unit.AdCode})
	}
}

// RenderAll concatenates the markup of every unit.
func RenderAll(units []models.AdUnit) template.HTML {
	var buf bytes.Buffer
	for _, u := range units {
		buf.WriteString(string(Render(u)))
	}

	return template.HTML(buf.String()) //nolint:gosec // built from escaped fragments
}

func execute(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("error rendering ad unit")
		return ""
	}

	return template.HTML(buf.String()) //nolint:gosec // produced by html/template
}

func clickURL(unit models.AdUnit) string {
	if len(unit.Targeting) == 0 {
		return ""
	}

	var t targeting
	if err := json.Unmarshal(unit.Targeting, &t); err != nil {
		log.Debug().Err(err).Str("ad_unit", unit.ID.String()).Msg("ignoring undecodable targeting")
		return ""
	}

	return t.ClickURL
}
