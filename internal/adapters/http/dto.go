package http

import (
	"time"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// Wire representations keep durations as whole seconds, matching how
// operators think about host redraw waits.

type fieldPayload struct {
	Name        string   `json:"name"`
	MaxLength   int      `json:"max_length"`
	Required    bool     `json:"required"`
	Kind        string   `json:"kind"`
	ValidValues []string `json:"valid_values,omitempty"`
	TabsFilled  int      `json:"tabs_filled"`
	TabsEmpty   int      `json:"tabs_empty"`
	Description string   `json:"description,omitempty"`
}

type stepPayload struct {
	Order          int    `json:"order"`
	ScreenContains string `json:"screen_contains,omitempty"`
	Action         string `json:"action"`
	Value          string `json:"value,omitempty"`
	WaitSeconds    int    `json:"wait_seconds"`
	Description    string `json:"description,omitempty"`
}

type screenPayload struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Option      string         `json:"option,omitempty"`
	Fields      []fieldPayload `json:"fields"`
	Steps       []stepPayload  `json:"steps"`
}

type screenListResponse struct {
	Screens []string `json:"screens"`
	Count   int      `json:"count"`
}

// processRequest submits inputs as an ordered array of pairs. A JSON object
// would lose insertion order, and order drives form fill and placeholder
// resolution.
type processRequest struct {
	Terminal string        `json:"terminal,omitempty"`
	Inputs   []domain.Pair `json:"inputs"`
}

type processResponse struct {
	RunID    string   `json:"run_id"`
	Success  bool     `json:"success"`
	Messages []string `json:"messages"`
}

type validateRequest struct {
	Inputs []domain.Pair `json:"inputs"`
}

type validateResponse struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func payloadToDomain(p screenPayload) *domain.ScreenDefinition {
	def := &domain.ScreenDefinition{
		Name:        p.Name,
		Description: p.Description,
		Option:      p.Option,
	}
	for _, f := range p.Fields {
		def.Fields = append(def.Fields, domain.FieldConfig{
			Name:        f.Name,
			MaxLength:   f.MaxLength,
			Required:    f.Required,
			Kind:        domain.FieldKind(f.Kind),
			ValidValues: f.ValidValues,
			TabsFilled:  f.TabsFilled,
			TabsEmpty:   f.TabsEmpty,
			Description: f.Description,
		})
	}
	for _, s := range p.Steps {
		def.Steps = append(def.Steps, domain.NavigationStep{
			Order:          s.Order,
			ScreenContains: s.ScreenContains,
			Action:         domain.ActionKind(s.Action),
			Value:          s.Value,
			Wait:           time.Duration(s.WaitSeconds) * time.Second,
			Description:    s.Description,
		})
	}
	return def
}

func domainToPayload(def *domain.ScreenDefinition) screenPayload {
	p := screenPayload{
		Name:        def.Name,
		Description: def.Description,
		Option:      def.Option,
		Fields:      []fieldPayload{},
		Steps:       []stepPayload{},
	}
	for _, f := range def.Fields {
		p.Fields = append(p.Fields, fieldPayload{
			Name:        f.Name,
			MaxLength:   f.MaxLength,
			Required:    f.Required,
			Kind:        string(f.Kind),
			ValidValues: f.ValidValues,
			TabsFilled:  f.TabsFilled,
			TabsEmpty:   f.TabsEmpty,
			Description: f.Description,
		})
	}
	for _, s := range def.Steps {
		p.Steps = append(p.Steps, stepPayload{
			Order:          s.Order,
			ScreenContains: s.ScreenContains,
			Action:         string(s.Action),
			Value:          s.Value,
			WaitSeconds:    int(s.Wait / time.Second),
			Description:    s.Description,
		})
	}
	return p
}
