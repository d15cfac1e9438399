package pages

import (
	"errors"

	"github.com/communitycvs/bootcamp/console"
	"github.com/communitycvs/bootcamp/events"
	"github.com/communitycvs/bootcamp/internal/app/components/shared/icons"
	"github.com/communitycvs/bootcamp/internal/content"
	"github.com/communitycvs/bootcamp/internal/form"
	"github.com/communitycvs/bootcamp/runtime"
	"github.com/communitycvs/bootcamp/vdom"
)

const inputClass = "mt-1 block w-full rounded-md border-gray-300 shadow-sm focus:border-brandPurple focus:ring-brandPurple"

// ApplyPage shows the application form, then a static acknowledgement once
// it is submitted. The form is created on mount, so every visit to the view
// starts from an empty form.
type ApplyPage struct {
	runtime.ComponentBase

	Acknowledgement content.Block

	// OnBackHome is called by both "Back to Home" buttons.
	OnBackHome func()

	form       *form.Form
	validation *form.ValidationError
}

func (p *ApplyPage) ApplyProps(next runtime.Component) {
	if n, ok := next.(*ApplyPage); ok {
		p.Acknowledgement = n.Acknowledgement
		p.OnBackHome = n.OnBackHome
	}
}

func (p *ApplyPage) OnInit() {
	p.form = form.New()
	p.validation = nil
}

// Form exposes the mounted form.
func (p *ApplyPage) Form() *form.Form {
	return p.form
}

// HandleInput applies one keystroke to the field named by the input.
func (p *ApplyPage) HandleInput(e events.ChangeEventArgs) {
	field, ok := form.ParseField(e.Name)
	if !ok {
		console.Warn("[ApplyPage] input event from unknown field:", e.Name)
		return
	}
	if err := p.form.Set(field, e.Value); err != nil {
		console.Warn("[ApplyPage] ignoring edit:", err.Error())
		return
	}
	if p.validation.For(field) != nil {
		// Re-check so the inline message goes away once the field is filled.
		p.validation = validationOf(p.form.Validate())
	}
	p.StateHasChanged()
}

// HandleSubmit runs the required-field guard and shows either the inline
// messages or the acknowledgement.
func (p *ApplyPage) HandleSubmit() {
	err := p.form.Submit()
	switch {
	case err == nil:
		p.validation = nil
		console.Log("[ApplyPage] application submitted")
	case errors.Is(err, form.ErrSubmitted):
		return
	default:
		p.validation = validationOf(err)
	}
	p.StateHasChanged()
}

func (p *ApplyPage) HandleBackHome() {
	if p.OnBackHome != nil {
		p.OnBackHome()
	}
}

func validationOf(err error) *form.ValidationError {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}

func (p *ApplyPage) Render(r runtime.Renderer) *vdom.VNode {
	var body *vdom.VNode
	if p.form != nil && p.form.Submitted() {
		body = p.renderAcknowledgement()
	} else {
		body = p.renderForm()
	}
	return vdom.Div(map[string]any{"class": "min-h-[70vh] flex items-center justify-center px-4 py-20"}, body)
}

func (p *ApplyPage) renderForm() *vdom.VNode {
	var values form.Application
	if p.form != nil {
		values = p.form.Values()
	}

	children := []*vdom.VNode{
		vdom.Heading(2, "Apply Now", map[string]any{"class": "text-2xl font-bold gradient-text mb-4"}),
	}
	for _, field := range form.Fields() {
		children = append(children, p.renderField(field, values.Get(field)))
	}
	children = append(children,
		vdom.Button("Submit Application", map[string]any{
			"id":    "submit-application",
			"type":  "submit",
			"class": "w-full px-4 py-3 rounded-md text-white gradient-bg hover:opacity-90 hover-lift",
		}),
		vdom.Div(map[string]any{"class": "text-center"},
			vdom.Button("← Back to Home", map[string]any{
				"id":      "form-back-home",
				"type":    "button",
				"class":   "text-brandPurple hover:underline text-sm",
				"onClick": events.AdaptNoArgEvent(p.HandleBackHome),
			}),
		),
	)

	return vdom.Form(map[string]any{
		"id":         "application-form",
		"class":      "w-full max-w-xl space-y-6 p-8 bg-white rounded-lg shadow-lg border border-gray-200",
		"novalidate": true,
		"onSubmit":   events.AdaptSubmitEvent(p.HandleSubmit),
	}, children...)
}

func (p *ApplyPage) renderField(field form.Field, value string) *vdom.VNode {
	attrs := map[string]any{
		"id":       field.String(),
		"name":     field.String(),
		"class":    inputClass,
		"required": field.Required(),
		"onInput":  events.AdaptChangeEvent(p.HandleInput),
	}

	var input *vdom.VNode
	switch field {
	case form.Message:
		attrs["rows"] = "4"
		input = vdom.TextArea(value, attrs)
	case form.Email:
		attrs["type"] = "email"
		input = vdom.Input(value, attrs)
	default:
		input = vdom.Input(value, attrs)
	}

	var message *vdom.VNode
	if err := p.validation.For(field); err != nil {
		attrs["aria-invalid"] = "true"
		attrs["aria-describedby"] = field.String() + "-error"
		message = vdom.Paragraph(err.Error(), map[string]any{
			"id":    field.String() + "-error",
			"class": "mt-1 text-sm text-red-600",
			"role":  "alert",
		})
	}

	return vdom.Div(nil,
		vdom.Label(field.Label(), map[string]any{
			"for":   field.String(),
			"class": "block text-sm font-medium text-gray-700",
		}),
		input,
		message,
	).WithKey(field.String())
}

func (p *ApplyPage) renderAcknowledgement() *vdom.VNode {
	heading := p.Acknowledgement.Heading
	if heading == "" {
		heading = "Application submitted!"
	}
	return vdom.Div(map[string]any{
		"id":    "application-submitted",
		"class": "w-full max-w-lg p-8 bg-white rounded-lg shadow-lg text-center border border-gray-200",
	},
		icons.Icon("check-circle-2", "w-12 h-12 mx-auto text-brandPink mb-4"),
		vdom.Heading(2, heading, map[string]any{"class": "text-2xl font-bold mb-4 gradient-text"}),
		vdom.Paragraph(p.Acknowledgement.Body, map[string]any{"class": "text-gray-700 mb-8"}),
		vdom.Button("", map[string]any{
			"id":      "ack-back-home",
			"type":    "button",
			"class":   "inline-flex items-center gap-2 px-6 py-3 rounded-md text-white gradient-bg hover:opacity-90 hover-lift",
			"onClick": events.AdaptNoArgEvent(p.HandleBackHome),
		},
			vdom.Text("Back to Home"),
			icons.Icon("arrow-right", "w-4 h-4"),
		),
	)
}
