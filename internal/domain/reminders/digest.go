package reminders

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"

	"dog-health-tracker/internal/domain/records"
)

type Category string

const (
	CategoryVaccination Category = "vaccination"
	CategoryMedication  Category = "medication"
	CategoryTherapy     Category = "therapy"
	CategoryVet         Category = "vet"
)

// Line es un renglón del digest. HTML ya viene escapado.
type Line struct {
	Category Category      `json:"category"`
	HTML     template.HTML `json:"html"`
}

var tagRe = regexp.MustCompile(`<[^>]*>`)

// Text es la versión sin tags (SMS, logs).
func (l Line) Text() string {
	return html.UnescapeString(tagRe.ReplaceAllString(string(l.HTML), ""))
}

func line(c Category, format string, args ...any) Line {
	for i, a := range args {
		if s, ok := a.(string); ok {
			args[i] = template.HTMLEscapeString(s)
		}
	}
	return Line{Category: c, HTML: template.HTML(fmt.Sprintf(format, args...))}
}

func vaccinationDue(v records.Vaccination) Line {
	return line(CategoryVaccination, "💉 <strong>%s</strong> vaccination due on %s", v.Name, v.NextDueDate.String())
}

func vaccinationOverdue(v records.Vaccination) Line {
	return line(CategoryVaccination, "🚨 <strong>%s</strong> vaccination is OVERDUE (was due %s)", v.Name, v.NextDueDate.String())
}

func medicationsToday(dog records.Dog, meds []records.Medication) Line {
	parts := make([]string, 0, len(meds))
	for _, m := range meds {
		parts = append(parts, strings.TrimSpace(fmt.Sprintf("<strong>%s</strong> %s",
			template.HTMLEscapeString(m.Name), template.HTMLEscapeString(m.Dosage))))
	}
	return Line{
		Category: CategoryMedication,
		HTML: template.HTML(fmt.Sprintf("💊 Today's medications for %s: %s",
			template.HTMLEscapeString(dog.Name), strings.Join(parts, ", "))),
	}
}

func therapyTomorrow(s records.TherapySession) Line {
	with := ""
	if s.TherapistName != "" {
		with = " with " + template.HTMLEscapeString(s.TherapistName)
	}
	return Line{
		Category: CategoryTherapy,
		HTML: template.HTML(fmt.Sprintf("🏊 <strong>%s</strong> session tomorrow%s",
			template.HTMLEscapeString(string(s.SessionType)), with)),
	}
}

func vetAppointment(v records.VetVisit) Line {
	with := ""
	if v.VetName != "" {
		with = " with " + template.HTMLEscapeString(v.VetName)
	}
	return Line{
		Category: CategoryVet,
		HTML:     template.HTML(fmt.Sprintf("🏥 Vet appointment on %s%s", v.NextAppointment.String(), with)),
	}
}

// Digest son los renglones de un perro en una pasada.
type Digest struct {
	Dog   records.Dog `json:"-"`
	DogID string      `json:"dog_id"`
	Name  string      `json:"dog_name"`
	Lines []Line      `json:"lines"`
}

func (d Digest) Subject() string { return "🐾 " + d.Dog.Name + " Reminders" }

var bodyTmpl = template.Must(template.New("digest").Parse(`<ul>{{range .}}<li>{{.HTML}}</li>{{end}}</ul>`))

// HTML arma el cuerpo del email.
func (d Digest) HTML() (string, error) {
	var buf bytes.Buffer
	if err := bodyTmpl.Execute(&buf, d.Lines); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Text es el cuerpo para SMS: un renglón por línea.
func (d Digest) Text() string {
	var sb strings.Builder
	sb.WriteString(d.Subject())
	for _, l := range d.Lines {
		sb.WriteString("\n")
		sb.WriteString(l.Text())
	}
	return sb.String()
}

// filter deja sólo las categorías habilitadas.
func (d Digest) filter(p Prefs) Digest {
	out := d
	out.Lines = make([]Line, 0, len(d.Lines))
	for _, l := range d.Lines {
		if p.allows(l.Category) {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}
